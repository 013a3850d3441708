package helper

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "go-concurrency-101", Slugify("  Go Concurrency 101!! ", 0))
	assert.Equal(t, "cafe-creme", Slugify("Café Crème", 0))
	assert.Equal(t, "item", Slugify("!!!", 0))
	assert.Equal(t, "abc", Slugify("abc-def", 3))
}

func TestNewPaging(t *testing.T) {
	p := NewPaging(0, 0, 20, 100)
	assert.Equal(t, Paging{Page: 1, PerPage: 20, Offset: 0, Limit: 20}, p)

	p = NewPaging(3, 500, 20, 100)
	assert.Equal(t, 100, p.PerPage)
	assert.Equal(t, 200, p.Offset)
}

func TestBuildPagination(t *testing.T) {
	pg := BuildPagination(45, NewPaging(2, 20, 20, 100), 20)
	assert.Equal(t, 3, pg.TotalPages)
	assert.True(t, pg.HasNext)
	assert.True(t, pg.HasPrev)

	empty := BuildPagination(0, NewPaging(1, 20, 20, 100), 0)
	assert.Equal(t, 1, empty.TotalPages)
	assert.False(t, empty.HasNext)
}

func TestResolvePagingFromQuery(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		p := ResolvePaging(c, DefaultPerPage, MaxPerPage)
		return c.JSON(fiber.Map{"page": p.Page, "per_page": p.PerPage})
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?page=2&limit=5", nil))
	require.NoError(t, err)
	var body map[string]int
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2, body["page"])
	assert.Equal(t, 5, body["per_page"])
}

func TestExtractBearerToken(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		tok, err := ExtractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}
		return c.SendString(tok)
	})

	cases := map[string]struct {
		header string
		status int
		body   string
	}{
		"plain":     {"Bearer abc.def", 200, "abc.def"},
		"lowercase": {"bearer   xyz", 200, "xyz"},
		"quoted":    {`Bearer "q.w.e"`, 200, "q.w.e"},
		"missing":   {"", 401, ErrNoToken.Error()},
		"basic":     {"Basic dXNlcg==", 401, ErrInvalidTokenForm.Error()},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			b, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tc.body, string(b))
		})
	}
}

func TestValidationErrorMapUsesJSONNames(t *testing.T) {
	type req struct {
		CouponName string `json:"coupon_name" validate:"required"`
		Rate       int    `json:"coupon_discount_rate" validate:"min=1,max=100"`
	}
	err := ValidateStruct(req{Rate: 300})
	m, ok := ValidationErrorMap(err)
	require.True(t, ok)
	assert.Equal(t, []string{"required"}, m["coupon_name"])
	assert.Equal(t, []string{"max"}, m["coupon_discount_rate"])
}

func TestJsonErrorShape(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusNotFound, "missing")
	})
	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	var body ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "NOT_FOUND", body.ErrorCode)
	assert.Equal(t, "missing", body.Message)
}

func TestLowerLike(t *testing.T) {
	assert.Equal(t, "golang", LowerLike("  GoLang "))
	assert.Equal(t, "100 off", LowerLike("100% off"))
	assert.Equal(t, "ab", LowerLike("a_b"))
}

func TestQueryBoolAndCode(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		out := fiber.Map{}
		if b := QueryBool(c, "status"); b != nil {
			out["status"] = *b
		}
		if n := QueryCode(c, "tutor_code"); n != nil {
			out["tutor_code"] = *n
		}
		return c.JSON(out)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/?status=false&tutor_code=12", nil))
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["status"])
	assert.Equal(t, float64(12), body["tutor_code"])

	resp, err = app.Test(httptest.NewRequest("GET", "/?status=maybe&tutor_code=-1", nil))
	require.NoError(t, err)
	body = map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body)
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "01012345678", NormalizePhone(" 010-1234-5678 "))
	assert.Equal(t, "01012345678", NormalizePhone("(010)1234-5678"))
	assert.Equal(t, "+821012345678", NormalizePhone("+82 10.1234.5678"))
	assert.Equal(t, "8210", NormalizePhone("82+10"))
}
