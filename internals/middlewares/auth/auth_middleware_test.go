package auth

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"learnsmate_backend/internals/configs"
	"learnsmate_backend/internals/constants"
	authModel "learnsmate_backend/internals/features/users/auth/model"
	memberModel "learnsmate_backend/internals/features/users/members/model"
	helper "learnsmate_backend/internals/helpers"
	helperAuth "learnsmate_backend/internals/helpers/auth"
	"learnsmate_backend/internals/middlewares"
	"learnsmate_backend/internals/testutil"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "middleware-secret"
	configs.JWTAccessTTL = time.Hour

	db := testutil.NewTestDB(t)
	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Use(AuthMiddleware(db))

	app.Get("/voc/list", func(c *fiber.Ctx) error { return c.SendString("public") })
	app.Get("/lecture", func(c *fiber.Ctx) error {
		code, err := helper.GetAuthCode(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"code": code, "role": helper.GetRole(c)})
	})
	app.Post("/blacklist", OnlyRolesSlice("", constants.AdminOnly), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusCreated)
	})
	return app, db
}

func createStudent(t *testing.T, db *gorm.DB, active bool) memberModel.MemberModel {
	t.Helper()
	m := memberModel.MemberModel{
		MemberType:     constants.MemberTypeStudent,
		MemberEmail:    "student@learnsmate.io",
		MemberPassword: "x",
		MemberName:     "student",
		MemberFlag:     active,
	}
	require.NoError(t, db.Create(&m).Error)
	return m
}

func bearer(t *testing.T, code int64, role string) string {
	t.Helper()
	issued, err := helperAuth.IssueAccessToken(code, role, "tester", time.Now())
	require.NoError(t, err)
	return issued.AccessToken
}

func TestPublicRouteWithoutToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/voc/list", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	app, _ := setupApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/lecture", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"error_code":"UNAUTHORIZED"`)
}

func TestValidTokenStoresLocals(t *testing.T) {
	app, db := setupApp(t)
	m := createStudent(t, db, true)

	req := httptest.NewRequest("GET", "/lecture", nil)
	req.Header.Set("Authorization", "Bearer "+bearer(t, m.MemberCode, constants.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `"role":"STUDENT"`)
}

func TestRevokedTokenRejected(t *testing.T) {
	app, db := setupApp(t)
	m := createStudent(t, db, true)
	tok := bearer(t, m.MemberCode, constants.RoleStudent)
	require.NoError(t, db.Create(&authModel.RevokedTokenModel{
		Token: tok, ExpiredAt: time.Now().Add(time.Hour),
	}).Error)

	req := httptest.NewRequest("GET", "/lecture", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestInactiveMemberRejected(t *testing.T) {
	app, db := setupApp(t)
	m := createStudent(t, db, false)

	req := httptest.NewRequest("GET", "/lecture", nil)
	req.Header.Set("Authorization", "Bearer "+bearer(t, m.MemberCode, constants.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestRoleGuardForbidsStudent(t *testing.T) {
	app, db := setupApp(t)
	m := createStudent(t, db, true)

	req := httptest.NewRequest("POST", "/blacklist", nil)
	req.Header.Set("Authorization", "Bearer "+bearer(t, m.MemberCode, constants.RoleStudent))
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
