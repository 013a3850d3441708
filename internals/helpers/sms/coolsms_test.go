package helper

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnsmate_backend/internals/configs"
)

var authPattern = regexp.MustCompile(`^HMAC-SHA256 apiKey=key, date=(\S+), salt=([0-9a-f]+), signature=([0-9a-f]+)$`)

func TestSendSignsRequest(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages/v4/send", r.URL.Path)

		m := authPattern.FindStringSubmatch(r.Header.Get("Authorization"))
		require.Len(t, m, 4)
		mac := hmac.New(sha256.New, []byte("secret"))
		mac.Write([]byte(m[1] + m[2]))
		assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), m[3])

		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewCoolSmsClient(configs.CoolSmsConfig{
		APIKey: "key", APISecret: "secret", BaseURL: srv.URL, Sender: "010-0000-0000",
	}, srv.Client())

	require.NoError(t, client.Send(context.Background(), "010-1234-5678", "code 123456"))
	assert.Contains(t, gotBody, `"to":"01012345678"`)
	assert.Contains(t, gotBody, `"from":"01000000000"`)
}

func TestSendOpensBreakerAfterFailures(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCoolSmsClient(configs.CoolSmsConfig{
		APIKey: "key", APISecret: "secret", BaseURL: srv.URL,
	}, srv.Client())

	for i := 0; i < 3; i++ {
		assert.Error(t, client.Send(context.Background(), "01012345678", "x"))
	}
	err := client.Send(context.Background(), "01012345678", "x")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, calls)
}

func TestSendWithoutCredentials(t *testing.T) {
	client := NewCoolSmsClient(configs.CoolSmsConfig{}, nil)
	assert.ErrorIs(t, client.Send(context.Background(), "010", "x"), ErrSmsNotConfigured)
}
