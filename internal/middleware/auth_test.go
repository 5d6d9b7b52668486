package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/auth"
	"blog-backend/internal/httperr"
)

func newTestApp(tokens *auth.TokenManager, extra ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: httperr.Handler})
	handlers := append([]fiber.Handler{Protect(tokens)}, extra...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		identity, _ := IdentityFrom(c)
		return c.JSON(fiber.Map{"user_id": identity.UserID, "role": identity.Role})
	})
	app.Get("/secure", handlers...)
	return app
}

func TestProtectMissingToken(t *testing.T) {
	app := newTestApp(auth.NewTokenManager("s", time.Hour))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/secure", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectMalformedHeader(t *testing.T) {
	app := newTestApp(auth.NewTokenManager("s", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "just-a-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectInvalidToken(t *testing.T) {
	app := newTestApp(auth.NewTokenManager("s", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectExpiredToken(t *testing.T) {
	tokens := auth.NewTokenManager("s", -time.Minute)
	token, err := tokens.Generate("u1", "user")
	require.NoError(t, err)

	app := newTestApp(auth.NewTokenManager("s", time.Hour))
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestProtectValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("s", time.Hour)
	token, err := tokens.Generate("u1", "user")
	require.NoError(t, err)

	app := newTestApp(tokens)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRole(t *testing.T) {
	tokens := auth.NewTokenManager("s", time.Hour)

	app := newTestApp(tokens, RequireRole("admin"))

	userToken, err := tokens.Generate("u1", "user")
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	adminToken, err := tokens.Generate("a1", "admin")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
