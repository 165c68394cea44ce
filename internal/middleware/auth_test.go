package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"explorar/internal/config"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, adminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func TestAdminRequired(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Delete("/protected", AdminRequired(cfg), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	request := func(authorization string) *http.Response {
		req := httptest.NewRequest(http.MethodDelete, "/protected", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		resp, err := app.Test(req)
		assert.NoError(t, err)
		return resp
	}

	t.Run("Missing Header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("").StatusCode)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Token abc").StatusCode)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token := signToken(t, "other-secret", "admin")
		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+token).StatusCode)
	})

	t.Run("Wrong Role", func(t *testing.T) {
		token := signToken(t, "test-secret", "viewer")
		assert.Equal(t, http.StatusForbidden, request("Bearer "+token).StatusCode)
	})

	t.Run("Admin", func(t *testing.T) {
		token := signToken(t, "test-secret", "admin")
		assert.Equal(t, http.StatusOK, request("Bearer "+token).StatusCode)
	})
}
