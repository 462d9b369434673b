package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestJwtMiddleware(t *testing.T) {
	app := fiber.New()
	app.Get("/admin", NewJwtMiddleware("secret", "motherlanka"), RequireRole("admin"), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	exp := time.Now().Add(time.Hour).Unix()
	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: fiber.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", want: fiber.StatusUnauthorized},
		{
			name:   "wrong secret",
			header: "Bearer " + signToken(t, "other", jwt.MapClaims{"sub": "u1", "role": "admin", "iss": "motherlanka", "exp": exp}),
			want:   fiber.StatusUnauthorized,
		},
		{
			name:   "wrong issuer",
			header: "Bearer " + signToken(t, "secret", jwt.MapClaims{"sub": "u1", "role": "admin", "iss": "elsewhere", "exp": exp}),
			want:   fiber.StatusUnauthorized,
		},
		{
			name:   "expired",
			header: "Bearer " + signToken(t, "secret", jwt.MapClaims{"sub": "u1", "role": "admin", "iss": "motherlanka", "exp": time.Now().Add(-time.Hour).Unix()}),
			want:   fiber.StatusUnauthorized,
		},
		{
			name:   "not admin",
			header: "Bearer " + signToken(t, "secret", jwt.MapClaims{"sub": "u1", "role": "editor", "iss": "motherlanka", "exp": exp}),
			want:   fiber.StatusForbidden,
		},
		{
			name:   "admin",
			header: "Bearer " + signToken(t, "secret", jwt.MapClaims{"sub": "u1", "role": "admin", "iss": "motherlanka", "exp": exp}),
			want:   fiber.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/admin", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestValidateRequest(t *testing.T) {
	type req struct {
		Message string `validate:"required,max=5"`
	}

	assert.NoError(t, ValidateRequest(req{Message: "hi"}))

	err := ValidateRequest(req{})
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
	assert.Equal(t, "Invalid message: required", fe.Message)

	require.ErrorAs(t, ValidateRequest(req{Message: "toolong"}), &fe)
	assert.Contains(t, fe.Message, "at most 5")
}
