package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(7, "buyer@example.com", "customer")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
}

func TestGenerateJWT_NoSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, "a@b.c", "customer")
	assert.Error(t, err)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestParseJWT_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := GenerateJWT(1, "a@b.c", "admin")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseJWT(token)
	assert.Error(t, err)
}

func TestExtractAccessToken(t *testing.T) {
	t.Run("cookie preferred over header", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Cookie", "access_token=cookie-token")
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "cookie-token", ExtractAccessToken(r))
	})

	t.Run("header fallback", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		r.Header.Set("Authorization", "Bearer header-token")
		assert.Equal(t, "header-token", ExtractAccessToken(r))
	})

	t.Run("missing", func(t *testing.T) {
		r := httptest.NewRequest("GET", "/", nil)
		assert.Equal(t, "", ExtractAccessToken(r))
	})
}
