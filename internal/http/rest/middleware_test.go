package rest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ribbonclub/ribbon_api/config"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func testAPI() *API {
	return &API{Config: &config.Config{JwtSecret: testSecret}}
}

func TestVerifyToken(t *testing.T) {
	api := testAPI()

	t.Run("valid access token", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub": "2a5c1e4f-0000-4000-8000-000000000001",
			"typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		claims, err := api.verifyToken(tokenString)
		require.NoError(t, err)
		assert.Equal(t, "2a5c1e4f-0000-4000-8000-000000000001", claims.UserID)
		assert.Equal(t, "access", claims.Type)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub": "2a5c1e4f-0000-4000-8000-000000000001",
			"typ": "access",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		_, err := api.verifyToken(tokenString)
		require.Error(t, err)
		assert.Equal(t, "token expired", err.Error())
	})

	t.Run("refresh token rejected", func(t *testing.T) {
		tokenString := signToken(t, jwt.MapClaims{
			"sub": "2a5c1e4f-0000-4000-8000-000000000001",
			"typ": "refresh",
			"exp": time.Now().Add(time.Hour).Unix(),
		})

		_, err := api.verifyToken(tokenString)
		require.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub": "2a5c1e4f-0000-4000-8000-000000000001",
			"typ": "access",
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		signed, err := token.SignedString([]byte("other-secret"))
		require.NoError(t, err)

		_, err = api.verifyToken(signed)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := api.verifyToken("not.a.token")
		require.Error(t, err)
	})
}
