package infrastructure

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmacedo-dev/bustrip/internal/user/domain"
)

func TestJWTTokenManager_RoundTrip(t *testing.T) {
	manager := NewJWTTokenManager("test-secret")

	token, err := manager.Sign(domain.TokenClaims{UserID: 7, Email: "maria@example.com", IsAdmin: true})
	require.NoError(t, err)

	claims, err := manager.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
}

func TestJWTTokenManager_WrongSecret(t *testing.T) {
	token, err := NewJWTTokenManager("test-secret").Sign(domain.TokenClaims{UserID: 7})
	require.NoError(t, err)

	_, err = NewJWTTokenManager("other-secret").Verify(token)
	assert.Error(t, err)
}

func TestRequireAdmin(t *testing.T) {
	manager := NewJWTTokenManager("test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	guarded := RequireAdmin(manager)(next)

	request := func(authorization string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/stations", nil)
		if authorization != "" {
			req.Header.Set("Authorization", authorization)
		}
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, req)
		return rec
	}

	t.Run("missing token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("").Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, request("Bearer nonsense").Code)
	})

	t.Run("non-admin token", func(t *testing.T) {
		token, err := manager.Sign(domain.TokenClaims{UserID: 7})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, request("Bearer "+token).Code)
	})

	t.Run("admin token", func(t *testing.T) {
		token, err := manager.Sign(domain.TokenClaims{UserID: 7, IsAdmin: true})
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, request("Bearer "+token).Code)
	})
}
