package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	LoadSecret()

	userID := uuid.New()
	token, err := GenerateToken(userID, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	LoadSecret()

	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	LoadSecret()

	userID := uuid.New()
	token, err := GenerateToken(userID, time.Hour)
	require.NoError(t, err)

	var seen uuid.UUID
	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetUserID(r.Context())
		require.True(t, ok)
		seen = id
	}))

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, seen)
}

func TestMiddlewareRejectsMissingToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	LoadSecret()

	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached without a token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsExpiredToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	LoadSecret()

	token, err := GenerateToken(uuid.New(), -time.Minute)
	require.NoError(t, err)

	handler := AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached with an expired token")
	}))

	req := httptest.NewRequest(http.MethodGet, "/materials", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
