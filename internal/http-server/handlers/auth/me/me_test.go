package me

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	handler := New(logger)

	alice := &models.User{
		ID:       "user-1",
		Email:    "alice@example.com",
		FullName: "Alice",
		Role:     models.RoleMember,
		IsActive: true,
	}

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = req.WithContext(mwauth.ContextWithUser(req.Context(), alice))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "OK", resp.Status)
	assert.Equal(t, "user-1", resp.User.ID)
	assert.Equal(t, "alice@example.com", resp.User.Email)

	// the serialized user must never contain credential material
	assert.NotContains(t, rr.Body.String(), "password")
	assert.NotContains(t, rr.Body.String(), "hash")
}

func TestMeWithoutContext(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger())

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
