package getUser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/user/getUser/mocks"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, userID string) *http.Request {
	t.Helper()

	req, err := http.NewRequest("GET", "/users/"+userID, nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", userID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		mockSetup      func(m *mocks.UserGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			userID: "user-1",
			mockSetup: func(m *mocks.UserGetter) {
				m.On("UserByID", "user-1").Return(&models.User{
					ID:       "user-1",
					Email:    "alice@example.com",
					FullName: "Alice Ivanova",
					Role:     models.RoleMember,
					IsActive: true,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "alice@example.com",
		},
		{
			name:   "Not found",
			userID: "missing",
			mockSetup: func(m *mocks.UserGetter) {
				m.On("UserByID", "missing").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:   "Storage error",
			userID: "user-1",
			mockSetup: func(m *mocks.UserGetter) {
				m.On("UserByID", "user-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to get user",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewUserGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(t, tc.userID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
