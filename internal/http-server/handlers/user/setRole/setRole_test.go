package setRole

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/user/setRole/mocks"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, userID, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest("PUT", "/users/"+userID+"/role", bytes.NewReader([]byte(body)))
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", userID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestSetRoleHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		userID         string
		body           string
		mockSetup      func(m *mocks.RoleSetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Promote to moderator",
			userID: "user-1",
			body:   `{"role": "moderator"}`,
			mockSetup: func(m *mocks.RoleSetter) {
				m.On("SetUserRole", "user-1", "moderator").Return(&models.User{
					ID:   "user-1",
					Role: models.RoleModerator,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"moderator"`,
		},
		{
			name:   "Demote to member",
			userID: "user-2",
			body:   `{"role": "member"}`,
			mockSetup: func(m *mocks.RoleSetter) {
				m.On("SetUserRole", "user-2", "member").Return(&models.User{
					ID:   "user-2",
					Role: models.RoleMember,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"member"`,
		},
		{
			name:           "Unknown role",
			userID:         "user-1",
			body:           `{"role": "owner"}`,
			mockSetup:      func(m *mocks.RoleSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Role is not an allowed value",
		},
		{
			name:           "Missing role",
			userID:         "user-1",
			body:           `{}`,
			mockSetup:      func(m *mocks.RoleSetter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "field Role is a required field",
		},
		{
			name:   "User not found",
			userID: "missing",
			body:   `{"role": "member"}`,
			mockSetup: func(m *mocks.RoleSetter) {
				m.On("SetUserRole", "missing", "member").Return(nil, storage.ErrUserNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "user not found",
		},
		{
			name:   "Storage error",
			userID: "user-1",
			body:   `{"role": "member"}`,
			mockSetup: func(m *mocks.RoleSetter) {
				m.On("SetUserRole", "user-1", "member").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "failed to set role",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockSetter := mocks.NewRoleSetter(t)
			tc.mockSetup(mockSetter)

			handler := New(logger, mockSetter)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(t, tc.userID, tc.body))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.expectedBody)
		})
	}
}
