package cancelRSVP

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/rsvp/cancelRSVP/mocks"
	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, rsvpID string, user *models.User) *http.Request {
	t.Helper()

	req, err := http.NewRequest("DELETE", "/rsvps/"+rsvpID, nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", rsvpID)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = mwauth.ContextWithUser(ctx, user)
	}

	return req.WithContext(ctx)
}

func TestCancelRSVPHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	alice := &models.User{ID: "user-1", Role: models.RoleMember, IsActive: true}

	testCases := []struct {
		name           string
		rsvpID         string
		caller         *models.User
		mockSetup      func(m *mocks.RSVPCanceller)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "Success",
			rsvpID: "rsvp-1",
			caller: alice,
			mockSetup: func(m *mocks.RSVPCanceller) {
				m.On("DeleteRSVP", "rsvp-1", "user-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:   "Someone else's RSVP reads as not found",
			rsvpID: "rsvp-2",
			caller: alice,
			mockSetup: func(m *mocks.RSVPCanceller) {
				m.On("DeleteRSVP", "rsvp-2", "user-1").Return(storage.ErrRSVPNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"rsvp not found"}`,
		},
		{
			name:   "Storage error",
			rsvpID: "rsvp-1",
			caller: alice,
			mockSetup: func(m *mocks.RSVPCanceller) {
				m.On("DeleteRSVP", "rsvp-1", "user-1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to cancel rsvp"}`,
		},
		{
			name:           "Unauthenticated",
			rsvpID:         "rsvp-1",
			caller:         nil,
			mockSetup:      func(m *mocks.RSVPCanceller) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCanceller := mocks.NewRSVPCanceller(t)
			tc.mockSetup(mockCanceller)

			handler := New(logger, mockCanceller)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(t, tc.rsvpID, tc.caller))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
