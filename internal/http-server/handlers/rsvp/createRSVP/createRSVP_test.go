package createRSVP

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/rsvp/createRSVP/mocks"
	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, eventID, body string, user *models.User) *http.Request {
	t.Helper()

	var req *http.Request
	var err error
	if body == "" {
		req, err = http.NewRequest("POST", "/events/"+eventID+"/rsvp", nil)
	} else {
		req, err = http.NewRequest("POST", "/events/"+eventID+"/rsvp", bytes.NewBufferString(body))
	}
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", eventID)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = mwauth.ContextWithUser(ctx, user)
	}

	return req.WithContext(ctx)
}

func TestCreateRSVPHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	alice := &models.User{ID: "user-1", Email: "alice@example.com", Role: models.RoleMember, IsActive: true}

	created := &models.RSVP{
		ID:      "rsvp-1",
		EventID: "event-1",
		UserID:  "user-1",
		Status:  models.RSVPStatusPending,
		Notes:   "see you there",
	}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.RSVPCreator)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Success",
			eventID:     "event-1",
			requestBody: `{"notes": "see you there"}`,
			mockSetup: func(m *mocks.RSVPCreator) {
				m.On("CreateRSVP", "event-1", "user-1", "see you there").Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
			checkBody: func(t *testing.T, body string) {
				var resp RSVPResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.RSVP)
				assert.Equal(t, models.RSVPStatusPending, resp.RSVP.Status)
				assert.Equal(t, "user-1", resp.RSVP.UserID)
			},
		},
		{
			name:        "No body",
			eventID:     "event-1",
			requestBody: "",
			mockSetup: func(m *mocks.RSVPCreator) {
				m.On("CreateRSVP", "event-1", "user-1", "").Return(created, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:        "Event not found",
			eventID:     "missing",
			requestBody: `{"notes": ""}`,
			mockSetup: func(m *mocks.RSVPCreator) {
				m.On("CreateRSVP", "missing", "user-1", "").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Duplicate RSVP",
			eventID:     "event-1",
			requestBody: `{"notes": ""}`,
			mockSetup: func(m *mocks.RSVPCreator) {
				m.On("CreateRSVP", "event-1", "user-1", "").Return(nil, storage.ErrRSVPExists)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"you have already RSVPed to this event"}`,
		},
		{
			name:        "Storage error",
			eventID:     "event-1",
			requestBody: `{"notes": ""}`,
			mockSetup: func(m *mocks.RSVPCreator) {
				m.On("CreateRSVP", "event-1", "user-1", "").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to create rsvp"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockCreator := mocks.NewRSVPCreator(t)
			tc.mockSetup(mockCreator)

			handler := New(logger, mockCreator)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, newRequest(t, tc.eventID, tc.requestBody, alice))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

// A user id smuggled into the payload must not change the RSVP owner.
func TestOwnerIsAlwaysCaller(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	alice := &models.User{ID: "user-1", Role: models.RoleMember, IsActive: true}

	mockCreator := mocks.NewRSVPCreator(t)
	mockCreator.On("CreateRSVP", "event-1", "user-1", "").
		Return(&models.RSVP{ID: "rsvp-1", EventID: "event-1", UserID: "user-1"}, nil)

	handler := New(logger, mockCreator)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(t, "event-1", `{"user_id": "someone-else"}`, alice))

	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestUnauthenticated(t *testing.T) {
	t.Parallel()

	handler := New(slogdiscard.NewDiscardLogger(), mocks.NewRSVPCreator(t))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, newRequest(t, "event-1", "", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
