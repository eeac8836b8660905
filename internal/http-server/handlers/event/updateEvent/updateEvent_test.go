package updateEvent

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/event/updateEvent/mocks"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func requestWithID(t *testing.T, id, body string) *http.Request {
	t.Helper()

	req, err := http.NewRequest("PUT", "/events/"+id, bytes.NewBufferString(body))
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	updated := &models.Event{ID: "event-1", Title: "New Title", Status: models.EventStatusOngoing}

	testCases := []struct {
		name           string
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Partial update only touches supplied fields",
			eventID:     "event-1",
			requestBody: `{"title": "New Title"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "event-1", mock.MatchedBy(func(p models.EventPatch) bool {
					return p.Title != nil && *p.Title == "New Title" &&
						p.Description == nil && p.Status == nil
				})).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Status transition",
			eventID:     "event-1",
			requestBody: `{"status": "cancelled"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "event-1", mock.MatchedBy(func(p models.EventPatch) bool {
					return p.Status != nil && *p.Status == models.EventStatusCancelled
				})).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid status",
			eventID:        "event-1",
			requestBody:    `{"status": "postponed"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Event not found",
			eventID:     "missing",
			requestBody: `{"title": "New Title"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", "missing", mock.Anything).Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid JSON",
			eventID:        "event-1",
			requestBody:    `invalid json`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			handler := New(logger, mockUpdater)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithID(t, tc.eventID, tc.requestBody))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
