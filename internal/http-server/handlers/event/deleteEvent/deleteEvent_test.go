package deleteEvent

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"communityHub/internal/http-server/handlers/event/deleteEvent/mocks"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithID(t *testing.T, id string) *http.Request {
	t.Helper()

	req, err := http.NewRequest("DELETE", "/events/"+id, nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", "event-1").Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK"}`,
		},
		{
			name:    "Event not found",
			eventID: "missing",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", "missing").Return(storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage error",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("DeleteEvent", "event-1").Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			handler := New(logger, mockDeleter)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithID(t, tc.eventID))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
