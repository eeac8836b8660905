package getEvent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"communityHub/internal/http-server/handlers/event/getEvent/mocks"
	"communityHub/internal/lib/logger/handlers/slogdiscard"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithID(t *testing.T, id string) *http.Request {
	t.Helper()

	req, err := http.NewRequest("GET", "/events/"+id, nil)
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	start := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)
	testEvent := &models.Event{
		ID:               "event-1",
		Title:            "Go Workshop",
		EventType:        "workshop",
		StartDate:        start,
		Status:           models.EventStatusUpcoming,
		ParticipantCount: 5,
	}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", "event-1").Return(testEvent, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Event)
				assert.Equal(t, "event-1", resp.Event.ID)
				assert.Equal(t, 5, resp.Event.ParticipantCount)
			},
		},
		{
			name:    "Event not found",
			eventID: "missing",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", "missing").Return(nil, storage.ErrEventNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Storage error",
			eventID: "event-1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Event", "event-1").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to get event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGetter := mocks.NewEventGetter(t)
			tc.mockSetup(mockGetter)

			handler := New(logger, mockGetter)

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, requestWithID(t, tc.eventID))

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			} else if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}

// Two reads without an intervening write return identical bodies.
func TestReadIsIdempotent(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testEvent := &models.Event{ID: "event-1", Title: "Go Workshop"}

	mockGetter := mocks.NewEventGetter(t)
	mockGetter.On("Event", "event-1").Return(testEvent, nil).Twice()

	handler := New(logger, mockGetter)

	rr1 := httptest.NewRecorder()
	handler.ServeHTTP(rr1, requestWithID(t, "event-1"))

	rr2 := httptest.NewRecorder()
	handler.ServeHTTP(rr2, requestWithID(t, "event-1"))

	require.Equal(t, http.StatusOK, rr1.Code)
	assert.Equal(t, rr1.Body.String(), rr2.Body.String())
}
