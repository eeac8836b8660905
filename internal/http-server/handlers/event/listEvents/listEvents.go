package listEvents

import (
	"log/slog"
	"net/http"
	"strconv"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	Events(filter storage.EventFilter) ([]models.Event, error)
}

func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query()

		filter := storage.EventFilter{
			Status:    query.Get("status"),
			EventType: query.Get("event_type"),
		}

		if skip := query.Get("skip"); skip != "" {
			n, err := strconv.Atoi(skip)
			if err != nil || n < 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid skip parameter"))
				return
			}
			filter.Skip = n
		}

		if limit := query.Get("limit"); limit != "" {
			n, err := strconv.Atoi(limit)
			if err != nil || n < 1 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit parameter"))
				return
			}
			filter.Limit = n
		}

		list, err := events.Events(filter)
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   list,
		})
	}
}
