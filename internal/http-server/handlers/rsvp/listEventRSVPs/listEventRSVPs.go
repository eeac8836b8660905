package listEventRSVPs

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type RSVPsResponse struct {
	response.Response
	RSVPs []models.RSVPWithUser `json:"rsvps"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPsLister
type RSVPsLister interface {
	EventRSVPs(eventID string) ([]models.RSVPWithUser, error)
}

func New(log *slog.Logger, rsvps RSVPsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.listEventRSVPs.New"

		log = log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		list, err := rsvps.EventRSVPs(eventID)
		if err != nil {
			if errors.Is(err, storage.ErrEventNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			}

			log.Error("failed to list rsvps", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list rsvps"))
			return
		}

		log.Info("rsvps listed", slog.Int("count", len(list)))

		render.JSON(w, r, RSVPsResponse{
			Response: response.OK(),
			RSVPs:    list,
		})
	}
}
