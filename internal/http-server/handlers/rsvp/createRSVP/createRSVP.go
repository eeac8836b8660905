package createRSVP

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// RSVPRequest carries only the notes. The owner is always the resolved
// caller; a user id in the payload would be ignored, so none is accepted.
type RSVPRequest struct {
	Notes string `json:"notes"`
}

type RSVPResponse struct {
	response.Response
	RSVP *models.RSVP `json:"rsvp"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPCreator
type RSVPCreator interface {
	CreateRSVP(eventID, userID, notes string) (*models.RSVP, error)
}

// New registers the caller's interest in an event. Capacity and
// registration deadline are stored on the event but not enforced here.
func New(log *slog.Logger, rsvps RSVPCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.createRSVP.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		var req RSVPRequest

		if r.Body != nil && r.ContentLength != 0 {
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				log.Error("failed to decode request body", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("failed to decode request"))
				return
			}
		}

		rsvp, err := rsvps.CreateRSVP(eventID, caller.ID, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
				return
			case errors.Is(err, storage.ErrRSVPExists):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("you have already RSVPed to this event"))
				return
			default:
				log.Error("failed to create rsvp", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to create rsvp"))
				return
			}
		}

		log.Info("rsvp created",
			slog.String("rsvp_id", rsvp.ID),
			slog.String("user_id", caller.ID),
		)

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RSVPResponse{
			Response: response.OK(),
			RSVP:     rsvp,
		})
	}
}
