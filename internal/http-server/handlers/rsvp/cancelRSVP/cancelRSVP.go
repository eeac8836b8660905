package cancelRSVP

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type CancelResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPCanceller
type RSVPCanceller interface {
	DeleteRSVP(id, userID string) error
}

// New cancels the caller's own RSVP. Cancellation deletes the record; the
// storage layer decrements the event counter in the same transaction.
func New(log *slog.Logger, rsvps RSVPCanceller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.cancelRSVP.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		rsvpID := chi.URLParam(r, "id")
		if rsvpID == "" {
			log.Error("rsvp id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("rsvp id is required"))
			return
		}

		log = log.With(slog.String("rsvp_id", rsvpID))

		err := rsvps.DeleteRSVP(rsvpID, caller.ID)
		if err != nil {
			if errors.Is(err, storage.ErrRSVPNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("rsvp not found"))
				return
			}

			log.Error("failed to cancel rsvp", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to cancel rsvp"))
			return
		}

		log.Info("rsvp cancelled", slog.String("user_id", caller.ID))

		render.JSON(w, r, CancelResponse{
			Response: response.OK(),
		})
	}
}
