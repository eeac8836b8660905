package updateRSVP

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
	"github.com/go-playground/validator/v10"
)

type RSVPResponse struct {
	response.Response
	RSVP *models.RSVP `json:"rsvp"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RSVPUpdater
type RSVPUpdater interface {
	UpdateRSVP(id, userID string, patch models.RSVPPatch) (*models.RSVP, error)
}

// New patches the caller's own RSVP (status, notes). There is no admin
// override here: an RSVP belongs to its owner alone, and someone else's
// RSVP answers as not found.
func New(log *slog.Logger, rsvps RSVPUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.rsvp.updateRSVP.New"

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

		var patch models.RSVPPatch

		err := render.DecodeJSON(r.Body, &patch)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(patch); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		rsvp, err := rsvps.UpdateRSVP(rsvpID, caller.ID, patch)
		if err != nil {
			if errors.Is(err, storage.ErrRSVPNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("rsvp not found"))
				return
			}

			log.Error("failed to update rsvp", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update rsvp"))
			return
		}

		log.Info("rsvp updated", slog.String("user_id", caller.ID))

		render.JSON(w, r, RSVPResponse{
			Response: response.OK(),
			RSVP:     rsvp,
		})
	}
}
