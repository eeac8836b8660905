package me

import (
	"log/slog"
	"net/http"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/models"

	"github.com/go-chi/render"
)

type MeResponse struct {
	response.Response
	User *models.User `json:"user"`
}

// New returns the profile of the already-resolved caller. The identity
// comes from the auth middleware, which re-read the user from storage.
func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.me.New"

		log = log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		log.Info("current user requested", slog.String("user_id", user.ID))

		render.JSON(w, r, MeResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
