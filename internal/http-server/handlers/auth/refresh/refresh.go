package refresh

import (
	"log/slog"
	"net/http"
	"time"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/jwt"
	"communityHub/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

type RefreshResponse struct {
	response.Response
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// New re-issues a token with a fresh expiry for a caller the auth
// middleware already resolved; the password is not re-presented.
func New(log *slog.Logger, secret string, tokenTTL time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.refresh.New"

		log = log.With(slog.String("op", op))

		user, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		token, err := jwt.NewToken(user.Email, secret, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to refresh token"))
			return
		}

		log.Info("token refreshed", slog.String("user_id", user.ID))

		render.JSON(w, r, RefreshResponse{
			Response:    response.OK(),
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
