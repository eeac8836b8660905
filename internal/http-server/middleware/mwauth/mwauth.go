package mwauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/jwt"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/render"
)

type contextKey string

const userContextKey contextKey = "auth_user"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	UserByEmail(email string) (*models.User, error)
}

// New resolves the bearer token into the user's current record. The user
// is re-read from storage on every request, so a role change or
// deactivation takes effect on the very next call, not the next login.
func New(log *slog.Logger, secret string, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.mwauth.New"

		log = log.With(slog.String("op", op))

		fn := func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok {
				log.Error("malformed authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid authorization header"))
				return
			}

			email, err := jwt.ParseToken(tokenString, secret)
			if err != nil {
				log.Error("failed to parse token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			user, err := users.UserByEmail(email)
			if err != nil {
				log.Error("failed to resolve token subject", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			if !user.IsActive {
				log.Warn("inactive user presented a valid token", slog.String("user_id", user.ID))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := ContextWithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// RequireAdmin gates a route on the admin role. 403 is distinct from 401
// so clients can tell "log in" apart from "you lack permission".
func RequireAdmin(log *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		const op = "middleware.mwauth.RequireAdmin"

		log = log.With(slog.String("op", op))

		fn := func(w http.ResponseWriter, r *http.Request) {
			user, ok := UserFromContext(r.Context())
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			if user.Role != models.RoleAdmin {
				log.Warn("admin access denied",
					slog.String("user_id", user.ID),
					slog.String("role", user.Role),
				)
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("admin access required"))
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}
