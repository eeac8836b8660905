package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/jwt"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=CredentialsProvider
type CredentialsProvider interface {
	UserCredentials(email string) (*models.User, string, error)
}

// New verifies the presented credentials and issues a bearer token. The
// rejection is constant-shaped: an unknown email and a wrong password
// produce the same response.
func New(log *slog.Logger, secret string, tokenTTL time.Duration, users CredentialsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log = log.With(slog.String("op", op))

		var req LoginRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		user, hash, err := users.UserCredentials(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("login failed", slog.String("email", req.Email))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid email or password"))
				return
			}

			log.Error("failed to get user credentials", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if err = bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)); err != nil {
			log.Info("login failed", slog.String("email", req.Email))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid email or password"))
			return
		}

		token, err := jwt.NewToken(user.Email, secret, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.String("user_id", user.ID))

		render.JSON(w, r, LoginResponse{
			Response:    response.OK(),
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}
