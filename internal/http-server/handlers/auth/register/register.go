package register

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"
	"communityHub/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

// RegisterRequest deliberately has no role field: every new account is a
// member, and promotion happens through the admin-only role endpoint.
type RegisterRequest struct {
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	FullName        string   `json:"full_name" validate:"required"`
	Username        string   `json:"username"`
	Bio             string   `json:"bio"`
	AvatarURL       string   `json:"avatar_url"`
	GithubProfile   string   `json:"github_profile"`
	LinkedinProfile string   `json:"linkedin_profile"`
	Skills          []string `json:"skills"`
}

type RegisterResponse struct {
	response.Response
	UserID string `json:"user_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRegistrar
type UserRegistrar interface {
	CreateUser(user models.User, passwordHash string) (string, error)
}

func New(log *slog.Logger, users UserRegistrar) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.register.New"

		log = log.With(slog.String("op", op))

		var req RegisterRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("email", req.Email))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		user := models.User{
			Email:           req.Email,
			FullName:        req.FullName,
			Username:        req.Username,
			Bio:             req.Bio,
			AvatarURL:       req.AvatarURL,
			GithubProfile:   req.GithubProfile,
			LinkedinProfile: req.LinkedinProfile,
			Skills:          req.Skills,
			IsActive:        true,
			Role:            models.RoleMember,
		}

		userID, err := users.CreateUser(user, string(hash))
		if err != nil {
			if errors.Is(err, storage.ErrEmailTaken) {
				log.Info("email already registered", slog.String("email", req.Email))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email already registered"))
				return
			}

			log.Error("failed to create user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.String("user_id", userID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, RegisterResponse{
			Response: response.OK(),
			UserID:   userID,
		})
	}
}
