package subscribe

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SubscribeRequest struct {
	Email       string   `json:"email" validate:"required,email"`
	FullName    string   `json:"full_name"`
	Preferences []string `json:"preferences"`
}

type SubscribeResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NewsletterSubscriber
type NewsletterSubscriber interface {
	SubscribeNewsletter(email, fullName string, preferences []string) (bool, error)
}

// New subscribes an email to the newsletter. A previously unsubscribed
// address is reactivated instead of duplicated.
func New(log *slog.Logger, newsletter NewsletterSubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.newsletter.subscribe.New"

		log = log.With(slog.String("op", op))

		var req SubscribeRequest

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

		reactivated, err := newsletter.SubscribeNewsletter(req.Email, req.FullName, req.Preferences)
		if err != nil {
			if errors.Is(err, storage.ErrAlreadySubscribed) {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is already subscribed"))
				return
			}

			log.Error("failed to subscribe", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to subscribe"))
			return
		}

		msg := "successfully subscribed to newsletter"
		if reactivated {
			msg = "subscription reactivated"
		}

		log.Info("newsletter subscription", slog.Bool("reactivated", reactivated))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SubscribeResponse{
			Response: response.OK(),
			Message:  msg,
		})
	}
}
