package unsubscribe

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

type UnsubscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=NewsletterUnsubscriber
type NewsletterUnsubscriber interface {
	UnsubscribeNewsletter(email string) error
}

func New(log *slog.Logger, newsletter NewsletterUnsubscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.newsletter.unsubscribe.New"

		log = log.With(slog.String("op", op))

		var req UnsubscribeRequest

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

		err = newsletter.UnsubscribeNewsletter(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrSubscriberNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("subscription not found"))
				return
			}

			log.Error("failed to unsubscribe", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to unsubscribe"))
			return
		}

		log.Info("newsletter unsubscribed")

		render.JSON(w, r, response.OK())
	}
}
