package submitMessage

import (
	"errors"
	"log/slog"
	"net/http"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type MessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type MessageResponse struct {
	response.Response
	MessageID string `json:"message_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MessageSaver
type MessageSaver interface {
	SaveContactMessage(name, email, subject, message string) (string, error)
}

func New(log *slog.Logger, messages MessageSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.contact.submitMessage.New"

		log = log.With(slog.String("op", op))

		var req MessageRequest

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

		id, err := messages.SaveContactMessage(req.Name, req.Email, req.Subject, req.Message)
		if err != nil {
			log.Error("failed to save message", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to save message"))
			return
		}

		log.Info("contact message saved", slog.String("message_id", id))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, MessageResponse{
			Response:  response.OK(),
			MessageID: id,
		})
	}
}
