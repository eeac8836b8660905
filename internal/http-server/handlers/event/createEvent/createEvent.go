package createEvent

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"communityHub/internal/http-server/middleware/mwauth"
	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type EventRequest struct {
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description" validate:"required"`
	EventType            string     `json:"event_type" validate:"required"`
	StartDate            time.Time  `json:"start_date" validate:"required"`
	EndDate              time.Time  `json:"end_date" validate:"required"`
	Location             string     `json:"location"`
	IsOnline             bool       `json:"is_online"`
	MaxParticipants      *int       `json:"max_participants"`
	RegistrationDeadline *time.Time `json:"registration_deadline"`
	Tags                 []string   `json:"tags"`
	ImageURL             string     `json:"image_url"`
	Requirements         []string   `json:"requirements"`
}

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(event models.Event) (*models.Event, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log = log.With(slog.String("op", op))

		caller, ok := mwauth.UserFromContext(r.Context())
		if !ok {
			log.Error("no user in request context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authorization required"))
			return
		}

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.String("title", req.Title))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		event, err := events.CreateEvent(models.Event{
			Title:                req.Title,
			Description:          req.Description,
			EventType:            req.EventType,
			StartDate:            req.StartDate,
			EndDate:              req.EndDate,
			Location:             req.Location,
			IsOnline:             req.IsOnline,
			MaxParticipants:      req.MaxParticipants,
			RegistrationDeadline: req.RegistrationDeadline,
			Tags:                 req.Tags,
			ImageURL:             req.ImageURL,
			Requirements:         req.Requirements,
			Status:               models.EventStatusUpcoming,
			CreatedBy:            caller.ID,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.String("id", event.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
