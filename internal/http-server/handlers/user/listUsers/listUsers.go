package listUsers

import (
	"log/slog"
	"net/http"
	"strconv"

	"communityHub/internal/lib/api/response"
	"communityHub/internal/lib/logger/sl"
	"communityHub/internal/models"

	"github.com/go-chi/render"
)

type UsersResponse struct {
	response.Response
	Users []models.User `json:"users"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	Users(search string, skip, limit int) ([]models.User, error)
}

func New(log *slog.Logger, users UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.listUsers.New"

		log = log.With(slog.String("op", op))

		query := r.URL.Query()

		search := query.Get("search")

		var skip, limit int

		if raw := query.Get("skip"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid skip parameter"))
				return
			}
			skip = n
		}

		if raw := query.Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit parameter"))
				return
			}
			limit = n
		}

		list, err := users.Users(search, skip, limit)
		if err != nil {
			log.Error("failed to list users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list users"))
			return
		}

		log.Info("users listed", slog.Int("count", len(list)))

		render.JSON(w, r, UsersResponse{
			Response: response.OK(),
			Users:    list,
		})
	}
}
