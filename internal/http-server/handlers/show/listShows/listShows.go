package listShows

import (
	"context"
	"log/slog"
	"net/http"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type ShowsResponse struct {
	response.Response
	Shows []models.ShowListing `json:"shows"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowLister
type ShowLister interface {
	ListShows(ctx context.Context) ([]models.ShowListing, error)
}

func New(log *slog.Logger, shows ShowLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.listShows.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := shows.ListShows(r.Context())
		if err != nil {
			log.Error("failed to list shows", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list shows"))

			return
		}

		log.Info("shows listed", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, shows []models.ShowListing) {
	if shows == nil {
		shows = []models.ShowListing{}
	}

	render.JSON(w, r, ShowsResponse{
		Response: response.OK(),
		Shows:    shows,
	})
}
