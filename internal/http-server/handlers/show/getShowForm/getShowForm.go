package getShowForm

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ShowFormResponse carries the choices for a blank show form. StartTime defaults to now.
type ShowFormResponse struct {
	response.Response
	Venues    []models.Summary `json:"venues"`
	Artists   []models.Summary `json:"artists"`
	StartTime time.Time        `json:"start_time"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowFormLister
type ShowFormLister interface {
	ListVenues(ctx context.Context) ([]models.Summary, error)
	ListArtists(ctx context.Context) ([]models.Summary, error)
}

func New(log *slog.Logger, lister ShowFormLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.getShowForm.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		venues, err := lister.ListVenues(r.Context())
		if err != nil {
			log.Error("failed to list venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load show form"))

			return
		}

		artists, err := lister.ListArtists(r.Context())
		if err != nil {
			log.Error("failed to list artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to load show form"))

			return
		}

		if venues == nil {
			venues = []models.Summary{}
		}
		if artists == nil {
			artists = []models.Summary{}
		}

		render.JSON(w, r, ShowFormResponse{
			Response:  response.OK(),
			Venues:    venues,
			Artists:   artists,
			StartTime: time.Now().UTC().Truncate(time.Second),
		})
	}
}
