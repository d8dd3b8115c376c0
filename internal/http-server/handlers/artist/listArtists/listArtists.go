package listArtists

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

type ArtistsResponse struct {
	response.Response
	Artists []models.Summary `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistLister
type ArtistLister interface {
	ListArtists(ctx context.Context) ([]models.Summary, error)
}

func New(log *slog.Logger, artists ArtistLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.listArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := artists.ListArtists(r.Context())
		if err != nil {
			log.Error("failed to list artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list artists"))

			return
		}

		log.Info("artists listed", slog.Int("count", len(list)))

		if list == nil {
			list = []models.Summary{}
		}

		render.JSON(w, r, ArtistsResponse{
			Response: response.OK(),
			Artists:  list,
		})
	}
}
