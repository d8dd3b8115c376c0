package deleteArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistDeleter
type ArtistDeleter interface {
	DeleteArtist(ctx context.Context, id int) error
}

// New removes an artist together with its shows.
func New(log *slog.Logger, artists ArtistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.deleteArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		idStr := chi.URLParam(r, "id")
		artistID, err := strconv.Atoi(idStr)
		if err != nil || artistID <= 0 {
			log.Error("invalid artist id format", slog.String("id", idStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id format"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		err = artists.DeleteArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist could not be deleted"))
			return
		}

		log.Info("artist deleted")

		render.JSON(w, r, response.OK())
	}
}
