package getArtistForm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// ArtistFormResponse carries the stored fields used to pre-fill the edit form.
type ArtistFormResponse struct {
	response.Response
	Artist *models.Artist `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id int) (*models.Artist, error)
}

func New(log *slog.Logger, artists ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtistForm.New"

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

		artist, err := artists.GetArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found", slog.Int("artist_id", artistID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))
			return
		}

		render.JSON(w, r, ArtistFormResponse{
			Response: response.OK(),
			Artist:   artist,
		})
	}
}
