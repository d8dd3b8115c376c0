package editArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ArtistResponse struct {
	response.Response
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistUpdater
type ArtistUpdater interface {
	UpdateArtist(ctx context.Context, artist models.Artist) error
}

func New(log *slog.Logger, artists ArtistUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.New"

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

		var req forms.ArtistForm

		if err = forms.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		req.Normalize()

		if err = forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = artists.UpdateArtist(r.Context(), req.Artist(artistID))
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to update artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist "+req.Name+" could not be updated"))
			return
		}

		log.Info("artist updated")

		render.JSON(w, r, ArtistResponse{
			Response: response.OK(),
			ArtistID: artistID,
		})
	}
}
