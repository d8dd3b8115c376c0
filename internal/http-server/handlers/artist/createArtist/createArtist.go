package createArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ArtistResponse struct {
	response.Response
	ArtistID int `json:"artist_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, artist models.Artist) (int, error)
}

func New(log *slog.Logger, artists ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.ArtistForm

		err := forms.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		req.Normalize()

		log.Info("request body decoded", slog.Any("request", req))

		if err = forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		artistID, err := artists.CreateArtist(r.Context(), req.Artist(0))
		if err != nil {
			log.Error("failed to add artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("artist "+req.Name+" could not be listed"))

			return
		}

		log.Info("artist added", slog.Int("id", artistID))

		responseOK(w, r, artistID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artistID int) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK(),
		ArtistID: artistID,
	})
}
