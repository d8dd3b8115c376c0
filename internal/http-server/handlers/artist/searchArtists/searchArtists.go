package searchArtists

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type SearchRequest struct {
	SearchTerm string `json:"search_term" form:"search_term"`
}

type SearchResponse struct {
	response.Response
	SearchTerm string           `json:"search_term"`
	Count      int              `json:"count"`
	Data       []models.Summary `json:"data"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistSearcher
type ArtistSearcher interface {
	SearchArtists(ctx context.Context, term string, now time.Time) ([]models.Summary, error)
}

func New(log *slog.Logger, artists ArtistSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.searchArtists.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req SearchRequest

		// An empty body searches with an empty term.
		if err := forms.Decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		term := strings.TrimSpace(req.SearchTerm)

		found, err := artists.SearchArtists(r.Context(), term, time.Now())
		if err != nil {
			log.Error("failed to search artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search artists"))

			return
		}

		log.Info("artists searched", slog.String("term", term), slog.Int("count", len(found)))

		responseOK(w, r, term, found)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, term string, found []models.Summary) {
	if found == nil {
		found = []models.Summary{}
	}

	render.JSON(w, r, SearchResponse{
		Response:   response.OK(),
		SearchTerm: term,
		Count:      len(found),
		Data:       found,
	})
}
