package listVenues

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

type VenuesResponse struct {
	response.Response
	Areas []models.Area `json:"areas"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGrouper
type VenueGrouper interface {
	GroupVenuesByLocation(ctx context.Context, now time.Time) ([]models.Area, error)
}

func New(log *slog.Logger, venues VenueGrouper) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		areas, err := venues.GroupVenuesByLocation(r.Context(), time.Now())
		if err != nil {
			log.Error("failed to list venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to list venues"))

			return
		}

		log.Info("venues listed", slog.Int("areas", len(areas)))

		responseOK(w, r, areas)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, areas []models.Area) {
	if areas == nil {
		areas = []models.Area{}
	}

	render.JSON(w, r, VenuesResponse{
		Response: response.OK(),
		Areas:    areas,
	})
}
