package getVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type VenueResponse struct {
	response.Response
	Venue *models.VenueDetail `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDetailGetter
type VenueDetailGetter interface {
	GetVenueWithShows(ctx context.Context, id int, now time.Time) (*models.VenueDetail, error)
}

func New(log *slog.Logger, venues VenueDetailGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		idStr := chi.URLParam(r, "id")
		if idStr == "" {
			log.Error("venue id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("venue id is required"))
			return
		}

		venueID, err := strconv.Atoi(idStr)
		if err != nil || venueID <= 0 {
			log.Error("invalid venue id format", slog.String("id", idStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id format"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		venue, err := venues.GetVenueWithShows(r.Context(), venueID, time.Now())
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))
			return
		}

		log.Info("venue received",
			slog.Int("past_shows", venue.PastShowsCount),
			slog.Int("upcoming_shows", venue.UpcomingShowsCount),
		)

		responseOK(w, r, venue)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venue *models.VenueDetail) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		Venue:    venue,
	})
}
