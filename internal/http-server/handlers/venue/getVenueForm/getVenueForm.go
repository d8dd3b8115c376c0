package getVenueForm

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

// VenueFormResponse carries the stored fields used to pre-fill the edit form.
type VenueFormResponse struct {
	response.Response
	Venue *models.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenue(ctx context.Context, id int) (*models.Venue, error)
}

func New(log *slog.Logger, venues VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenueForm.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		idStr := chi.URLParam(r, "id")
		venueID, err := strconv.Atoi(idStr)
		if err != nil || venueID <= 0 {
			log.Error("invalid venue id format", slog.String("id", idStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id format"))
			return
		}

		venue, err := venues.GetVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found", slog.Int("venue_id", venueID))
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

		render.JSON(w, r, VenueFormResponse{
			Response: response.OK(),
			Venue:    venue,
		})
	}
}
