package deleteVenue

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int) error
}

// New removes a venue together with its shows.
func New(log *slog.Logger, venues VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

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

		log = log.With(slog.Int("venue_id", venueID))

		err = venues.DeleteVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("venue could not be deleted"))
			return
		}

		log.Info("venue deleted")

		render.JSON(w, r, response.OK())
	}
}
