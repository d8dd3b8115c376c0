package editVenue

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

type VenueResponse struct {
	response.Response
	VenueID int `json:"venue_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueUpdater
type VenueUpdater interface {
	UpdateVenue(ctx context.Context, venue models.Venue) error
}

func New(log *slog.Logger, venues VenueUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.New"

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

		var req forms.VenueForm

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

		err = venues.UpdateVenue(r.Context(), req.Venue(venueID))
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to update venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("venue "+req.Name+" could not be updated"))
			return
		}

		log.Info("venue updated")

		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			VenueID:  venueID,
		})
	}
}
