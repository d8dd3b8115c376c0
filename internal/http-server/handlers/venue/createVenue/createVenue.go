package createVenue

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

type VenueResponse struct {
	response.Response
	VenueID int `json:"venue_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, venue models.Venue) (int, error)
}

func New(log *slog.Logger, venues VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req forms.VenueForm

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

		venueID, err := venues.CreateVenue(r.Context(), req.Venue(0))
		if err != nil {
			log.Error("failed to add venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("venue "+req.Name+" could not be listed"))

			return
		}

		log.Info("venue added", slog.Int("id", venueID))

		responseOK(w, r, venueID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venueID int) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		VenueID:  venueID,
	})
}
