package getShow

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

type ShowResponse struct {
	response.Response
	Show *models.Show `json:"show"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowGetter
type ShowGetter interface {
	GetShow(ctx context.Context, id int) (*models.Show, error)
}

func New(log *slog.Logger, shows ShowGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.getShow.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		idStr := chi.URLParam(r, "id")
		showID, err := strconv.Atoi(idStr)
		if err != nil || showID <= 0 {
			log.Error("invalid show id format", slog.String("id", idStr))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid show id format"))
			return
		}

		show, err := shows.GetShow(r.Context(), showID)
		if err != nil {
			if errors.Is(err, storage.ErrShowNotFound) {
				log.Info("show not found", slog.Int("show_id", showID))
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("show not found"))
				return
			}

			log.Error("failed to get show", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get show"))
			return
		}

		render.JSON(w, r, ShowResponse{
			Response: response.OK(),
			Show:     show,
		})
	}
}
