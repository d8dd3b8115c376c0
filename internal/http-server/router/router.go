// Package router wires every Fyyur handler onto a chi router.
package router

import (
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/handlers/artist/createArtist"
	"fyyur/internal/http-server/handlers/artist/deleteArtist"
	"fyyur/internal/http-server/handlers/artist/editArtist"
	"fyyur/internal/http-server/handlers/artist/getArtist"
	"fyyur/internal/http-server/handlers/artist/getArtistForm"
	"fyyur/internal/http-server/handlers/artist/listArtists"
	"fyyur/internal/http-server/handlers/artist/searchArtists"
	"fyyur/internal/http-server/handlers/form/getChoices"
	"fyyur/internal/http-server/handlers/show/createShow"
	"fyyur/internal/http-server/handlers/show/getShow"
	"fyyur/internal/http-server/handlers/show/getShowForm"
	"fyyur/internal/http-server/handlers/show/listShows"
	"fyyur/internal/http-server/handlers/venue/createVenue"
	"fyyur/internal/http-server/handlers/venue/deleteVenue"
	"fyyur/internal/http-server/handlers/venue/editVenue"
	"fyyur/internal/http-server/handlers/venue/getVenue"
	"fyyur/internal/http-server/handlers/venue/getVenueForm"
	"fyyur/internal/http-server/handlers/venue/listVenues"
	"fyyur/internal/http-server/handlers/venue/searchVenues"
	"fyyur/internal/http-server/middleware/mwlogger"
	"fyyur/internal/http-server/middleware/mwmetrics"
	"fyyur/internal/lib/api/response"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Storage is everything the handlers need from the persistence layer.
type Storage interface {
	listVenues.VenueGrouper
	searchVenues.VenueSearcher
	getVenue.VenueDetailGetter
	getVenueForm.VenueGetter
	createVenue.VenueCreator
	editVenue.VenueUpdater
	deleteVenue.VenueDeleter

	listArtists.ArtistLister
	searchArtists.ArtistSearcher
	getArtist.ArtistDetailGetter
	getArtistForm.ArtistGetter
	createArtist.ArtistCreator
	editArtist.ArtistUpdater
	deleteArtist.ArtistDeleter

	listShows.ShowLister
	getShow.ShowGetter
	getShowForm.ShowFormLister
	createShow.ShowCreator
}

// New builds the HTTP handler. Request metrics are registered on reg and exposed at /metrics.
func New(log *slog.Logger, storage Storage, reg *prometheus.Registry) http.Handler {
	metrics := mwmetrics.NewMetrics(reg)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(metrics.Middleware)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	router.Route("/venues", func(r chi.Router) {
		r.Get("/", listVenues.New(log, storage))
		r.Post("/search", searchVenues.New(log, storage))
		r.Get("/create", getChoices.New())
		r.Post("/create", createVenue.New(log, storage))
		r.Get("/{id}", getVenue.New(log, storage))
		r.Delete("/{id}", deleteVenue.New(log, storage))
		r.Get("/{id}/edit", getVenueForm.New(log, storage))
		r.Post("/{id}/edit", editVenue.New(log, storage))
	})

	router.Route("/artists", func(r chi.Router) {
		r.Get("/", listArtists.New(log, storage))
		r.Post("/search", searchArtists.New(log, storage))
		r.Get("/create", getChoices.New())
		r.Post("/create", createArtist.New(log, storage))
		r.Get("/{id}", getArtist.New(log, storage))
		r.Delete("/{id}", deleteArtist.New(log, storage))
		r.Get("/{id}/edit", getArtistForm.New(log, storage))
		r.Post("/{id}/edit", editArtist.New(log, storage))
	})

	router.Route("/shows", func(r chi.Router) {
		r.Get("/", listShows.New(log, storage))
		r.Get("/create", getShowForm.New(log, storage))
		r.Post("/create", createShow.New(log, storage))
		r.Get("/{id}", getShow.New(log, storage))
	})

	return router
}
