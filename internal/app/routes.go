package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("theatre-reservation-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)
	r.Use(app.requestLogger)

	r.Get("/health", app.GetHealth)

	r.Route("/theatre-halls", func(r chi.Router) {
		r.Get("/", app.ListTheatreHalls)
		r.Get("/{id}", app.GetTheatreHall)

		r.Group(func(r chi.Router) {
			r.Use(app.requireStaff)
			r.Post("/", app.CreateTheatreHall)
			r.Put("/{id}", app.UpdateTheatreHall)
			r.Patch("/{id}", app.UpdateTheatreHall)
			r.Delete("/{id}", app.DeleteTheatreHall)
		})
	})

	r.Route("/genres", func(r chi.Router) {
		r.Get("/", app.ListGenres)
		r.Get("/{id}", app.GetGenre)

		r.Group(func(r chi.Router) {
			r.Use(app.requireStaff)
			r.Post("/", app.CreateGenre)
			r.Put("/{id}", app.UpdateGenre)
			r.Patch("/{id}", app.UpdateGenre)
			r.Delete("/{id}", app.DeleteGenre)
		})
	})

	r.Route("/actors", func(r chi.Router) {
		r.Get("/", app.ListActors)
		r.Get("/{id}", app.GetActor)

		r.Group(func(r chi.Router) {
			r.Use(app.requireStaff)
			r.Post("/", app.CreateActor)
			r.Put("/{id}", app.UpdateActor)
			r.Patch("/{id}", app.UpdateActor)
			r.Delete("/{id}", app.DeleteActor)
		})
	})

	r.Route("/plays", func(r chi.Router) {
		r.Get("/", app.ListPlays)
		r.Get("/{id}", app.GetPlay)

		r.Group(func(r chi.Router) {
			r.Use(app.requireStaff)
			r.Post("/", app.CreatePlay)
			r.Put("/{id}", app.UpdatePlay)
			r.Patch("/{id}", app.UpdatePlay)
			r.Delete("/{id}", app.DeletePlay)
			r.Post("/{id}/image", app.UploadPlayImage)
		})
	})

	r.Route("/performances", func(r chi.Router) {
		r.Get("/", app.ListPerformances)
		r.Get("/{id}", app.GetPerformance)

		r.Group(func(r chi.Router) {
			r.Use(app.requireStaff)
			r.Post("/", app.CreatePerformance)
			r.Put("/{id}", app.UpdatePerformance)
			r.Patch("/{id}", app.UpdatePerformance)
			r.Delete("/{id}", app.DeletePerformance)
		})
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Use(app.requireAuthentication)
		r.Get("/", app.ListReservations)
		r.Post("/", app.CreateReservation)
		r.Get("/{id}", app.GetReservation)
	})

	return r
}
