package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/movies", movieHandler.GetAllMovies)
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
	r.Get("/api/categories", movieHandler.GetAllCategories)
	r.Get("/api/actors", movieHandler.GetAllActors)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/movies", movieHandler.CreateMovie)
		r.Put("/api/movies/{id}", movieHandler.UpdateMovie)
		r.Delete("/api/movies/{id}", movieHandler.DeleteMovie)

		r.Post("/api/categories", movieHandler.CreateCategory)
		r.Put("/api/categories/{id}", movieHandler.UpdateCategory)
		r.Delete("/api/categories/{id}", movieHandler.DeleteCategory)
		r.Post("/api/actors", movieHandler.CreateActor)
		r.Put("/api/actors/{id}", movieHandler.UpdateActor)
		r.Delete("/api/actors/{id}", movieHandler.DeleteActor)
		r.Post("/api/movies/{id}/categories/{categoryID}", movieHandler.AttachCategory)
		r.Delete("/api/movies/{id}/categories/{categoryID}", movieHandler.DetachCategory)
		r.Post("/api/movies/{id}/actors/{actorID}", movieHandler.AttachActor)
		r.Delete("/api/movies/{id}/actors/{actorID}", movieHandler.DetachActor)
	})
}
