package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/cinemas", cinemaHandler.GetAllCinemas)
	r.Get("/api/cinemas/{id}", cinemaHandler.GetCinemaByID)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/cinemas", cinemaHandler.CreateCinema)
		r.Put("/api/cinemas/{id}", cinemaHandler.UpdateCinema)
		r.Delete("/api/cinemas/{id}", cinemaHandler.DeactivateCinema)

		r.Post("/api/cinemas/{id}/rooms", cinemaHandler.CreateRoom)
		r.Put("/api/rooms/{id}", cinemaHandler.UpdateRoom)
		r.Delete("/api/rooms/{id}", cinemaHandler.DeleteRoom)
	})
}
