package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShowtime(
	r chi.Router,
	showtimeHandler *adaptor.ShowtimeHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Get("/api/showtimes", showtimeHandler.GetAllShowtimes)
	r.Get("/api/showtimes/{id}", showtimeHandler.GetShowtimeByID)
	r.Get("/api/map", showtimeHandler.GetSeatMap)

	// Admin routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/showtimes", showtimeHandler.CreateShowtime)
		r.Put("/api/showtimes/{id}", showtimeHandler.UpdateShowtime)
		r.Delete("/api/showtimes/{id}", showtimeHandler.DeactivateShowtime)
	})
}
