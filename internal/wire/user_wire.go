package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))

		r.Get("/api/user/profile", userHandler.GetProfile)
		r.Put("/api/user/profile", userHandler.UpdateProfile)
	})

	// Admin routes
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))
		r.Use(middleware.Admin(log))

		r.Get("/", userHandler.GetAllUsers)
		r.Delete("/{id}", userHandler.DeactivateUser)
	})
}
