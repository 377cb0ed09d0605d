package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// Public routes
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)

	// Protected routes
	r.With(middleware.AuthSession(service.Auth, log)).Post("/api/auth/logout", authHandler.Logout)
}
