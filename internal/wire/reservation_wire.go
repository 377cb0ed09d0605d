package wire

import (
	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	service *usecase.Service,
	log *zap.Logger,
) {
	// All reservation routes require auth; ownership checks happen in
	// the service so admins can act on any group.
	r.Route("/api/reservations", func(r chi.Router) {
		r.Use(middleware.AuthSession(service.Auth, log))

		r.Post("/", reservationHandler.CreateReservation)
		r.Get("/", reservationHandler.GetUserReservations)
		r.Get("/{id}", reservationHandler.GetReservationByID)
		r.Put("/{id}", reservationHandler.UpdateReservation)
		r.Patch("/{id}", reservationHandler.UpdateReservation)
		r.Delete("/{id}", reservationHandler.CancelReservation)
	})
}
