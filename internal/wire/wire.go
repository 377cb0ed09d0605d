package wire

import (
	"net/http"
	"time"

	"cinema-reservations/internal/adaptor"
	"cinema-reservations/internal/data/repository"
	"cinema-reservations/internal/usecase"
	"cinema-reservations/pkg/middleware"
	"cinema-reservations/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// App holds the wired HTTP surface
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, redisClient *redis.Client, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, redisClient, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	redisClient *redis.Client,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimit(
		redisClient,
		config.Redis.RateLimit,
		time.Duration(config.Redis.RateLimitWindow)*time.Second,
		logger,
	))

	wireAuth(r, handler.Auth, service, logger)
	wireUser(r, handler.User, service, logger)
	wireCinema(r, handler.Cinema, service, logger)
	wireMovie(r, handler.Movie, service, logger)
	wireShowtime(r, handler.Showtime, service, logger)
	wireReservation(r, handler.Reservation, service, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
