package utils

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Session  SessionConfig
	Redis    RedisConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	// SeatRows is the ordered list of row labels used when a showtime
	// generates its seat inventory.
	SeatRows []string
	// MaxSeatsPerBooking caps the quantity of a single reservation request.
	MaxSeatsPerBooking int
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type SessionConfig struct {
	ExpiryHours int
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// RateLimit is requests per window per client IP. Zero disables limiting.
	RateLimit       int
	RateLimitWindow int // seconds
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SEAT_ROWS", "A,B,C")
	viper.SetDefault("MAX_SEATS_PER_BOOKING", 20)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("RATE_LIMIT", 0)
	viper.SetDefault("RATE_LIMIT_WINDOW", 60)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:               viper.GetString("APP_NAME"),
			Port:               viper.GetString("PORT"),
			Debug:              viper.GetBool("DEBUG"),
			LogPath:            viper.GetString("LOG_PATH"),
			SeatRows:           splitRows(viper.GetString("SEAT_ROWS")),
			MaxSeatsPerBooking: viper.GetInt("MAX_SEATS_PER_BOOKING"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Session: SessionConfig{
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
		},
		Redis: RedisConfig{
			Addr:            viper.GetString("REDIS_ADDR"),
			Password:        viper.GetString("REDIS_PASSWORD"),
			DB:              viper.GetInt("REDIS_DB"),
			RateLimit:       viper.GetInt("RATE_LIMIT"),
			RateLimitWindow: viper.GetInt("RATE_LIMIT_WINDOW"),
		},
	}

	return config, nil
}

func splitRows(raw string) []string {
	parts := strings.Split(raw, ",")
	rows := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			rows = append(rows, trimmed)
		}
	}
	return rows
}
