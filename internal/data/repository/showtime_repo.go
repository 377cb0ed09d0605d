package repository

import (
	"context"
	"fmt"
	"time"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShowtimeRepository interface {
	Create(ctx context.Context, showtime *entity.Showtime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Showtime, error)
	CountAll(ctx context.Context) (int64, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error)
	// CountActiveInWindow counts active showtimes in the room whose
	// show_date falls inside [from, to], excluding one showtime when
	// rescheduling it. Pass uuid.Nil to exclude nothing.
	CountActiveInWindow(ctx context.Context, roomID uuid.UUID, from, to time.Time, excludeID uuid.UUID) (int64, error)
	Update(ctx context.Context, showtime *entity.Showtime) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type showtimeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShowtimeRepository(db database.PgxIface, log *zap.Logger) ShowtimeRepository {
	return &showtimeRepository{
		db:  db,
		log: log.With(zap.String("repository", "showtime")),
	}
}

func (r *showtimeRepository) Create(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		INSERT INTO showtimes (id, movie_id, room_id, show_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.RoomID,
		showtime.ShowDate,
		showtime.IsActive,
		showtime.CreatedAt,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create showtime",
			zap.Error(err),
			zap.String("movie_id", showtime.MovieID.String()),
			zap.String("room_id", showtime.RoomID.String()),
			zap.Time("show_date", showtime.ShowDate),
		)
		return fmt.Errorf("create showtime for movie %s room %s: %w",
			showtime.MovieID.String(), showtime.RoomID.String(), err)
	}

	return nil
}

func (r *showtimeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, show_date, is_active, created_at, updated_at, deleted_at
		FROM showtimes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var showtime entity.Showtime
	err := r.db.QueryRow(ctx, query, id).Scan(
		&showtime.ID,
		&showtime.MovieID,
		&showtime.RoomID,
		&showtime.ShowDate,
		&showtime.IsActive,
		&showtime.CreatedAt,
		&showtime.UpdatedAt,
		&showtime.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find showtime by ID",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return nil, fmt.Errorf("find showtime by ID %s: %w", id.String(), err)
	}

	return &showtime, nil
}

func (r *showtimeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, show_date, is_active, created_at, updated_at
		FROM showtimes
		WHERE deleted_at IS NULL AND is_active = true
		ORDER BY show_date
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all showtimes", zap.Error(err))
		return nil, fmt.Errorf("find all showtimes: %w", err)
	}
	defer rows.Close()

	return scanShowtimes(rows, r.log)
}

func (r *showtimeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM showtimes WHERE deleted_at IS NULL AND is_active = true`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count showtimes", zap.Error(err))
		return 0, fmt.Errorf("count showtimes: %w", err)
	}

	return count, nil
}

func (r *showtimeRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Showtime, error) {
	query := `
		SELECT id, movie_id, room_id, show_date, is_active, created_at, updated_at
		FROM showtimes
		WHERE movie_id = $1 AND deleted_at IS NULL AND is_active = true
		ORDER BY show_date
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find showtimes by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find showtimes by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	return scanShowtimes(rows, r.log)
}

func (r *showtimeRepository) CountActiveInWindow(ctx context.Context, roomID uuid.UUID, from, to time.Time, excludeID uuid.UUID) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM showtimes
		WHERE room_id = $1
		  AND show_date BETWEEN $2 AND $3
		  AND id != $4
		  AND is_active = true
		  AND deleted_at IS NULL
	`

	var count int64
	err := r.db.QueryRow(ctx, query, roomID, from, to, excludeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count showtimes in window",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.Time("from", from),
			zap.Time("to", to),
		)
		return 0, fmt.Errorf("count showtimes in window for room %s: %w", roomID.String(), err)
	}

	return count, nil
}

func (r *showtimeRepository) Update(ctx context.Context, showtime *entity.Showtime) error {
	query := `
		UPDATE showtimes
		SET movie_id = $2, room_id = $3, show_date = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		showtime.ID,
		showtime.MovieID,
		showtime.RoomID,
		showtime.ShowDate,
		showtime.IsActive,
		showtime.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update showtime",
			zap.Error(err),
			zap.String("showtime_id", showtime.ID.String()),
		)
		return fmt.Errorf("update showtime %s: %w", showtime.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", showtime.ID.String())
	}

	return nil
}

func (r *showtimeRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE showtimes SET is_active = false, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate showtime",
			zap.Error(err),
			zap.String("showtime_id", id.String()),
		)
		return fmt.Errorf("deactivate showtime %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("showtime %s not found", id.String())
	}

	r.log.Info("Showtime deactivated", zap.String("showtime_id", id.String()))
	return nil
}

func scanShowtimes(rows pgx.Rows, log *zap.Logger) ([]*entity.Showtime, error) {
	var showtimes []*entity.Showtime
	for rows.Next() {
		var showtime entity.Showtime
		err := rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.RoomID,
			&showtime.ShowDate,
			&showtime.IsActive,
			&showtime.CreatedAt,
			&showtime.UpdatedAt,
		)
		if err != nil {
			log.Error("Failed to scan showtime row", zap.Error(err))
			return nil, fmt.Errorf("scan showtime row: %w", err)
		}
		showtimes = append(showtimes, &showtime)
	}

	return showtimes, nil
}
