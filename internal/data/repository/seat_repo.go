package repository

import (
	"context"
	"fmt"

	"cinema-reservations/internal/data/entity"
	"cinema-reservations/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type SeatRepository interface {
	CreateBatch(ctx context.Context, seats []*entity.Seat) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error)
	// FindByShowtimeID returns every seat of the showtime ordered by
	// row then number, matching the seat-map display order.
	FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error)
	CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error)
	CountFreeByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error)
}

type seatRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatRepository(db database.PgxIface, log *zap.Logger) SeatRepository {
	return &seatRepository{
		db:  db,
		log: log.With(zap.String("repository", "seat")),
	}
}

func (r *seatRepository) CreateBatch(ctx context.Context, seats []*entity.Seat) error {
	if len(seats) == 0 {
		return nil
	}

	// Build batch insert
	query := `INSERT INTO seats (id, showtime_id, seat_row, seat_number, is_reserved, created_at) VALUES `
	args := []interface{}{}

	for i, seat := range seats {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			i*6+1, i*6+2, i*6+3, i*6+4, i*6+5, i*6+6)

		args = append(args,
			seat.ID,
			seat.ShowtimeID,
			seat.Row,
			seat.Number,
			seat.IsReserved,
			seat.CreatedAt,
		)
	}

	_, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to create batch seats",
			zap.Error(err),
			zap.Int("count", len(seats)),
		)
		return fmt.Errorf("create batch seats: %w", err)
	}

	return nil
}

func (r *seatRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Seat, error) {
	query := `
		SELECT id, showtime_id, seat_row, seat_number, is_reserved, created_at
		FROM seats
		WHERE id = $1
	`

	var seat entity.Seat
	err := r.db.QueryRow(ctx, query, id).Scan(
		&seat.ID,
		&seat.ShowtimeID,
		&seat.Row,
		&seat.Number,
		&seat.IsReserved,
		&seat.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seat by ID",
			zap.Error(err),
			zap.String("seat_id", id.String()),
		)
		return nil, fmt.Errorf("find seat by ID %s: %w", id.String(), err)
	}

	return &seat, nil
}

func (r *seatRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Seat, error) {
	query := `
		SELECT id, showtime_id, seat_row, seat_number, is_reserved, created_at
		FROM seats
		WHERE showtime_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find seats by showtime ID",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find seats by showtime ID %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		err := rows.Scan(
			&seat.ID,
			&seat.ShowtimeID,
			&seat.Row,
			&seat.Number,
			&seat.IsReserved,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}

	return seats, nil
}

func (r *seatRepository) CountByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM seats WHERE showtime_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, showtimeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return 0, fmt.Errorf("count seats for showtime %s: %w", showtimeID.String(), err)
	}

	return count, nil
}

func (r *seatRepository) CountFreeByShowtimeID(ctx context.Context, showtimeID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM seats WHERE showtime_id = $1 AND is_reserved = false`

	var count int64
	err := r.db.QueryRow(ctx, query, showtimeID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count free seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return 0, fmt.Errorf("count free seats for showtime %s: %w", showtimeID.String(), err)
	}

	return count, nil
}
