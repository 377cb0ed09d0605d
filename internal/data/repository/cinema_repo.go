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

type CinemaRepository interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error)
	FindByName(ctx context.Context, name string) (*entity.Cinema, error)
	FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Cinema, error)
	CountAll(ctx context.Context, activeOnly bool) (int64, error)
	Update(ctx context.Context, cinema *entity.Cinema) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type cinemaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCinemaRepository(db database.PgxIface, log *zap.Logger) CinemaRepository {
	return &cinemaRepository{
		db:  db,
		log: log.With(zap.String("repository", "cinema")),
	}
}

func (r *cinemaRepository) Create(ctx context.Context, cinema *entity.Cinema) error {
	query := `
		INSERT INTO cinemas (id, name, address, total_seats, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		cinema.ID,
		cinema.Name,
		cinema.Address,
		cinema.TotalSeats,
		cinema.IsActive,
		cinema.CreatedAt,
		cinema.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create cinema",
			zap.Error(err),
			zap.String("name", cinema.Name),
		)
		return fmt.Errorf("create cinema %s: %w", cinema.Name, err)
	}

	return nil
}

func (r *cinemaRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	query := `
		SELECT id, name, address, total_seats, is_active, created_at, updated_at, deleted_at
		FROM cinemas
		WHERE id = $1 AND deleted_at IS NULL
	`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, id).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.TotalSeats,
		&cinema.IsActive,
		&cinema.CreatedAt,
		&cinema.UpdatedAt,
		&cinema.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by ID",
			zap.Error(err),
			zap.String("cinema_id", id.String()),
		)
		return nil, fmt.Errorf("find cinema by ID %s: %w", id.String(), err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindByName(ctx context.Context, name string) (*entity.Cinema, error) {
	query := `
		SELECT id, name, address, total_seats, is_active, created_at, updated_at, deleted_at
		FROM cinemas
		WHERE name = $1 AND deleted_at IS NULL
	`

	var cinema entity.Cinema
	err := r.db.QueryRow(ctx, query, name).Scan(
		&cinema.ID,
		&cinema.Name,
		&cinema.Address,
		&cinema.TotalSeats,
		&cinema.IsActive,
		&cinema.CreatedAt,
		&cinema.UpdatedAt,
		&cinema.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find cinema by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find cinema by name %s: %w", name, err)
	}

	return &cinema, nil
}

func (r *cinemaRepository) FindAll(ctx context.Context, limit, offset int, activeOnly bool) ([]*entity.Cinema, error) {
	query := `
		SELECT id, name, address, total_seats, is_active, created_at, updated_at
		FROM cinemas
		WHERE deleted_at IS NULL AND ($3 = false OR is_active = true)
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset, activeOnly)
	if err != nil {
		r.log.Error("Failed to find all cinemas", zap.Error(err))
		return nil, fmt.Errorf("find all cinemas: %w", err)
	}
	defer rows.Close()

	var cinemas []*entity.Cinema
	for rows.Next() {
		var cinema entity.Cinema
		err := rows.Scan(
			&cinema.ID,
			&cinema.Name,
			&cinema.Address,
			&cinema.TotalSeats,
			&cinema.IsActive,
			&cinema.CreatedAt,
			&cinema.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan cinema row", zap.Error(err))
			return nil, fmt.Errorf("scan cinema row: %w", err)
		}
		cinemas = append(cinemas, &cinema)
	}

	return cinemas, nil
}

func (r *cinemaRepository) CountAll(ctx context.Context, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM cinemas WHERE deleted_at IS NULL AND ($1 = false OR is_active = true)`

	var count int64
	err := r.db.QueryRow(ctx, query, activeOnly).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count cinemas", zap.Error(err))
		return 0, fmt.Errorf("count cinemas: %w", err)
	}

	return count, nil
}

func (r *cinemaRepository) Update(ctx context.Context, cinema *entity.Cinema) error {
	query := `
		UPDATE cinemas
		SET name = $2, address = $3, total_seats = $4, is_active = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		cinema.ID,
		cinema.Name,
		cinema.Address,
		cinema.TotalSeats,
		cinema.IsActive,
		cinema.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update cinema",
			zap.Error(err),
			zap.String("cinema_id", cinema.ID.String()),
		)
		return fmt.Errorf("update cinema %s: %w", cinema.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema %s not found", cinema.ID.String())
	}

	return nil
}

func (r *cinemaRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE cinemas SET is_active = false, updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to deactivate cinema",
			zap.Error(err),
			zap.String("cinema_id", id.String()),
		)
		return fmt.Errorf("deactivate cinema %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("cinema %s not found", id.String())
	}

	r.log.Info("Cinema deactivated", zap.String("cinema_id", id.String()))
	return nil
}
