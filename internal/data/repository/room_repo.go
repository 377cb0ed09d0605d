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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.ScreeningRoom) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ScreeningRoom, error)
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error)
	FindByCinemaAndNumber(ctx context.Context, cinemaID uuid.UUID, roomNumber int) (*entity.ScreeningRoom, error)
	// SumCapacityByCinemaID totals sibling room capacities, excluding one
	// room when updating it in place. Pass uuid.Nil to include all rooms.
	SumCapacityByCinemaID(ctx context.Context, cinemaID, excludeRoomID uuid.UUID) (int, error)
	Update(ctx context.Context, room *entity.ScreeningRoom) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.ScreeningRoom) error {
	query := `
		INSERT INTO screening_rooms (id, cinema_id, room_number, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.CinemaID,
		room.RoomNumber,
		room.Capacity,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening room",
			zap.Error(err),
			zap.String("cinema_id", room.CinemaID.String()),
			zap.Int("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %d for cinema %s: %w",
			room.RoomNumber, room.CinemaID.String(), err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScreeningRoom, error) {
	query := `
		SELECT id, cinema_id, room_number, capacity, created_at, updated_at, deleted_at
		FROM screening_rooms
		WHERE id = $1 AND deleted_at IS NULL
	`

	var room entity.ScreeningRoom
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.CinemaID,
		&room.RoomNumber,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error) {
	query := `
		SELECT id, cinema_id, room_number, capacity, created_at, updated_at
		FROM screening_rooms
		WHERE cinema_id = $1 AND deleted_at IS NULL
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find rooms by cinema ID",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("find rooms by cinema ID %s: %w", cinemaID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.ScreeningRoom
	for rows.Next() {
		var room entity.ScreeningRoom
		err := rows.Scan(
			&room.ID,
			&room.CinemaID,
			&room.RoomNumber,
			&room.Capacity,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

func (r *roomRepository) FindByCinemaAndNumber(ctx context.Context, cinemaID uuid.UUID, roomNumber int) (*entity.ScreeningRoom, error) {
	query := `
		SELECT id, cinema_id, room_number, capacity, created_at, updated_at, deleted_at
		FROM screening_rooms
		WHERE cinema_id = $1 AND room_number = $2 AND deleted_at IS NULL
	`

	var room entity.ScreeningRoom
	err := r.db.QueryRow(ctx, query, cinemaID, roomNumber).Scan(
		&room.ID,
		&room.CinemaID,
		&room.RoomNumber,
		&room.Capacity,
		&room.CreatedAt,
		&room.UpdatedAt,
		&room.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by cinema and number",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
			zap.Int("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room %d in cinema %s: %w",
			roomNumber, cinemaID.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) SumCapacityByCinemaID(ctx context.Context, cinemaID, excludeRoomID uuid.UUID) (int, error) {
	query := `
		SELECT COALESCE(SUM(capacity), 0)
		FROM screening_rooms
		WHERE cinema_id = $1 AND id != $2 AND deleted_at IS NULL
	`

	var total int
	err := r.db.QueryRow(ctx, query, cinemaID, excludeRoomID).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum room capacities",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return 0, fmt.Errorf("sum room capacities for cinema %s: %w", cinemaID.String(), err)
	}

	return total, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.ScreeningRoom) error {
	query := `
		UPDATE screening_rooms
		SET room_number = $2, capacity = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Capacity,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE screening_rooms SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Screening room soft deleted", zap.String("room_id", id.String()))
	return nil
}
