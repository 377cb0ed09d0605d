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

// ReservedSeat pairs a reservation row with the seat it holds.
type ReservedSeat struct {
	Reservation *entity.Reservation
	Seat        *entity.Seat
}

type ReservationRepository interface {
	// ReserveSeats claims the first quantity free seats of the showtime
	// (row, number order) inside a single transaction, creating or
	// reusing the user's group for that showtime. The claim is
	// all-or-nothing: on any failure no seat is left reserved.
	// Returns ErrNoSeatsAvailable or *NotEnoughSeatsError when the
	// inventory cannot satisfy the request.
	ReserveSeats(ctx context.Context, userID, showtimeID uuid.UUID, quantity int) (*entity.ReservationGroup, []*ReservedSeat, error)

	// CancelGroup releases every seat the group holds, then deletes the
	// member reservations and the group itself, in one transaction.
	// Returns ErrNothingToRelease when the group has no reservations.
	CancelGroup(ctx context.Context, groupID uuid.UUID) (int, error)

	// ReassignSeat moves a reservation to a different free seat,
	// releasing the old one, in one transaction. Returns
	// ErrSeatAlreadyReserved when the target seat is taken.
	ReassignSeat(ctx context.Context, reservationID, newSeatID uuid.UUID) error

	FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.ReservationGroup, error)
	FindGroupsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReservationGroup, error)
	CountGroupsByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindReservationsByGroupID(ctx context.Context, groupID uuid.UUID) ([]*ReservedSeat, error)
	FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) ReserveSeats(ctx context.Context, userID, showtimeID uuid.UUID, quantity int) (*entity.ReservationGroup, []*ReservedSeat, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("begin reserve transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Lock the first quantity free seats. SKIP LOCKED makes concurrent
	// claims of the same seats see them as unavailable instead of
	// blocking, so the last seat goes to exactly one caller.
	selectQuery := `
		SELECT id, showtime_id, seat_row, seat_number, created_at
		FROM seats
		WHERE showtime_id = $1 AND is_reserved = false
		ORDER BY seat_row, seat_number
		LIMIT $2
		FOR UPDATE SKIP LOCKED
	`

	rows, err := tx.Query(ctx, selectQuery, showtimeID, quantity)
	if err != nil {
		r.log.Error("Failed to select free seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, nil, fmt.Errorf("select free seats for showtime %s: %w", showtimeID.String(), err)
	}

	var seats []*entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.ID, &seat.ShowtimeID, &seat.Row, &seat.Number, &seat.CreatedAt); err != nil {
			rows.Close()
			return nil, nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, &seat)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate seat rows: %w", err)
	}

	if len(seats) == 0 {
		return nil, nil, ErrNoSeatsAvailable
	}
	if len(seats) < quantity {
		return nil, nil, &NotEnoughSeatsError{Available: len(seats)}
	}

	seatIDs := make([]uuid.UUID, len(seats))
	for i, seat := range seats {
		seatIDs[i] = seat.ID
	}

	claim, err := tx.Exec(ctx,
		`UPDATE seats SET is_reserved = true WHERE id = ANY($1) AND is_reserved = false`,
		seatIDs,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("claim seats: %w", err)
	}
	if int(claim.RowsAffected()) != len(seatIDs) {
		// Should not happen under the row locks above; bail out so the
		// rollback keeps the batch untouched.
		return nil, nil, ErrSeatAlreadyReserved
	}

	group, err := findOrCreateGroup(ctx, tx, userID, showtimeID)
	if err != nil {
		return nil, nil, err
	}

	now := time.Now()
	reserved := make([]*ReservedSeat, len(seats))
	for i, seat := range seats {
		reservation := &entity.Reservation{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			GroupID:    group.ID,
			SeatID:     seat.ID,
			ReservedAt: now,
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO reservations (id, group_id, seat_id, reserved_at, created_at)
			 VALUES ($1, $2, $3, $4, $5)`,
			reservation.ID,
			reservation.GroupID,
			reservation.SeatID,
			reservation.ReservedAt,
			reservation.CreatedAt,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("insert reservation for seat %s: %w", seat.ID.String(), err)
		}

		seat.IsReserved = true
		reserved[i] = &ReservedSeat{Reservation: reservation, Seat: seat}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, fmt.Errorf("commit reserve transaction: %w", err)
	}

	r.log.Info("Seats reserved",
		zap.String("group_id", group.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("showtime_id", showtimeID.String()),
		zap.Int("count", len(reserved)),
	)

	return group, reserved, nil
}

func findOrCreateGroup(ctx context.Context, tx pgx.Tx, userID, showtimeID uuid.UUID) (*entity.ReservationGroup, error) {
	var group entity.ReservationGroup
	err := tx.QueryRow(ctx,
		`SELECT id, user_id, showtime_id, created_at, updated_at
		 FROM reservation_groups
		 WHERE user_id = $1 AND showtime_id = $2`,
		userID, showtimeID,
	).Scan(&group.ID, &group.UserID, &group.ShowtimeID, &group.CreatedAt, &group.UpdatedAt)

	if err == nil {
		return &group, nil
	}
	if err != pgx.ErrNoRows {
		return nil, fmt.Errorf("find reservation group: %w", err)
	}

	now := time.Now()
	group = entity.ReservationGroup{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		ShowtimeID: showtimeID,
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO reservation_groups (id, user_id, showtime_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		group.ID, group.UserID, group.ShowtimeID, group.CreatedAt, group.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create reservation group: %w", err)
	}

	return &group, nil
}

func (r *reservationRepository) CancelGroup(ctx context.Context, groupID uuid.UUID) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin cancel transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx,
		`SELECT seat_id FROM reservations WHERE group_id = $1 FOR UPDATE`,
		groupID,
	)
	if err != nil {
		return 0, fmt.Errorf("select group reservations: %w", err)
	}

	var seatIDs []uuid.UUID
	for rows.Next() {
		var seatID uuid.UUID
		if err := rows.Scan(&seatID); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan reservation row: %w", err)
		}
		seatIDs = append(seatIDs, seatID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate reservation rows: %w", err)
	}

	if len(seatIDs) == 0 {
		return 0, ErrNothingToRelease
	}

	if _, err := tx.Exec(ctx,
		`UPDATE seats SET is_reserved = false WHERE id = ANY($1)`,
		seatIDs,
	); err != nil {
		return 0, fmt.Errorf("release seats: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM reservations WHERE group_id = $1`,
		groupID,
	); err != nil {
		return 0, fmt.Errorf("delete group reservations: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM reservation_groups WHERE id = $1`,
		groupID,
	); err != nil {
		return 0, fmt.Errorf("delete reservation group: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit cancel transaction: %w", err)
	}

	r.log.Info("Reservation group cancelled",
		zap.String("group_id", groupID.String()),
		zap.Int("seats_released", len(seatIDs)),
	)

	return len(seatIDs), nil
}

func (r *reservationRepository) ReassignSeat(ctx context.Context, reservationID, newSeatID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin reassign transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var oldSeatID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT seat_id FROM reservations WHERE id = $1 FOR UPDATE`,
		reservationID,
	).Scan(&oldSeatID)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("reservation %s not found", reservationID.String())
	}
	if err != nil {
		return fmt.Errorf("find reservation %s: %w", reservationID.String(), err)
	}

	// Claim the new seat first; zero rows affected means a concurrent
	// booking got there before us.
	claim, err := tx.Exec(ctx,
		`UPDATE seats SET is_reserved = true WHERE id = $1 AND is_reserved = false`,
		newSeatID,
	)
	if err != nil {
		return fmt.Errorf("claim seat %s: %w", newSeatID.String(), err)
	}
	if claim.RowsAffected() == 0 {
		return ErrSeatAlreadyReserved
	}

	if _, err := tx.Exec(ctx,
		`UPDATE seats SET is_reserved = false WHERE id = $1`,
		oldSeatID,
	); err != nil {
		return fmt.Errorf("release seat %s: %w", oldSeatID.String(), err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE reservations SET seat_id = $2 WHERE id = $1`,
		reservationID, newSeatID,
	); err != nil {
		return fmt.Errorf("repoint reservation %s: %w", reservationID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit reassign transaction: %w", err)
	}

	r.log.Info("Reservation reassigned",
		zap.String("reservation_id", reservationID.String()),
		zap.String("old_seat_id", oldSeatID.String()),
		zap.String("new_seat_id", newSeatID.String()),
	)

	return nil
}

func (r *reservationRepository) FindGroupByID(ctx context.Context, id uuid.UUID) (*entity.ReservationGroup, error) {
	query := `
		SELECT id, user_id, showtime_id, created_at, updated_at
		FROM reservation_groups
		WHERE id = $1
	`

	var group entity.ReservationGroup
	err := r.db.QueryRow(ctx, query, id).Scan(
		&group.ID,
		&group.UserID,
		&group.ShowtimeID,
		&group.CreatedAt,
		&group.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation group by ID",
			zap.Error(err),
			zap.String("group_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation group by ID %s: %w", id.String(), err)
	}

	return &group, nil
}

func (r *reservationRepository) FindGroupsByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.ReservationGroup, error) {
	query := `
		SELECT id, user_id, showtime_id, created_at, updated_at
		FROM reservation_groups
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find groups by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find groups by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var groups []*entity.ReservationGroup
	for rows.Next() {
		var group entity.ReservationGroup
		err := rows.Scan(
			&group.ID,
			&group.UserID,
			&group.ShowtimeID,
			&group.CreatedAt,
			&group.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan group row", zap.Error(err))
			return nil, fmt.Errorf("scan group row: %w", err)
		}
		groups = append(groups, &group)
	}

	return groups, nil
}

func (r *reservationRepository) CountGroupsByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reservation_groups WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count groups by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count groups by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *reservationRepository) FindReservationsByGroupID(ctx context.Context, groupID uuid.UUID) ([]*ReservedSeat, error) {
	query := `
		SELECT res.id, res.group_id, res.seat_id, res.reserved_at, res.created_at,
		       s.id, s.showtime_id, s.seat_row, s.seat_number, s.is_reserved, s.created_at
		FROM reservations res
		JOIN seats s ON s.id = res.seat_id
		WHERE res.group_id = $1
		ORDER BY s.seat_row, s.seat_number
	`

	rows, err := r.db.Query(ctx, query, groupID)
	if err != nil {
		r.log.Error("Failed to find reservations by group ID",
			zap.Error(err),
			zap.String("group_id", groupID.String()),
		)
		return nil, fmt.Errorf("find reservations by group ID %s: %w", groupID.String(), err)
	}
	defer rows.Close()

	var reserved []*ReservedSeat
	for rows.Next() {
		var reservation entity.Reservation
		var seat entity.Seat
		err := rows.Scan(
			&reservation.ID,
			&reservation.GroupID,
			&reservation.SeatID,
			&reservation.ReservedAt,
			&reservation.CreatedAt,
			&seat.ID,
			&seat.ShowtimeID,
			&seat.Row,
			&seat.Number,
			&seat.IsReserved,
			&seat.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reserved = append(reserved, &ReservedSeat{Reservation: &reservation, Seat: &seat})
	}

	return reserved, nil
}

func (r *reservationRepository) FindReservationByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, group_id, seat_id, reserved_at, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.GroupID,
		&reservation.SeatID,
		&reservation.ReservedAt,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return &reservation, nil
}
