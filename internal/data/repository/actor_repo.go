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

type ActorRepository interface {
	Create(ctx context.Context, actor *entity.Actor) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Actor, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error)
	Update(ctx context.Context, actor *entity.Actor) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Link management
	AttachToMovie(ctx context.Context, movieID, actorID uuid.UUID) error
	DetachFromMovie(ctx context.Context, movieID, actorID uuid.UUID) error
}

type actorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewActorRepository(db database.PgxIface, log *zap.Logger) ActorRepository {
	return &actorRepository{
		db:  db,
		log: log.With(zap.String("repository", "actor")),
	}
}

func (r *actorRepository) Create(ctx context.Context, actor *entity.Actor) error {
	query := `
		INSERT INTO actors (id, name, birth_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.BirthDate,
		actor.CreatedAt,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create actor",
			zap.Error(err),
			zap.String("name", actor.Name),
		)
		return fmt.Errorf("create actor %s: %w", actor.Name, err)
	}

	return nil
}

func (r *actorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Actor, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at, deleted_at
		FROM actors
		WHERE id = $1 AND deleted_at IS NULL
	`

	var actor entity.Actor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&actor.ID,
		&actor.Name,
		&actor.BirthDate,
		&actor.CreatedAt,
		&actor.UpdatedAt,
		&actor.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find actor by ID",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return nil, fmt.Errorf("find actor by ID %s: %w", id.String(), err)
	}

	return &actor, nil
}

func (r *actorRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Actor, error) {
	query := `
		SELECT id, name, birth_date, created_at, updated_at
		FROM actors
		WHERE deleted_at IS NULL
		ORDER BY name
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all actors", zap.Error(err))
		return nil, fmt.Errorf("find all actors: %w", err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.BirthDate,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}

func (r *actorRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Actor, error) {
	query := `
		SELECT a.id, a.name, a.birth_date, a.created_at, a.updated_at
		FROM actors a
		JOIN movie_actor_links l ON l.actor_id = a.id
		WHERE l.movie_id = $1 AND a.deleted_at IS NULL
		ORDER BY a.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find actors by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find actors by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var actors []*entity.Actor
	for rows.Next() {
		var actor entity.Actor
		err := rows.Scan(
			&actor.ID,
			&actor.Name,
			&actor.BirthDate,
			&actor.CreatedAt,
			&actor.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan actor row", zap.Error(err))
			return nil, fmt.Errorf("scan actor row: %w", err)
		}
		actors = append(actors, &actor)
	}

	return actors, nil
}

func (r *actorRepository) Update(ctx context.Context, actor *entity.Actor) error {
	query := `
		UPDATE actors
		SET name = $2, birth_date = $3, updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		actor.ID,
		actor.Name,
		actor.BirthDate,
		actor.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update actor",
			zap.Error(err),
			zap.String("actor_id", actor.ID.String()),
		)
		return fmt.Errorf("update actor %s: %w", actor.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s not found", actor.ID.String())
	}

	return nil
}

func (r *actorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE actors SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete actor",
			zap.Error(err),
			zap.String("actor_id", id.String()),
		)
		return fmt.Errorf("delete actor %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s not found", id.String())
	}

	return nil
}

func (r *actorRepository) AttachToMovie(ctx context.Context, movieID, actorID uuid.UUID) error {
	query := `
		INSERT INTO movie_actor_links (id, movie_id, actor_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (movie_id, actor_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), movieID, actorID)
	if err != nil {
		r.log.Error("Failed to attach actor to movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("actor_id", actorID.String()),
		)
		return fmt.Errorf("attach actor %s to movie %s: %w",
			actorID.String(), movieID.String(), err)
	}

	return nil
}

func (r *actorRepository) DetachFromMovie(ctx context.Context, movieID, actorID uuid.UUID) error {
	query := `DELETE FROM movie_actor_links WHERE movie_id = $1 AND actor_id = $2`

	result, err := r.db.Exec(ctx, query, movieID, actorID)
	if err != nil {
		r.log.Error("Failed to detach actor from movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("actor_id", actorID.String()),
		)
		return fmt.Errorf("detach actor %s from movie %s: %w",
			actorID.String(), movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("actor %s not linked to movie %s",
			actorID.String(), movieID.String())
	}

	return nil
}
