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

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.MovieCategory) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieCategory, error)
	FindAll(ctx context.Context) ([]*entity.MovieCategory, error)
	FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieCategory, error)
	Update(ctx context.Context, category *entity.MovieCategory) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Link management
	AttachToMovie(ctx context.Context, movieID, categoryID uuid.UUID) error
	DetachFromMovie(ctx context.Context, movieID, categoryID uuid.UUID) error
}

type categoryRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCategoryRepository(db database.PgxIface, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		db:  db,
		log: log.With(zap.String("repository", "category")),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.MovieCategory) error {
	query := `
		INSERT INTO movie_categories (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.CreatedAt,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.MovieCategory, error) {
	query := `
		SELECT id, name, created_at, updated_at, deleted_at
		FROM movie_categories
		WHERE id = $1 AND deleted_at IS NULL
	`

	var category entity.MovieCategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.CreatedAt,
		&category.UpdatedAt,
		&category.DeletedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id.String(), err)
	}

	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]*entity.MovieCategory, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM movie_categories
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer rows.Close()

	var categories []*entity.MovieCategory
	for rows.Next() {
		var category entity.MovieCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *categoryRepository) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.MovieCategory, error) {
	query := `
		SELECT c.id, c.name, c.created_at, c.updated_at
		FROM movie_categories c
		JOIN movie_category_links l ON l.category_id = c.id
		WHERE l.movie_id = $1 AND c.deleted_at IS NULL
		ORDER BY c.name
	`

	rows, err := r.db.Query(ctx, query, movieID)
	if err != nil {
		r.log.Error("Failed to find categories by movie ID",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
		)
		return nil, fmt.Errorf("find categories by movie ID %s: %w", movieID.String(), err)
	}
	defer rows.Close()

	var categories []*entity.MovieCategory
	for rows.Next() {
		var category entity.MovieCategory
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan category row", zap.Error(err))
			return nil, fmt.Errorf("scan category row: %w", err)
		}
		categories = append(categories, &category)
	}

	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *entity.MovieCategory) error {
	query := `
		UPDATE movie_categories
		SET name = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := r.db.Exec(ctx, query,
		category.ID,
		category.Name,
		category.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID.String()),
		)
		return fmt.Errorf("update category %s: %w", category.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", category.ID.String())
	}

	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE movie_categories SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("category_id", id.String()),
		)
		return fmt.Errorf("delete category %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not found", id.String())
	}

	return nil
}

func (r *categoryRepository) AttachToMovie(ctx context.Context, movieID, categoryID uuid.UUID) error {
	query := `
		INSERT INTO movie_category_links (id, movie_id, category_id, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (movie_id, category_id) DO NOTHING
	`

	_, err := r.db.Exec(ctx, query, uuid.New(), movieID, categoryID)
	if err != nil {
		r.log.Error("Failed to attach category to movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("category_id", categoryID.String()),
		)
		return fmt.Errorf("attach category %s to movie %s: %w",
			categoryID.String(), movieID.String(), err)
	}

	return nil
}

func (r *categoryRepository) DetachFromMovie(ctx context.Context, movieID, categoryID uuid.UUID) error {
	query := `DELETE FROM movie_category_links WHERE movie_id = $1 AND category_id = $2`

	result, err := r.db.Exec(ctx, query, movieID, categoryID)
	if err != nil {
		r.log.Error("Failed to detach category from movie",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("category_id", categoryID.String()),
		)
		return fmt.Errorf("detach category %s from movie %s: %w",
			categoryID.String(), movieID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("category %s not linked to movie %s",
			categoryID.String(), movieID.String())
	}

	return nil
}
