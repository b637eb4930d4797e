package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
	"github.com/ozgekaya/alumnihub/internal/pkg/dberrors"
)

// TagRepository handles tag database operations
type TagRepository struct {
	db *pgxpool.Pool
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *pgxpool.Pool) *TagRepository {
	return &TagRepository{db: db}
}

// GetAll retrieves all tags ordered by name
func (r *TagRepository) GetAll(ctx context.Context) ([]models.Tag, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, color, created_at
		FROM tags
		ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	defer rows.Close()

	tags := []models.Tag{}
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning tag row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

// GetByID retrieves a tag by id
func (r *TagRepository) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.QueryRow(ctx, `
		SELECT id, name, color, created_at
		FROM tags
		WHERE id = $1`,
		id).Scan(&tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTagNotFound
		}
		return nil, fmt.Errorf("error retrieving tag: %w", err)
	}

	return &tag, nil
}

// Create inserts a new tag and returns its id
func (r *TagRepository) Create(ctx context.Context, tag *models.Tag) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO tags (name, color)
		VALUES ($1, $2)
		RETURNING id`,
		tag.Name, tag.Color).Scan(&id)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "tags_name_key") {
			return 0, apperrors.ErrTagAlreadyExists
		}
		return 0, fmt.Errorf("error creating tag: %w", err)
	}

	return id, nil
}
