package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/db"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
	"github.com/ozgekaya/alumnihub/internal/pkg/dberrors"
)

// AnnouncementRepository handles announcement database operations
type AnnouncementRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAnnouncementRepository creates a new AnnouncementRepository
func NewAnnouncementRepository(db *pgxpool.Pool) *AnnouncementRepository {
	return &AnnouncementRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *AnnouncementRepository) selectAnnouncements() squirrel.SelectBuilder {
	return r.sb.Select(
		"id", "slug", "title", "content", "external_url", "deadline",
		"image_url", "created_by", "created_at").
		From("announcements")
}

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	a := &models.Announcement{}
	err := row.Scan(
		&a.ID, &a.Slug, &a.Title, &a.Content, &a.ExternalURL, &a.Deadline,
		&a.ImageURL, &a.CreatedBy, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.Tags = []models.Tag{}
	return a, nil
}

// ListNewestFirst retrieves all announcements ordered by creation time
// descending, each with its resolved tag list.
func (r *AnnouncementRepository) ListNewestFirst(ctx context.Context) ([]models.Announcement, error) {
	sql, args, err := r.selectAnnouncements().
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build announcement list query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing announcements: %w", err)
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		a, err := scanAnnouncement(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning announcement row: %w", err)
		}
		announcements = append(announcements, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating announcement rows: %w", err)
	}

	if err := r.attachTags(ctx, announcements); err != nil {
		return nil, err
	}

	return announcements, nil
}

// GetBySlug retrieves one announcement by its unique slug
func (r *AnnouncementRepository) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	sql, args, err := r.selectAnnouncements().
		Where(squirrel.Eq{"slug": slug}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build announcement slug query: %w", err)
	}

	a, err := scanAnnouncement(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAnnouncementNotFound
		}
		return nil, fmt.Errorf("error retrieving announcement: %w", err)
	}

	single := []models.Announcement{*a}
	if err := r.attachTags(ctx, single); err != nil {
		return nil, err
	}

	return &single[0], nil
}

// attachTags resolves the announcement_tags join for the given set
func (r *AnnouncementRepository) attachTags(ctx context.Context, announcements []models.Announcement) error {
	if len(announcements) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(announcements))
	index := make(map[int64]int, len(announcements))
	for i := range announcements {
		ids = append(ids, announcements[i].ID)
		index[announcements[i].ID] = i
	}

	sql, args, err := r.sb.Select("atg.announcement_id", "t.id", "t.name", "t.color", "t.created_at").
		From("announcement_tags atg").
		Join("tags t ON t.id = atg.tag_id").
		Where(squirrel.Eq{"atg.announcement_id": ids}).
		OrderBy("t.name").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build tag join query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("error querying announcement tags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var announcementID int64
		var tag models.Tag
		if err := rows.Scan(&announcementID, &tag.ID, &tag.Name, &tag.Color, &tag.CreatedAt); err != nil {
			return fmt.Errorf("error scanning tag row: %w", err)
		}
		if i, ok := index[announcementID]; ok {
			announcements[i].Tags = append(announcements[i].Tags, tag)
		}
	}

	return rows.Err()
}

// Create inserts the announcement and its tag associations in one
// transaction. An unknown tag id rolls the whole create back.
func (r *AnnouncementRepository) Create(ctx context.Context, announcement *models.Announcement, tagIDs []int64) (*models.Announcement, error) {
	var created *models.Announcement

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO announcements (slug, title, content, external_url, deadline, image_url, created_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, slug, title, content, external_url, deadline, image_url, created_by, created_at`,
			announcement.Slug, announcement.Title, announcement.Content,
			announcement.ExternalURL, announcement.Deadline, announcement.ImageURL,
			announcement.CreatedBy)

		a, err := scanAnnouncement(row)
		if err != nil {
			if dberrors.IsDuplicateConstraintError(err, "announcements_slug_key") {
				return apperrors.ErrSlugAlreadyExists
			}
			return fmt.Errorf("error creating announcement: %w", err)
		}

		for _, tagID := range tagIDs {
			if _, err := tx.Exec(ctx, `
				INSERT INTO announcement_tags (announcement_id, tag_id)
				VALUES ($1, $2)
				ON CONFLICT DO NOTHING`,
				a.ID, tagID); err != nil {
				if dberrors.IsForeignKeyViolation(err) {
					return apperrors.ErrUnknownTag
				}
				return fmt.Errorf("error associating tag %d: %w", tagID, err)
			}
		}

		created = a
		return nil
	})

	if err != nil {
		return nil, err
	}

	return r.GetBySlug(ctx, created.Slug)
}
