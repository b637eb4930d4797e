package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/db"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
)

const profileColumns = `id, user_id, full_name, email, email_visible, is_public,
	city, country, graduation_year, cohort, msc, user_type, job_title, company,
	bio, avatar_url, github_url, linkedin_url, twitter_url, website_url,
	created_at, updated_at`

// ProfileRepository handles profile database operations
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

func scanProfile(row pgx.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Email, &p.EmailVisible, &p.IsPublic,
		&p.City, &p.Country, &p.GraduationYear, &p.Cohort, &p.MSc, &p.UserType,
		&p.JobTitle, &p.Company, &p.Bio, &p.AvatarURL, &p.GithubURL,
		&p.LinkedinURL, &p.TwitterURL, &p.WebsiteURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByUserID retrieves the profile owned by a user
func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1`,
		userID)

	profile, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}

	return profile, nil
}

// ListPublic retrieves all profiles flagged public, ordered by display name.
// The directory filters this set in memory.
func (r *ProfileRepository) ListPublic(ctx context.Context) ([]models.Profile, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE is_public = TRUE
		ORDER BY full_name NULLS LAST, id`)
	if err != nil {
		return nil, fmt.Errorf("error listing public profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning profile row: %w", err)
		}
		profiles = append(profiles, *profile)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating profile rows: %w", err)
	}

	return profiles, nil
}

// Upsert inserts or updates the profile keyed by user id and records a
// history row with the matching change type, all in one transaction.
// Returns the stored row.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	var stored *models.Profile

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM profiles WHERE user_id = $1)`,
			profile.UserID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking profile existence: %w", err)
		}

		changeType := models.ChangeTypeInsert
		if exists {
			changeType = models.ChangeTypeUpdate
		}

		row := tx.QueryRow(ctx, `
			INSERT INTO profiles (
				user_id, full_name, email, email_visible, is_public, city, country,
				graduation_year, cohort, msc, user_type, job_title, company, bio,
				avatar_url, github_url, linkedin_url, twitter_url, website_url
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			ON CONFLICT (user_id) DO UPDATE SET
				full_name = EXCLUDED.full_name,
				email = EXCLUDED.email,
				email_visible = EXCLUDED.email_visible,
				is_public = EXCLUDED.is_public,
				city = EXCLUDED.city,
				country = EXCLUDED.country,
				graduation_year = EXCLUDED.graduation_year,
				cohort = EXCLUDED.cohort,
				msc = EXCLUDED.msc,
				job_title = EXCLUDED.job_title,
				company = EXCLUDED.company,
				bio = EXCLUDED.bio,
				avatar_url = EXCLUDED.avatar_url,
				github_url = EXCLUDED.github_url,
				linkedin_url = EXCLUDED.linkedin_url,
				twitter_url = EXCLUDED.twitter_url,
				website_url = EXCLUDED.website_url,
				updated_at = CURRENT_TIMESTAMP
			RETURNING `+profileColumns,
			profile.UserID, profile.FullName, profile.Email, profile.EmailVisible,
			profile.IsPublic, profile.City, profile.Country, profile.GraduationYear,
			profile.Cohort, profile.MSc, profile.UserType, profile.JobTitle,
			profile.Company, profile.Bio, profile.AvatarURL, profile.GithubURL,
			profile.LinkedinURL, profile.TwitterURL, profile.WebsiteURL)

		saved, err := scanProfile(row)
		if err != nil {
			return fmt.Errorf("error upserting profile: %w", err)
		}

		// History rides in the same transaction so a failed save leaves no trace
		if _, err := tx.Exec(ctx, `
			INSERT INTO profiles_history (profile_id, user_id, full_name, city, country, job_title, company, change_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			saved.ID, saved.UserID, saved.FullName, saved.City, saved.Country,
			saved.JobTitle, saved.Company, changeType); err != nil {
			return fmt.Errorf("error recording profile history: %w", err)
		}

		stored = saved
		return nil
	})

	if err != nil {
		return nil, err
	}

	return stored, nil
}
