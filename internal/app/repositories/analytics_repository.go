package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ozgekaya/alumnihub/internal/app/models"
)

// AnalyticsRepository runs the aggregate queries behind the dashboard.
// Grouping and bucketing are done in SQL; callers only reshape.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// GetHistoryStats groups profile change counts by month, type and field
func (r *AnalyticsRepository) GetHistoryStats(ctx context.Context) (*models.HistoryStats, error) {
	stats := &models.HistoryStats{
		ChangesByMonth: []models.MonthlyChangeCount{},
		ChangesByType:  []models.TypeChangeCount{},
		ChangedFields:  []models.FieldChangeCount{},
	}

	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM profiles_history`).Scan(&stats.TotalChanges)
	if err != nil {
		return nil, fmt.Errorf("error counting history rows: %w", err)
	}

	monthRows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('month', changed_at), 'YYYY-MM') AS month, COUNT(*)
		FROM profiles_history
		GROUP BY 1
		ORDER BY 1`)
	if err != nil {
		return nil, fmt.Errorf("error grouping history by month: %w", err)
	}
	defer monthRows.Close()

	for monthRows.Next() {
		var entry models.MonthlyChangeCount
		if err := monthRows.Scan(&entry.Month, &entry.Count); err != nil {
			return nil, fmt.Errorf("error scanning month row: %w", err)
		}
		stats.ChangesByMonth = append(stats.ChangesByMonth, entry)
	}
	if err := monthRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating month rows: %w", err)
	}

	typeRows, err := r.db.Query(ctx, `
		SELECT change_type, COUNT(*)
		FROM profiles_history
		GROUP BY change_type
		ORDER BY change_type`)
	if err != nil {
		return nil, fmt.Errorf("error grouping history by type: %w", err)
	}
	defer typeRows.Close()

	for typeRows.Next() {
		var entry models.TypeChangeCount
		if err := typeRows.Scan(&entry.ChangeType, &entry.Count); err != nil {
			return nil, fmt.Errorf("error scanning type row: %w", err)
		}
		stats.ChangesByType = append(stats.ChangesByType, entry)
	}
	if err := typeRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating type rows: %w", err)
	}

	// Field-level counts compare each history row against its predecessor
	// per tracked column. NULL-safe comparison via IS DISTINCT FROM.
	fieldRows, err := r.db.Query(ctx, `
		WITH ordered AS (
			SELECT user_id, full_name, city, country, job_title, company,
			       LAG(full_name) OVER w AS prev_full_name,
			       LAG(city) OVER w AS prev_city,
			       LAG(country) OVER w AS prev_country,
			       LAG(job_title) OVER w AS prev_job_title,
			       LAG(company) OVER w AS prev_company
			FROM profiles_history
			WINDOW w AS (PARTITION BY user_id ORDER BY changed_at)
		)
		SELECT field, COUNT(*) FROM (
			SELECT 'full_name' AS field FROM ordered WHERE full_name IS DISTINCT FROM prev_full_name
			UNION ALL SELECT 'city' FROM ordered WHERE city IS DISTINCT FROM prev_city
			UNION ALL SELECT 'country' FROM ordered WHERE country IS DISTINCT FROM prev_country
			UNION ALL SELECT 'job_title' FROM ordered WHERE job_title IS DISTINCT FROM prev_job_title
			UNION ALL SELECT 'company' FROM ordered WHERE company IS DISTINCT FROM prev_company
		) changes
		GROUP BY field
		ORDER BY COUNT(*) DESC, field`)
	if err != nil {
		return nil, fmt.Errorf("error grouping history by field: %w", err)
	}
	defer fieldRows.Close()

	for fieldRows.Next() {
		var entry models.FieldChangeCount
		if err := fieldRows.Scan(&entry.Field, &entry.Count); err != nil {
			return nil, fmt.Errorf("error scanning field row: %w", err)
		}
		stats.ChangedFields = append(stats.ChangedFields, entry)
	}
	if err := fieldRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating field rows: %w", err)
	}

	return stats, nil
}

// GetSignInCounts buckets sign-in events per day over the last windowDays
func (r *AnalyticsRepository) GetSignInCounts(ctx context.Context, windowDays int) ([]models.SignInCount, error) {
	rows, err := r.db.Query(ctx, `
		SELECT to_char(date_trunc('day', occurred_at), 'YYYY-MM-DD') AS date, COUNT(*)
		FROM sign_in_events
		WHERE occurred_at >= CURRENT_TIMESTAMP - make_interval(days => $1)
		GROUP BY 1
		ORDER BY 1`,
		windowDays)
	if err != nil {
		return nil, fmt.Errorf("error bucketing sign-in events: %w", err)
	}
	defer rows.Close()

	counts := []models.SignInCount{}
	for rows.Next() {
		var entry models.SignInCount
		if err := rows.Scan(&entry.Date, &entry.Count); err != nil {
			return nil, fmt.Errorf("error scanning sign-in row: %w", err)
		}
		counts = append(counts, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sign-in rows: %w", err)
	}

	return counts, nil
}

// GetRecentHistory retrieves history rows newest-first up to limit
func (r *AnalyticsRepository) GetRecentHistory(ctx context.Context, limit int) ([]models.ProfileHistory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, user_id, full_name, city, country, job_title, company, change_type, changed_at
		FROM profiles_history
		ORDER BY changed_at DESC
		LIMIT $1`,
		limit)
	if err != nil {
		return nil, fmt.Errorf("error listing recent history: %w", err)
	}
	defer rows.Close()

	history := []models.ProfileHistory{}
	for rows.Next() {
		var entry models.ProfileHistory
		if err := rows.Scan(
			&entry.ID, &entry.ProfileID, &entry.UserID, &entry.FullName,
			&entry.City, &entry.Country, &entry.JobTitle, &entry.Company,
			&entry.ChangeType, &entry.ChangedAt); err != nil {
			return nil, fmt.Errorf("error scanning history row: %w", err)
		}
		history = append(history, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating history rows: %w", err)
	}

	return history, nil
}

// RecordSignIn stores a sign-in event for the user
func (r *AnalyticsRepository) RecordSignIn(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sign_in_events (user_id) VALUES ($1)`,
		userID)
	if err != nil {
		return fmt.Errorf("error recording sign-in event: %w", err)
	}
	return nil
}

// GetUserActivity retrieves per-user last sign-in timestamps
func (r *AnalyticsRepository) GetUserActivity(ctx context.Context) ([]models.UserActivity, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.email, MAX(e.occurred_at) AS last_sign_in_at
		FROM users u
		LEFT JOIN sign_in_events e ON e.user_id = u.id
		GROUP BY u.id, u.email
		ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("error listing user activity: %w", err)
	}
	defer rows.Close()

	activity := []models.UserActivity{}
	for rows.Next() {
		var entry models.UserActivity
		if err := rows.Scan(&entry.UserID, &entry.Email, &entry.LastSignInAt); err != nil {
			return nil, fmt.Errorf("error scanning activity row: %w", err)
		}
		activity = append(activity, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	return activity, nil
}
