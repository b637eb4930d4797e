package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekaya/alumnihub/internal/app/models"
)

type stubAnalyticsStore struct {
	stats    *models.HistoryStats
	signIns  []models.SignInCount
	history  []models.ProfileHistory
	activity []models.UserActivity

	statsErr   error
	signInsErr error

	historyLimit int
	windowDays   int
}

func (s *stubAnalyticsStore) GetHistoryStats(ctx context.Context) (*models.HistoryStats, error) {
	return s.stats, s.statsErr
}

func (s *stubAnalyticsStore) GetSignInCounts(ctx context.Context, windowDays int) ([]models.SignInCount, error) {
	s.windowDays = windowDays
	return s.signIns, s.signInsErr
}

func (s *stubAnalyticsStore) GetRecentHistory(ctx context.Context, limit int) ([]models.ProfileHistory, error) {
	s.historyLimit = limit
	return s.history, nil
}

func (s *stubAnalyticsStore) GetUserActivity(ctx context.Context) ([]models.UserActivity, error) {
	return s.activity, nil
}

func TestGetDashboard(t *testing.T) {
	lastWeek := time.Now().Add(-7 * 24 * time.Hour)
	store := &stubAnalyticsStore{
		stats: &models.HistoryStats{
			TotalChanges:   12,
			ChangesByMonth: []models.MonthlyChangeCount{{Month: "2026-08", Count: 12}},
			ChangesByType:  []models.TypeChangeCount{{ChangeType: models.ChangeTypeInsert, Count: 5}, {ChangeType: models.ChangeTypeUpdate, Count: 7}},
		},
		signIns: []models.SignInCount{
			{Date: "2026-08-27", Count: 3},
			{Date: "2026-08-28", Count: 4},
		},
		history: []models.ProfileHistory{
			{ID: 9, UserID: 1, FullName: strPtr("Ada Lovelace"), ChangeType: models.ChangeTypeUpdate, ChangedAt: lastWeek},
		},
		activity: []models.UserActivity{
			{UserID: 1, Email: "ada@example.com", LastSignInAt: &lastWeek},
			{UserID: 2, Email: "grace@example.com"},
		},
	}

	svc := NewAnalyticsService(store, 90, 8)
	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 90, store.windowDays)
	assert.Equal(t, 8, store.historyLimit)

	assert.Equal(t, int64(12), result.HistoryStats.TotalChanges)
	assert.Equal(t, int64(7), result.TotalSignIns)
	assert.Equal(t, 1, result.RecentActiveUsers)

	require.Len(t, result.RecentHistory, 1)
	entry := result.RecentHistory[0]
	assert.Equal(t, int64(9), entry.ID)
	assert.Equal(t, "UPDATE", entry.ChangeType)
	assert.Equal(t, lastWeek.Format(time.RFC3339), entry.ChangedAt)

	assert.Len(t, result.UserActivity, 2)
}

func TestGetDashboardEmpty(t *testing.T) {
	store := &stubAnalyticsStore{stats: &models.HistoryStats{}}

	svc := NewAnalyticsService(store, 90, 8)
	result, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Zero(t, result.TotalSignIns)
	assert.Zero(t, result.RecentActiveUsers)
	assert.Empty(t, result.RecentHistory)
}

func TestGetDashboardSingleQueryFailure(t *testing.T) {
	store := &stubAnalyticsStore{
		stats:      &models.HistoryStats{},
		signInsErr: errors.New("relation does not exist"),
	}

	svc := NewAnalyticsService(store, 90, 8)
	_, err := svc.GetDashboard(context.Background())
	require.Error(t, err)
}
