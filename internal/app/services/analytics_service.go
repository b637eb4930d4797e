package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
)

// AnalyticsStore runs the aggregate dashboard queries
type AnalyticsStore interface {
	GetHistoryStats(ctx context.Context) (*models.HistoryStats, error)
	GetSignInCounts(ctx context.Context, windowDays int) ([]models.SignInCount, error)
	GetRecentHistory(ctx context.Context, limit int) ([]models.ProfileHistory, error)
	GetUserActivity(ctx context.Context) ([]models.UserActivity, error)
}

// AnalyticsService assembles the staff dashboard
type AnalyticsService struct {
	analyticsRepo     AnalyticsStore
	signInWindowDays  int
	recentHistorySize int
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(analyticsRepo AnalyticsStore, signInWindowDays, recentHistorySize int) *AnalyticsService {
	return &AnalyticsService{
		analyticsRepo:     analyticsRepo,
		signInWindowDays:  signInWindowDays,
		recentHistorySize: recentHistorySize,
	}
}

// GetDashboard runs the four dashboard queries concurrently and merges
// the results. Any single failure fails the whole dashboard.
func (s *AnalyticsService) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	var (
		stats    *models.HistoryStats
		signIns  []models.SignInCount
		history  []models.ProfileHistory
		activity []models.UserActivity
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		stats, err = s.analyticsRepo.GetHistoryStats(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		signIns, err = s.analyticsRepo.GetSignInCounts(gctx, s.signInWindowDays)
		return err
	})
	g.Go(func() error {
		var err error
		history, err = s.analyticsRepo.GetRecentHistory(gctx, s.recentHistorySize)
		return err
	})
	g.Go(func() error {
		var err error
		activity, err = s.analyticsRepo.GetUserActivity(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var totalSignIns int64
	for _, c := range signIns {
		totalSignIns += c.Count
	}

	recentActive := 0
	for _, a := range activity {
		if a.LastSignInAt != nil {
			recentActive++
		}
	}

	recent := make([]dto.HistoryEntryResponse, 0, len(history))
	for _, h := range history {
		recent = append(recent, dto.HistoryEntryResponse{
			ID:         h.ID,
			UserID:     h.UserID,
			FullName:   h.FullName,
			City:       h.City,
			JobTitle:   h.JobTitle,
			Company:    h.Company,
			ChangeType: string(h.ChangeType),
			ChangedAt:  h.ChangedAt.Format(time.RFC3339),
		})
	}

	return &dto.DashboardResponse{
		HistoryStats:      *stats,
		SignIns:           signIns,
		TotalSignIns:      totalSignIns,
		RecentActiveUsers: recentActive,
		RecentHistory:     recent,
		UserActivity:      activity,
	}, nil
}
