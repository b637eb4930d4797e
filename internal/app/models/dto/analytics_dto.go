package dto

import "github.com/ozgekaya/alumnihub/internal/app/models"

// HistoryEntryResponse is a single recent profile history row
type HistoryEntryResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	FullName   *string `json:"fullName,omitempty"`
	City       *string `json:"city,omitempty"`
	JobTitle   *string `json:"jobTitle,omitempty"`
	Company    *string `json:"company,omitempty"`
	ChangeType string  `json:"changeType"`
	ChangedAt  string  `json:"changedAt"`
}

// DashboardResponse aggregates the four analytics summaries into the
// payload the dashboard renders: cards, the sign-in trend and the recent
// history list.
type DashboardResponse struct {
	HistoryStats      models.HistoryStats    `json:"historyStats"`
	SignIns           []models.SignInCount   `json:"signIns"`
	TotalSignIns      int64                  `json:"totalSignIns"`
	RecentActiveUsers int                    `json:"recentActiveUsers"`
	RecentHistory     []HistoryEntryResponse `json:"recentHistory"`
	UserActivity      []models.UserActivity  `json:"userActivity"`
}
