package models

import "time"

// Aggregate rows produced by the analytics queries. Grouping and bucketing
// happen in SQL; these only carry the results.

// MonthlyChangeCount is a per-month profile change count
type MonthlyChangeCount struct {
	Month string `json:"month" db:"month"`
	Count int64  `json:"count" db:"count"`
}

// TypeChangeCount is a per-change-type profile change count
type TypeChangeCount struct {
	ChangeType ChangeType `json:"type" db:"change_type"`
	Count      int64      `json:"count" db:"count"`
}

// FieldChangeCount is a per-field profile change count
type FieldChangeCount struct {
	Field string `json:"field" db:"field"`
	Count int64  `json:"count" db:"count"`
}

// HistoryStats groups profile change counts by month, type and field
type HistoryStats struct {
	TotalChanges   int64                `json:"totalChanges"`
	ChangesByMonth []MonthlyChangeCount `json:"changesByMonth"`
	ChangesByType  []TypeChangeCount    `json:"changesByType"`
	ChangedFields  []FieldChangeCount   `json:"changedFields"`
}

// SignInCount is a day-bucketed sign-in event count
type SignInCount struct {
	Date  string `json:"date" db:"date"`
	Count int64  `json:"count" db:"count"`
}

// UserActivity is a per-user last-activity summary
type UserActivity struct {
	UserID       int64      `json:"userId" db:"user_id"`
	Email        string     `json:"email" db:"email"`
	LastSignInAt *time.Time `json:"lastSignInAt,omitempty" db:"last_sign_in_at"`
}
