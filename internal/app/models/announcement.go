package models

import (
	"time"
)

// Announcement defines the announcement model based on the 'announcements'
// table. ImageURL is nullable in the database; the service layer substitutes
// a placeholder so API consumers always see a value. Tags is the resolved
// many-to-many relation, no db tag.
type Announcement struct {
	ID          int64      `json:"id" db:"id"`
	Slug        string     `json:"slug" db:"slug"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	ExternalURL *string    `json:"externalUrl,omitempty" db:"external_url"`
	Deadline    *time.Time `json:"deadline,omitempty" db:"deadline"`
	ImageURL    *string    `json:"imageUrl,omitempty" db:"image_url"`
	CreatedBy   int64      `json:"createdBy" db:"created_by"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	Tags        []Tag      `json:"tags"`
}

// IsExpired reports whether the announcement's deadline has passed at the
// given instant. An announcement without a deadline never expires.
func (a *Announcement) IsExpired(now time.Time) bool {
	if a.Deadline == nil {
		return false
	}
	return a.Deadline.Before(now)
}

// IsActive is the negation of IsExpired
func (a *Announcement) IsActive(now time.Time) bool {
	return !a.IsExpired(now)
}
