package models

import "time"

// DefaultTagColor is applied when a tag is created without a color.
const DefaultTagColor = "#0C314C"

// Tag defines the tag model based on the 'tags' table. Tags relate to
// announcements through 'announcement_tags'.
type Tag struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Color     string    `json:"color" db:"color"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
