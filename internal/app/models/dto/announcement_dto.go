package dto

import (
	"time"

	"github.com/ozgekaya/alumnihub/internal/app/models"
)

// CreateAnnouncementRequest represents a new announcement with optional tags
type CreateAnnouncementRequest struct {
	Slug        string     `json:"slug" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Content     string     `json:"content" binding:"required"`
	ExternalURL string     `json:"externalUrl" binding:"omitempty,url"`
	Deadline    *time.Time `json:"deadline"`
	ImageURL    string     `json:"imageUrl" binding:"omitempty,url"`
	TagIDs      []int64    `json:"tagIds"`
}

// TagResponse represents a tag attached to an announcement
type TagResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AnnouncementResponse represents an announcement with its tag list.
// ImageURL is always populated, a placeholder is substituted upstream when
// the stored value is absent.
type AnnouncementResponse struct {
	ID          int64         `json:"id"`
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	ExternalURL *string       `json:"externalUrl,omitempty"`
	Deadline    *time.Time    `json:"deadline,omitempty"`
	ImageURL    string        `json:"imageUrl"`
	CreatedBy   int64         `json:"createdBy"`
	CreatedAt   time.Time     `json:"createdAt"`
	Active      bool          `json:"active"`
	Tags        []TagResponse `json:"tags"`
}

// AnnouncementListResponse wraps the newest-first announcement list
type AnnouncementListResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
}

// CreateTagRequest represents a new tag
type CreateTagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color" binding:"omitempty,hexcolor"`
}

// FromTag converts a models.Tag to a TagResponse
func FromTag(t models.Tag) TagResponse {
	return TagResponse{
		ID:    t.ID,
		Name:  t.Name,
		Color: t.Color,
	}
}

// FromAnnouncement converts a models.Announcement to a response. imageURL
// must already be resolved to a non-empty value by the caller.
func FromAnnouncement(a *models.Announcement, imageURL string, now time.Time) AnnouncementResponse {
	tags := make([]TagResponse, 0, len(a.Tags))
	for _, t := range a.Tags {
		tags = append(tags, FromTag(t))
	}
	return AnnouncementResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Content:     a.Content,
		ExternalURL: a.ExternalURL,
		Deadline:    a.Deadline,
		ImageURL:    imageURL,
		CreatedBy:   a.CreatedBy,
		CreatedAt:   a.CreatedAt,
		Active:      a.IsActive(now),
		Tags:        tags,
	}
}
