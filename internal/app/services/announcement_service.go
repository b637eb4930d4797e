package services

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
	"github.com/ozgekaya/alumnihub/internal/pkg/helpers"
	"github.com/ozgekaya/alumnihub/internal/pkg/images"
	"github.com/ozgekaya/alumnihub/internal/pkg/logger"
)

// AnnouncementStore loads and stores announcements with their tags
type AnnouncementStore interface {
	ListNewestFirst(ctx context.Context) ([]models.Announcement, error)
	GetBySlug(ctx context.Context, slug string) (*models.Announcement, error)
	Create(ctx context.Context, announcement *models.Announcement, tagIDs []int64) (*models.Announcement, error)
}

// TagStore loads and stores tags
type TagStore interface {
	GetAll(ctx context.Context) ([]models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Tag, error)
}

// AnnouncementService handles announcements and their tags
type AnnouncementService struct {
	announcementRepo AnnouncementStore
	tagRepo          TagStore
	now              func() time.Time
}

// NewAnnouncementService creates a new AnnouncementService
func NewAnnouncementService(announcementRepo AnnouncementStore, tagRepo TagStore) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
		tagRepo:          tagRepo,
		now:              time.Now,
	}
}

// resolveImageURL substitutes a random placeholder when no image is stored
func resolveImageURL(a *models.Announcement) string {
	if url := helpers.Deref(a.ImageURL); url != "" {
		return url
	}
	return images.RandomAnnouncementImage()
}

// List returns all announcements newest-first with tags and a resolved
// image URL on every entry.
func (s *AnnouncementService) List(ctx context.Context) (*dto.AnnouncementListResponse, error) {
	announcements, err := s.announcementRepo.ListNewestFirst(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, dto.FromAnnouncement(&announcements[i], resolveImageURL(&announcements[i]), now))
	}

	return &dto.AnnouncementListResponse{Announcements: responses}, nil
}

// GetBySlug returns a single announcement by its slug
func (s *AnnouncementService) GetBySlug(ctx context.Context, slug string) (*dto.AnnouncementResponse, error) {
	announcement, err := s.announcementRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	resp := dto.FromAnnouncement(announcement, resolveImageURL(announcement), s.now())
	return &resp, nil
}

// slugPattern permits lowercase letters, digits and single hyphens
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Create stores a new announcement together with its tag links. The
// write is atomic, an unknown tag id fails the whole announcement.
func (s *AnnouncementService) Create(ctx context.Context, createdBy int64, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	slug := strings.TrimSpace(req.Slug)
	if !slugPattern.MatchString(slug) {
		return nil, apperrors.NewBadRequestError("slug must contain only lowercase letters, digits and hyphens")
	}

	announcement := &models.Announcement{
		Slug:        slug,
		Title:       req.Title,
		Content:     req.Content,
		ExternalURL: helpers.StringOrNil(req.ExternalURL),
		Deadline:    req.Deadline,
		ImageURL:    helpers.StringOrNil(req.ImageURL),
		CreatedBy:   createdBy,
	}

	created, err := s.announcementRepo.Create(ctx, announcement, req.TagIDs)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("slug", created.Slug).
		Int64("createdBy", createdBy).
		Int("tags", len(created.Tags)).
		Msg("Announcement created")

	resp := dto.FromAnnouncement(created, resolveImageURL(created), s.now())
	return &resp, nil
}

// ListTags returns every tag ordered by name
func (s *AnnouncementService) ListTags(ctx context.Context) ([]dto.TagResponse, error) {
	tags, err := s.tagRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.TagResponse, 0, len(tags))
	for _, t := range tags {
		responses = append(responses, dto.FromTag(t))
	}
	return responses, nil
}

// CreateTag stores a new tag, falling back to the default color when
// none is given.
func (s *AnnouncementService) CreateTag(ctx context.Context, req *dto.CreateTagRequest) (*dto.TagResponse, error) {
	tag := &models.Tag{
		Name:  strings.TrimSpace(req.Name),
		Color: req.Color,
	}
	if tag.Color == "" {
		tag.Color = models.DefaultTagColor
	}

	id, err := s.tagRepo.Create(ctx, tag)
	if err != nil {
		return nil, err
	}

	created, err := s.tagRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := dto.FromTag(*created)
	return &resp, nil
}
