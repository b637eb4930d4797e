package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
	"github.com/ozgekaya/alumnihub/internal/pkg/images"
)

type stubAnnouncementStore struct {
	announcements []models.Announcement
	err           error

	created       *models.Announcement
	createdTagIDs []int64
}

func (s *stubAnnouncementStore) ListNewestFirst(ctx context.Context) ([]models.Announcement, error) {
	return s.announcements, s.err
}

func (s *stubAnnouncementStore) GetBySlug(ctx context.Context, slug string) (*models.Announcement, error) {
	for i := range s.announcements {
		if s.announcements[i].Slug == slug {
			return &s.announcements[i], nil
		}
	}
	return nil, apperrors.ErrAnnouncementNotFound
}

func (s *stubAnnouncementStore) Create(ctx context.Context, announcement *models.Announcement, tagIDs []int64) (*models.Announcement, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = announcement
	s.createdTagIDs = tagIDs
	stored := *announcement
	stored.ID = 42
	stored.CreatedAt = time.Now()
	stored.Tags = []models.Tag{}
	return &stored, nil
}

type stubTagStore struct {
	tags   []models.Tag
	nextID int64

	created *models.Tag
}

func (s *stubTagStore) GetAll(ctx context.Context) ([]models.Tag, error) {
	return s.tags, nil
}

func (s *stubTagStore) Create(ctx context.Context, tag *models.Tag) (int64, error) {
	s.created = tag
	s.nextID++
	stored := *tag
	stored.ID = s.nextID
	s.tags = append(s.tags, stored)
	return s.nextID, nil
}

func (s *stubTagStore) GetByID(ctx context.Context, id int64) (*models.Tag, error) {
	for i := range s.tags {
		if s.tags[i].ID == id {
			return &s.tags[i], nil
		}
	}
	return nil, apperrors.ErrTagNotFound
}

func TestAnnouncementListResolvesImages(t *testing.T) {
	stored := "https://cdn.example.com/banner.png"
	store := &stubAnnouncementStore{
		announcements: []models.Announcement{
			{ID: 1, Slug: "with-image", Title: "A", ImageURL: &stored, Tags: []models.Tag{}},
			{ID: 2, Slug: "without-image", Title: "B", Tags: []models.Tag{}},
		},
	}
	svc := NewAnnouncementService(store, &stubTagStore{})

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Announcements, 2)

	assert.Equal(t, stored, result.Announcements[0].ImageURL)
	assert.True(t, images.IsPlaceholder(result.Announcements[1].ImageURL))
}

func TestAnnouncementActiveFlag(t *testing.T) {
	past := time.Now().Add(-24 * time.Hour)
	future := time.Now().Add(24 * time.Hour)
	store := &stubAnnouncementStore{
		announcements: []models.Announcement{
			{ID: 1, Slug: "expired", Deadline: &past, Tags: []models.Tag{}},
			{ID: 2, Slug: "upcoming", Deadline: &future, Tags: []models.Tag{}},
			{ID: 3, Slug: "open-ended", Tags: []models.Tag{}},
		},
	}
	svc := NewAnnouncementService(store, &stubTagStore{})

	result, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Announcements, 3)

	assert.False(t, result.Announcements[0].Active)
	assert.True(t, result.Announcements[1].Active)
	assert.True(t, result.Announcements[2].Active)
}

func TestAnnouncementGetBySlug(t *testing.T) {
	store := &stubAnnouncementStore{
		announcements: []models.Announcement{{ID: 1, Slug: "reunion-2026", Title: "Reunion", Tags: []models.Tag{}}},
	}
	svc := NewAnnouncementService(store, &stubTagStore{})

	result, err := svc.GetBySlug(context.Background(), "reunion-2026")
	require.NoError(t, err)
	assert.Equal(t, "Reunion", result.Title)

	_, err = svc.GetBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrAnnouncementNotFound)
}

func TestAnnouncementCreate(t *testing.T) {
	store := &stubAnnouncementStore{}
	svc := NewAnnouncementService(store, &stubTagStore{})

	deadline := time.Now().Add(72 * time.Hour)
	req := &dto.CreateAnnouncementRequest{
		Slug:        "  career-fair  ",
		Title:       "Career Fair",
		Content:     "Annual career fair.",
		ExternalURL: "https://example.com/fair",
		Deadline:    &deadline,
		TagIDs:      []int64{1, 3},
	}

	result, err := svc.Create(context.Background(), 7, req)
	require.NoError(t, err)

	require.NotNil(t, store.created)
	assert.Equal(t, "career-fair", store.created.Slug)
	assert.Equal(t, int64(7), store.created.CreatedBy)
	assert.Equal(t, []int64{1, 3}, store.createdTagIDs)

	// No image was supplied so the response carries a placeholder
	assert.True(t, images.IsPlaceholder(result.ImageURL))
	assert.NotNil(t, result.Tags)
}

func TestAnnouncementCreateEmptyFieldsBecomeNil(t *testing.T) {
	store := &stubAnnouncementStore{}
	svc := NewAnnouncementService(store, &stubTagStore{})

	_, err := svc.Create(context.Background(), 1, &dto.CreateAnnouncementRequest{
		Slug:    "plain",
		Title:   "Plain",
		Content: "No extras.",
	})
	require.NoError(t, err)

	assert.Nil(t, store.created.ExternalURL)
	assert.Nil(t, store.created.ImageURL)
	assert.Nil(t, store.created.Deadline)
}

func TestAnnouncementCreateRejectsBadSlug(t *testing.T) {
	store := &stubAnnouncementStore{}
	svc := NewAnnouncementService(store, &stubTagStore{})

	for _, slug := range []string{"", "Has Spaces", "UPPER", "trailing-", "-leading", "double--hyphen", "ünïcode"} {
		_, err := svc.Create(context.Background(), 1, &dto.CreateAnnouncementRequest{
			Slug:    slug,
			Title:   "T",
			Content: "C",
		})
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, "slug %q should be rejected", slug)
	}
	assert.Nil(t, store.created)
}

func TestCreateTagDefaultColor(t *testing.T) {
	tagStore := &stubTagStore{}
	svc := NewAnnouncementService(&stubAnnouncementStore{}, tagStore)

	tag, err := svc.CreateTag(context.Background(), &dto.CreateTagRequest{Name: "Jobs"})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTagColor, tag.Color)

	tag, err = svc.CreateTag(context.Background(), &dto.CreateTagRequest{Name: "Events", Color: "#B45309"})
	require.NoError(t, err)
	assert.Equal(t, "#B45309", tag.Color)
}
