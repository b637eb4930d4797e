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
)

type stubProfileStore struct {
	profile *models.Profile

	upserted *models.Profile
}

func (s *stubProfileStore) GetByUserID(ctx context.Context, userID int64) (*models.Profile, error) {
	if s.profile == nil {
		return nil, apperrors.ErrProfileNotFound
	}
	return s.profile, nil
}

func (s *stubProfileStore) Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error) {
	s.upserted = profile
	stored := *profile
	stored.ID = 11
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	return &stored, nil
}

type stubUserLookup struct {
	user *models.User
}

func (s *stubUserLookup) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	if s.user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return s.user, nil
}

func TestSaveMyProfileEmptyFieldsStoredAsNull(t *testing.T) {
	store := &stubProfileStore{}
	users := &stubUserLookup{user: &models.User{ID: 5, Email: "ada@example.com"}}
	svc := NewProfileService(store, users)

	resp, err := svc.SaveMyProfile(context.Background(), 5, &dto.SaveProfileRequest{
		FullName: "Ada Lovelace",
		City:     "",
		IsPublic: true,
	})
	require.NoError(t, err)

	require.NotNil(t, store.upserted)
	require.NotNil(t, store.upserted.FullName)
	assert.Equal(t, "Ada Lovelace", *store.upserted.FullName)
	assert.Nil(t, store.upserted.City)
	assert.Nil(t, store.upserted.Company)
	assert.Nil(t, store.upserted.Bio)

	assert.Equal(t, int64(11), resp.ID)
}

func TestSaveMyProfileCarriesAccountEmail(t *testing.T) {
	store := &stubProfileStore{}
	users := &stubUserLookup{user: &models.User{ID: 5, Email: "ada@example.com"}}
	svc := NewProfileService(store, users)

	_, err := svc.SaveMyProfile(context.Background(), 5, &dto.SaveProfileRequest{FullName: "Ada"})
	require.NoError(t, err)

	require.NotNil(t, store.upserted.Email)
	assert.Equal(t, "ada@example.com", *store.upserted.Email)
}

func TestSaveMyProfileDefaultsToAlumni(t *testing.T) {
	store := &stubProfileStore{}
	users := &stubUserLookup{user: &models.User{ID: 5, Email: "ada@example.com"}}
	svc := NewProfileService(store, users)

	_, err := svc.SaveMyProfile(context.Background(), 5, &dto.SaveProfileRequest{})
	require.NoError(t, err)

	assert.Equal(t, models.UserTypeAlumni, store.upserted.UserType)
}

func TestSaveMyProfileUnknownUser(t *testing.T) {
	svc := NewProfileService(&stubProfileStore{}, &stubUserLookup{})

	_, err := svc.SaveMyProfile(context.Background(), 99, &dto.SaveProfileRequest{})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGetMyProfile(t *testing.T) {
	name := "Ada Lovelace"
	store := &stubProfileStore{profile: &models.Profile{ID: 11, UserID: 5, FullName: &name, UserType: models.UserTypeAdmin}}
	svc := NewProfileService(store, &stubUserLookup{user: &models.User{ID: 5}})

	resp, err := svc.GetMyProfile(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Admin", resp.UserType)
	require.NotNil(t, resp.FullName)
	assert.Equal(t, name, *resp.FullName)
}

func TestGetMyProfileNotFound(t *testing.T) {
	svc := NewProfileService(&stubProfileStore{}, &stubUserLookup{})

	_, err := svc.GetMyProfile(context.Background(), 5)
	assert.ErrorIs(t, err, apperrors.ErrProfileNotFound)
}
