package services

import (
	"context"

	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/pkg/helpers"
	"github.com/ozgekaya/alumnihub/internal/pkg/logger"
)

// ProfileReader loads profiles
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID int64) (*models.Profile, error)
}

// ProfileWriter stores profiles
type ProfileWriter interface {
	Upsert(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}

// ProfileStore combines profile reads and writes
type ProfileStore interface {
	ProfileReader
	ProfileWriter
}

// UserEmailLookup resolves the account email for a user id
type UserEmailLookup interface {
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

// ProfileService handles a caller's own profile
type ProfileService struct {
	profileRepo ProfileStore
	userRepo    UserEmailLookup
}

// NewProfileService creates a new ProfileService
func NewProfileService(profileRepo ProfileStore, userRepo UserEmailLookup) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// GetMyProfile returns the caller's profile
func (s *ProfileService) GetMyProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.FromProfile(profile), nil
}

// SaveMyProfile creates or updates the caller's profile. The account
// email is carried onto the profile row so directory entries can expose
// it when the owner opts in. Empty form fields become NULL.
func (s *ProfileService) SaveMyProfile(ctx context.Context, userID int64, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	// New profiles start as Alumni. The user type is never editable
	// through this endpoint and the upsert leaves it untouched on update.
	profile := &models.Profile{
		UserID:         userID,
		FullName:       helpers.StringOrNil(req.FullName),
		Email:          &user.Email,
		EmailVisible:   req.EmailVisible,
		IsPublic:       req.IsPublic,
		City:           helpers.StringOrNil(req.City),
		Country:        helpers.StringOrNil(req.Country),
		GraduationYear: req.GraduationYear,
		Cohort:         helpers.StringOrNil(req.Cohort),
		MSc:            req.MSc,
		UserType:       models.UserTypeAlumni,
		JobTitle:       helpers.StringOrNil(req.JobTitle),
		Company:        helpers.StringOrNil(req.Company),
		Bio:            helpers.StringOrNil(req.Bio),
		AvatarURL:      helpers.StringOrNil(req.AvatarURL),
		GithubURL:      helpers.StringOrNil(req.GithubURL),
		LinkedinURL:    helpers.StringOrNil(req.LinkedinURL),
		TwitterURL:     helpers.StringOrNil(req.TwitterURL),
		WebsiteURL:     helpers.StringOrNil(req.WebsiteURL),
	}

	saved, err := s.profileRepo.Upsert(ctx, profile)
	if err != nil {
		return nil, err
	}

	logger.Debug().Int64("userId", userID).Int64("profileId", saved.ID).Msg("Profile saved")

	return dto.FromProfile(saved), nil
}
