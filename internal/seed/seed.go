package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/ozgekaya/alumnihub/internal/app/models"
	appRepos "github.com/ozgekaya/alumnihub/internal/app/repositories"
	"github.com/ozgekaya/alumnihub/internal/config"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
	"github.com/ozgekaya/alumnihub/internal/pkg/auth"
)

// Default announcement tags created on first start
var defaultTags = []appModels.Tag{
	{Name: "Jobs", Color: "#0C314C"},
	{Name: "Events", Color: "#B45309"},
	{Name: "News", Color: "#1D4ED8"},
	{Name: "Mentoring", Color: "#15803D"},
}

// CreateDefaultData seeds the default tags and, when configured, the
// initial admin account. Existing rows are left alone so repeated
// startups are harmless.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	tagRepo := appRepos.NewTagRepository(dbPool)
	userRepo := appRepos.NewUserRepository(dbPool)
	profileRepo := appRepos.NewProfileRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (tags, admin account)...")
	var finalErr error

	for _, tag := range defaultTags {
		t := tag
		if _, err := tagRepo.Create(ctx, &t); err != nil && !errors.Is(err, apperrors.ErrTagAlreadyExists) {
			lgr.Error().Err(err).Str("tag", tag.Name).Msg("Error creating default tag")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if cfg.Seed.AdminPassword != "" {
		if err := createAdminAccount(ctx, userRepo, profileRepo, cfg, lgr); err != nil {
			finalErr = errors.Join(finalErr, err)
		}
	} else {
		lgr.Info().Msg("No seed admin password configured, skipping admin account")
	}

	return finalErr
}

// createAdminAccount creates the initial admin user with an Admin
// profile unless the email is already taken.
func createAdminAccount(
	ctx context.Context,
	userRepo *appRepos.UserRepository,
	profileRepo *appRepos.ProfileRepository,
	cfg *config.Config,
	lgr zerolog.Logger,
) error {
	exists, err := userRepo.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking admin account existence")
		return err
	}
	if exists {
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	userID, err := userRepo.CreateUser(ctx, &appModels.User{
		Email:    cfg.Seed.AdminEmail,
		Password: hashed,
		IsActive: true,
	})
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	adminName := "Administrator"
	email := cfg.Seed.AdminEmail
	if _, err := profileRepo.Upsert(ctx, &appModels.Profile{
		UserID:   userID,
		FullName: &adminName,
		Email:    &email,
		UserType: appModels.UserTypeAdmin,
		IsPublic: false,
	}); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin profile")
		return err
	}

	lgr.Info().Str("email", cfg.Seed.AdminEmail).Msg("Admin account created")
	return nil
}
