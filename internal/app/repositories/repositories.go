package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles every repository behind one constructor
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	ProfileRepository      *ProfileRepository
	AnnouncementRepository *AnnouncementRepository
	TagRepository          *TagRepository
	AnalyticsRepository    *AnalyticsRepository
}

// NewRepositories creates all repositories over the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		TokenRepository:        NewTokenRepository(db),
		ProfileRepository:      NewProfileRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		TagRepository:          NewTagRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
	}
}
