package services

import (
	"context"
	"strings"

	"github.com/ozgekaya/alumnihub/internal/app/models"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
)

// PublicProfileLister loads the public directory rows
type PublicProfileLister interface {
	ListPublic(ctx context.Context) ([]models.Profile, error)
}

// DirectoryService serves the searchable alumni directory
type DirectoryService struct {
	profileRepo PublicProfileLister
}

// NewDirectoryService creates a new DirectoryService
func NewDirectoryService(profileRepo PublicProfileLister) *DirectoryService {
	return &DirectoryService{profileRepo: profileRepo}
}

// MatchesQuery reports whether a profile matches the search query. The
// match is a case-insensitive substring test over name, company, cohort,
// job title, city and country. A blank query matches every profile.
func MatchesQuery(p *models.Profile, query string) bool {
	query = strings.ToLower(query)
	if query == "" {
		return true
	}

	fields := []*string{p.FullName, p.Company, p.Cohort, p.JobTitle, p.City, p.Country}
	for _, f := range fields {
		if f != nil && strings.Contains(strings.ToLower(*f), query) {
			return true
		}
	}

	return false
}

// Search lists public profiles matching the query, preserving the
// repository's name ordering. Visibility rules are applied per entry.
func (s *DirectoryService) Search(ctx context.Context, query string) (*dto.DirectoryResponse, error) {
	profiles, err := s.profileRepo.ListPublic(ctx)
	if err != nil {
		return nil, err
	}

	entries := []dto.DirectoryEntry{}
	for i := range profiles {
		if MatchesQuery(&profiles[i], query) {
			entries = append(entries, dto.FromProfileForDirectory(&profiles[i]))
		}
	}

	return &dto.DirectoryResponse{
		Entries:    entries,
		MatchCount: len(entries),
		TotalCount: len(profiles),
		Query:      query,
	}, nil
}
