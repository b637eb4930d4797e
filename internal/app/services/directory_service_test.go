package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozgekaya/alumnihub/internal/app/models"
)

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

type stubProfileLister struct {
	profiles []models.Profile
	err      error
}

func (s *stubProfileLister) ListPublic(ctx context.Context) ([]models.Profile, error) {
	return s.profiles, s.err
}

func TestMatchesQuery(t *testing.T) {
	profile := &models.Profile{
		FullName: strPtr("Ada Lovelace"),
		Company:  strPtr("Analytical Engines Ltd"),
		Cohort:   strPtr("Class of 1843"),
		JobTitle: strPtr("Chief Mathematician"),
		City:     strPtr("London"),
		Country:  strPtr("United Kingdom"),
	}

	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"blank query matches", "", true},
		{"name substring", "lovelace", true},
		{"name mixed case", "aDa LoVe", true},
		{"company substring", "engines", true},
		{"cohort substring", "1843", true},
		{"job title substring", "mathematician", true},
		{"city substring", "london", true},
		{"country substring", "kingdom", true},
		{"no match", "istanbul", false},
		{"partial word still matches", "ovela", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesQuery(profile, tt.query))
		})
	}
}

func TestMatchesQueryNilFields(t *testing.T) {
	profile := &models.Profile{City: strPtr("Berlin")}

	assert.True(t, MatchesQuery(profile, "berlin"))
	assert.False(t, MatchesQuery(profile, "ada"))
	assert.True(t, MatchesQuery(&models.Profile{}, ""))
	assert.False(t, MatchesQuery(&models.Profile{}, "anything"))
}

func TestMatchesQueryIgnoresOtherFields(t *testing.T) {
	// Bio and graduation year are not part of the searchable field set
	profile := &models.Profile{
		Bio:            strPtr("Wrote the first program"),
		GraduationYear: intPtr(1843),
	}

	assert.False(t, MatchesQuery(profile, "program"))
	assert.False(t, MatchesQuery(profile, "1843"))
}

func TestDirectorySearch(t *testing.T) {
	profiles := []models.Profile{
		{ID: 1, FullName: strPtr("Ada Lovelace"), Email: strPtr("ada@example.com"), EmailVisible: true, City: strPtr("London")},
		{ID: 2, FullName: strPtr("Grace Hopper"), Email: strPtr("grace@example.com"), EmailVisible: false, City: strPtr("New York")},
		{ID: 3, FullName: strPtr("Alan Turing"), City: strPtr("London")},
	}
	svc := NewDirectoryService(&stubProfileLister{profiles: profiles})

	result, err := svc.Search(context.Background(), "london")
	require.NoError(t, err)

	assert.Equal(t, 2, result.MatchCount)
	assert.Equal(t, 3, result.TotalCount)
	assert.Equal(t, "london", result.Query)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, int64(1), result.Entries[0].ID)
	assert.Equal(t, int64(3), result.Entries[1].ID)
}

func TestDirectorySearchEmailVisibility(t *testing.T) {
	profiles := []models.Profile{
		{ID: 1, FullName: strPtr("Ada Lovelace"), Email: strPtr("ada@example.com"), EmailVisible: true},
		{ID: 2, FullName: strPtr("Grace Hopper"), Email: strPtr("grace@example.com"), EmailVisible: false},
	}
	svc := NewDirectoryService(&stubProfileLister{profiles: profiles})

	result, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, result.Entries, 2)

	require.NotNil(t, result.Entries[0].Email)
	assert.Equal(t, "ada@example.com", *result.Entries[0].Email)
	assert.Nil(t, result.Entries[1].Email)
}

func TestDirectorySearchBlankQueryReturnsAll(t *testing.T) {
	profiles := []models.Profile{{ID: 1}, {ID: 2}, {ID: 3}}
	svc := NewDirectoryService(&stubProfileLister{profiles: profiles})

	result, err := svc.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, result.TotalCount, result.MatchCount)
}

func TestDirectorySearchRepositoryError(t *testing.T) {
	svc := NewDirectoryService(&stubProfileLister{err: errors.New("connection refused")})

	_, err := svc.Search(context.Background(), "ada")
	require.Error(t, err)
}
