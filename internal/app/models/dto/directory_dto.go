package dto

import "github.com/ozgekaya/alumnihub/internal/app/models"

// DirectoryEntry is the public view of a profile shown in the directory.
// Email appears only when the owner marked it visible.
type DirectoryEntry struct {
	ID             int64   `json:"id"`
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	City           *string `json:"city,omitempty"`
	Country        *string `json:"country,omitempty"`
	GraduationYear *int    `json:"graduationYear,omitempty"`
	Cohort         *string `json:"cohort,omitempty"`
	MSc            bool    `json:"msc"`
	UserType       string  `json:"userType"`
	JobTitle       *string `json:"jobTitle,omitempty"`
	Company        *string `json:"company,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
	GithubURL      *string `json:"githubUrl,omitempty"`
	LinkedinURL    *string `json:"linkedinUrl,omitempty"`
	TwitterURL     *string `json:"twitterUrl,omitempty"`
	WebsiteURL     *string `json:"websiteUrl,omitempty"`
}

// DirectoryResponse carries the filtered entries plus the counts the
// directory page renders ("showing X of Y").
type DirectoryResponse struct {
	Entries    []DirectoryEntry `json:"entries"`
	MatchCount int              `json:"matchCount"`
	TotalCount int              `json:"totalCount"`
	Query      string           `json:"query"`
}

// FromProfileForDirectory converts a profile to its directory view,
// suppressing the email unless email_visible is set.
func FromProfileForDirectory(p *models.Profile) DirectoryEntry {
	entry := DirectoryEntry{
		ID:             p.ID,
		FullName:       p.FullName,
		City:           p.City,
		Country:        p.Country,
		GraduationYear: p.GraduationYear,
		Cohort:         p.Cohort,
		MSc:            p.MSc,
		UserType:       string(p.UserType),
		JobTitle:       p.JobTitle,
		Company:        p.Company,
		Bio:            p.Bio,
		AvatarURL:      p.AvatarURL,
		GithubURL:      p.GithubURL,
		LinkedinURL:    p.LinkedinURL,
		TwitterURL:     p.TwitterURL,
		WebsiteURL:     p.WebsiteURL,
	}
	if p.EmailVisible {
		entry.Email = p.Email
	}
	return entry
}
