package dto

import (
	"time"

	"github.com/ozgekaya/alumnihub/internal/app/models"
)

// SaveProfileRequest mirrors the editable subset of the profile form.
// Empty strings are treated as absent and stored as NULL.
type SaveProfileRequest struct {
	FullName       string `json:"fullName"`
	City           string `json:"city"`
	Country        string `json:"country"`
	GraduationYear *int   `json:"graduationYear"`
	Cohort         string `json:"cohort"`
	MSc            bool   `json:"msc"`
	JobTitle       string `json:"jobTitle"`
	Company        string `json:"company"`
	Bio            string `json:"bio"`
	AvatarURL      string `json:"avatarUrl" binding:"omitempty,url"`
	GithubURL      string `json:"githubUrl" binding:"omitempty,url"`
	LinkedinURL    string `json:"linkedinUrl" binding:"omitempty,url"`
	TwitterURL     string `json:"twitterUrl" binding:"omitempty,url"`
	WebsiteURL     string `json:"websiteUrl" binding:"omitempty,url"`
	EmailVisible   bool   `json:"emailVisible"`
	IsPublic       bool   `json:"isPublic"`
}

// ProfileResponse represents a caller's own profile
type ProfileResponse struct {
	ID             int64   `json:"id"`
	UserID         int64   `json:"userId"`
	FullName       *string `json:"fullName,omitempty"`
	Email          *string `json:"email,omitempty"`
	EmailVisible   bool    `json:"emailVisible"`
	IsPublic       bool    `json:"isPublic"`
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
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// FromProfile converts a models.Profile to a ProfileResponse
func FromProfile(p *models.Profile) *ProfileResponse {
	if p == nil {
		return nil
	}
	return &ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		FullName:       p.FullName,
		Email:          p.Email,
		EmailVisible:   p.EmailVisible,
		IsPublic:       p.IsPublic,
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
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
}
