package models

import (
	"time"
)

// Profile defines the alumni profile model based on the 'profiles' table.
// At most one profile exists per user. Optional attributes are pointers so
// absence is encoded in the type rather than checked ad hoc.
type Profile struct {
	ID             int64     `json:"id" db:"id"`
	UserID         int64     `json:"userId" db:"user_id"`
	FullName       *string   `json:"fullName,omitempty" db:"full_name"`
	Email          *string   `json:"email,omitempty" db:"email"`
	EmailVisible   bool      `json:"emailVisible" db:"email_visible"`
	IsPublic       bool      `json:"isPublic" db:"is_public"`
	City           *string   `json:"city,omitempty" db:"city"`
	Country        *string   `json:"country,omitempty" db:"country"`
	GraduationYear *int      `json:"graduationYear,omitempty" db:"graduation_year"`
	Cohort         *string   `json:"cohort,omitempty" db:"cohort"`
	MSc            bool      `json:"msc" db:"msc"`
	UserType       UserType  `json:"userType" db:"user_type"`
	JobTitle       *string   `json:"jobTitle,omitempty" db:"job_title"`
	Company        *string   `json:"company,omitempty" db:"company"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	AvatarURL      *string   `json:"avatarUrl,omitempty" db:"avatar_url"`
	GithubURL      *string   `json:"githubUrl,omitempty" db:"github_url"`
	LinkedinURL    *string   `json:"linkedinUrl,omitempty" db:"linkedin_url"`
	TwitterURL     *string   `json:"twitterUrl,omitempty" db:"twitter_url"`
	WebsiteURL     *string   `json:"websiteUrl,omitempty" db:"website_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}

// ProfileHistory defines an append-only prior profile state based on the
// 'profiles_history' table. Rows are written alongside each upsert and are
// never mutated afterwards.
type ProfileHistory struct {
	ID         int64      `json:"id" db:"id"`
	ProfileID  int64      `json:"profileId" db:"profile_id"`
	UserID     int64      `json:"userId" db:"user_id"`
	FullName   *string    `json:"fullName,omitempty" db:"full_name"`
	City       *string    `json:"city,omitempty" db:"city"`
	Country    *string    `json:"country,omitempty" db:"country"`
	JobTitle   *string    `json:"jobTitle,omitempty" db:"job_title"`
	Company    *string    `json:"company,omitempty" db:"company"`
	ChangeType ChangeType `json:"changeType" db:"change_type"`
	ChangedAt  time.Time  `json:"changedAt" db:"changed_at"`
}

// SignInEvent is a timestamped authentication event from 'sign_in_events'
type SignInEvent struct {
	ID         int64     `json:"id" db:"id"`
	UserID     int64     `json:"userId" db:"user_id"`
	OccurredAt time.Time `json:"occurredAt" db:"occurred_at"`
}
