package models

// UserType classifies a profile's role within the community
type UserType string

const (
	UserTypeAdmin  UserType = "Admin"
	UserTypeStaff  UserType = "Staff"
	UserTypeAlumni UserType = "Alumni"
)

// IsPrivileged reports whether the user type may access analytics
func (t UserType) IsPrivileged() bool {
	return t == UserTypeAdmin || t == UserTypeStaff
}

// ChangeType marks how a profile history row came to be
type ChangeType string

const (
	ChangeTypeInsert ChangeType = "INSERT"
	ChangeTypeUpdate ChangeType = "UPDATE"
)
