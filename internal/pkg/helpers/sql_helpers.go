package helpers

// StringOrNil converts an empty string to a nil pointer.
// Optional profile fields are stored as NULL rather than "".
func StringOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
