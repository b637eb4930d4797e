// Package services holds the business logic between the HTTP controllers
// and the repositories.
//
// Services defined in this package:
//   - AuthService: registration, login, token refresh and logout
//   - ProfileService: a caller's own profile
//   - DirectoryService: the searchable public alumni directory
//   - AnnouncementService: announcements and their tags
//   - AnalyticsService: the staff dashboard aggregates
package services
