// Package services holds the business layer between the HTTP controllers and
// the repositories. Services own input shaping (trimming, status coercion,
// required-field checks), translation of repository errors into apperrors
// sentinels, and list-cache invalidation.
//
// Services defined in this package:
//   - AuthService: registration, login, refresh-token exchange and logout
//   - DepartmentService: department catalog operations
//   - SchoolService: school catalog operations
//   - SessionService: academic-session catalog operations
//   - CourseService: course catalog operations
package services

import "time"

// listCacheTTL bounds how stale a cached list response may get if an
// invalidation is lost (e.g. Redis restart between write and delete).
const listCacheTTL = time.Minute
