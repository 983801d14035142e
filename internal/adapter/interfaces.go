// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for communicating with the
// StudyBuddy backend.
//
// The primary abstraction is [ServerAPI], one method per backend endpoint.
// Every method resolves to a success payload or a typed error; none panics
// or retries. Error values defined in errors.go are produced by
// mapHTTPError so that callers can branch with [errors.Is]
// (e.g. [ErrRequestFailed] for an application-level rejection,
// [ErrUnknown] for a transport failure with no response at all).
package adapter

import (
	"context"

	"github.com/MKhiriev/study-buddy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_api_mock.go -package=mock

// ServerAPI defines the client's view of the StudyBuddy backend.
// Implementations own URL construction, serialisation, and mapping of
// HTTP statuses to the sentinel errors in this package.
type ServerAPI interface {
	// SignUp registers a new account via POST /signup/. Success requires
	// HTTP 201; the decoded result tolerates both the flat and the
	// user-nested response shapes.
	SignUp(ctx context.Context, req models.SignupRequest) (models.SignupResult, error)

	// LogIn looks up an account via GET /login/ with the credentials in
	// the query string. That placement is the backend's own contract and
	// is preserved here verbatim; be aware it leaks credentials into
	// access logs and URL histories.
	LogIn(ctx context.Context, username, password string) (models.LoginResult, error)

	// GetUser fetches a user record, including its profile reference,
	// via GET /users/{id}/.
	GetUser(ctx context.Context, id int64) (models.UserDTO, error)

	// CreateProfile submits the initial profile via POST /profiles/.
	// The returned DTO may have all-nil fields when the backend response
	// body was undecodable; the call itself still succeeded.
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.ProfileDTO, error)

	// UpdateProfile partially updates a profile via PUT /profiles/{id}/.
	UpdateProfile(ctx context.Context, id int64, req models.UpdateProfileRequest) error

	// GetProfile fetches a rich profile via GET /profiles/{id}.
	GetProfile(ctx context.Context, id int64) (models.RichProfileDTO, error)

	// ListProfiles fetches the full profile pool via GET /profiles/.
	// A single-object body is tolerated and wrapped into a one-element
	// slice.
	ListProfiles(ctx context.Context) ([]models.RichProfileDTO, error)

	// UploadProfileImage uploads JPEG avatar bytes as a multipart form
	// (field "image", filename "avatar.jpg") via POST /profiles/{id}/image/.
	UploadProfileImage(ctx context.Context, profileID int64, jpeg []byte) error

	// FetchProfileImage downloads the raw avatar bytes via
	// GET /profiles/{id}/image/. Any non-200 response is reported as
	// [ErrNoData]; callers treat that as "no image", never as fatal.
	FetchProfileImage(ctx context.Context, profileID int64) ([]byte, error)

	// CreateCourse creates a course lookup record via POST /courses/.
	// The create endpoints are not idempotent server-side; the session
	// layer's list-and-match fallback makes resolution idempotent.
	CreateCourse(ctx context.Context, code string) (models.Course, error)

	// ListCourses fetches all course records via GET /courses/.
	ListCourses(ctx context.Context) ([]models.Course, error)

	// CreateMajor creates a major lookup record via POST /majors/.
	CreateMajor(ctx context.Context, name string) (models.Major, error)

	// ListMajors fetches all major records via GET /majors/.
	ListMajors(ctx context.Context) ([]models.Major, error)

	// CreateCollege creates a college lookup record via POST /colleges/.
	CreateCollege(ctx context.Context, name string) (models.College, error)

	// ListColleges fetches all college records via GET /colleges/.
	// A single-object body is tolerated.
	ListColleges(ctx context.Context) ([]models.College, error)

	// RecordSwipe records a like/dislike via POST /swipes/ and returns
	// the backend's synchronous match verdict.
	RecordSwipe(ctx context.Context, req models.SwipeRequest) (models.SwipeResponse, error)

	// ListUserMatches fetches the user's confirmed mutual matches via
	// GET /users/{id}/matches/.
	ListUserMatches(ctx context.Context, userID int64) ([]models.UserMatch, error)
}
