package service

import (
	"context"

	"github.com/MKhiriev/study-buddy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SessionService defines the client-side contract for account management and
// the authenticated user's own study profile. It owns the userID/profileID
// identity pair and the locally editable Profile that every other service
// reads from.
type SessionService interface {
	// SignUp creates a new account on the server and, when the response
	// carries a user id, marks the session authenticated. The local profile
	// name is prefilled with the chosen username.
	// Returns an error if the server call fails or no user id can be
	// recovered from the response.
	SignUp(ctx context.Context, username, email, password string) error

	// LogIn authenticates the user against the server and stores the
	// returned user id. When an identity store is configured the id is
	// persisted so the session can be restored on the next launch.
	// Returns an error if the server call fails or no user id can be
	// recovered from the response.
	LogIn(ctx context.Context, username, password string) error

	// RestoreSession re-authenticates from a previously persisted user id
	// without contacting the server. Returns ErrNoSavedSession when nothing
	// was persisted or no identity store is configured.
	RestoreSession(ctx context.Context) error

	// Logout clears the in-memory identity and profile state and removes
	// any persisted user id.
	Logout()

	// UserID returns the authenticated user's id, or false when the session
	// is not authenticated.
	UserID() (int64, bool)

	// ProfileID returns the id of the user's backend profile, or false when
	// no profile has been created or fetched yet.
	ProfileID() (int64, bool)

	// Profile returns the locally editable study profile. The pointer is
	// stable for the lifetime of the session; callers mutate it directly
	// and push changes with SubmitProfile or SyncProfile.
	Profile() *models.Profile

	// RefreshProfile fetches the authenticated user's backend profile and
	// overwrites the local Profile with its contents, including the profile
	// photo when one exists server-side. A user without a backend profile
	// is not an error: the local profile is left as-is.
	RefreshProfile(ctx context.Context) error

	// SubmitProfile resolves every symbolic reference in the local profile
	// (course codes, major, college) to backend ids and creates the profile
	// on the server. Any reference that cannot be resolved blocks the
	// submission. On success the new profile id is stored and the profile
	// photo, when present, is uploaded.
	SubmitProfile(ctx context.Context) error

	// SyncProfile pushes the current local profile to the server as a
	// partial update of the existing backend profile. Requires a profile id
	// from a previous SubmitProfile or RefreshProfile.
	SyncProfile(ctx context.Context) error

	// FetchMatchedUsers returns the profiles of every user the server
	// reports as a mutual match, projected into swipeable candidates.
	// Matches whose profile cannot be fetched are skipped, and repeated
	// matches with the same user are collapsed into one entry.
	FetchMatchedUsers(ctx context.Context) ([]models.Candidate, error)

	// ResolveCourseIDs resolves each course code to a backend id. Codes
	// are trimmed and upper-cased before resolution; resolution first
	// tries to create the record and falls back to a case-insensitive
	// match over the course list. Fails on the first unresolvable code.
	ResolveCourseIDs(ctx context.Context, codes []string) ([]int64, error)

	// ResolveMajorID resolves a major name to a backend id, create-first
	// with a case-insensitive list fallback.
	ResolveMajorID(ctx context.Context, name string) (int64, error)

	// ResolveCollegeID resolves a college name to a backend id,
	// create-first with a case-insensitive list fallback.
	ResolveCollegeID(ctx context.Context, name string) (int64, error)
}

// MatchingService defines the contract for the swipe engine: it loads a
// queue of candidate profiles filtered against the user's own courses and
// advances through it as the user likes or passes on each candidate.
type MatchingService interface {
	// LoadCandidates fetches every profile from the server, filters out the
	// user's own profile and every candidate sharing no course with the
	// user, and replaces the queue with the result. Profile images are
	// prefetched in the background. When several loads race, the most
	// recently started load wins regardless of completion order.
	LoadCandidates(ctx context.Context) error

	// Current returns the candidate under the cursor, or false when the
	// queue is empty.
	Current() (models.Candidate, bool)

	// Position returns the cursor position and the queue length.
	Position() (cursor, total int)

	// SwipeRight records a like on the current candidate and advances the
	// cursor. The returned flag reports whether the like completed a mutual
	// match. The cursor advances even when the server call fails; the error
	// is returned for logging only.
	SwipeRight(ctx context.Context) (matched bool, err error)

	// SwipeLeft records a dislike on the current candidate and advances the
	// cursor immediately. The server call runs in the background and its
	// outcome never reaches the caller.
	SwipeLeft(ctx context.Context)

	// Matches returns a copy of every candidate matched during this session,
	// in the order the matches occurred.
	Matches() []models.Candidate

	// Image returns the prefetched photo for the given profile id, or false
	// when it has not arrived yet.
	Image(profileID int64) ([]byte, bool)

	// Drain blocks until every background swipe submission and image
	// prefetch started so far has finished. Intended for shutdown and tests.
	Drain()
}

// IdentityStore persists the authenticated user id between launches.
// On-device credential storage is platform specific, so the session service
// only depends on this seam; a nil store disables session restore.
type IdentityStore interface {
	// SaveUserID persists the given user id, replacing any previous one.
	SaveUserID(id int64) error

	// LoadUserID returns the persisted user id. The second return value is
	// false when no id has been saved.
	LoadUserID() (int64, bool, error)

	// ClearUserID removes the persisted user id, if any.
	ClearUserID() error
}
