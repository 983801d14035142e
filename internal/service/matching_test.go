package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/study-buddy/internal/logger"
	"github.com/MKhiriev/study-buddy/internal/mock"
	"github.com/MKhiriev/study-buddy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestMatchingSvc builds a matchingService for user 1 whose profile
// lists the given course codes.
func newTestMatchingSvc(t *testing.T, ctrl *gomock.Controller, ownCourses ...string) (*matchingService, *mock.MockServerAPI) {
	t.Helper()
	mockAPI := mock.NewMockServerAPI(ctrl)
	mockSession := mock.NewMockSessionService(ctrl)

	profile := models.NewProfile()
	profile.Courses = ownCourses
	mockSession.EXPECT().UserID().Return(int64(1), true).AnyTimes()
	mockSession.EXPECT().Profile().Return(profile).AnyTimes()

	svc := NewMatchingService(mockAPI, mockSession, logger.Nop()).(*matchingService)
	return svc, mockAPI
}

func richProfile(profileID, userID int64, name string, codes ...string) models.RichProfileDTO {
	courses := make([]models.Course, len(codes))
	for i := range codes {
		courses[i] = models.Course{ID: intp(int64(i + 1)), Code: strp(codes[i])}
	}
	return models.RichProfileDTO{
		ID:      intp(profileID),
		UserID:  intp(userID),
		Name:    strp(name),
		Courses: courses,
	}
}

// ── LoadCandidates ───────────────────────────────────────────────────────────

func TestMatchingService_LoadCandidates_FiltersPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")

	mockAPI.EXPECT().
		ListProfiles(gomock.Any()).
		Return([]models.RichProfileDTO{
			richProfile(10, 1, "Me", "CS101"),           // own profile, excluded
			richProfile(20, 2, "Bob", "cs101"),          // shared course, case-insensitive
			richProfile(30, 3, "Carol", "MATH201"),      // no shared course
			richProfile(40, 4, "Dave", "BIO1", "CS101"), // shared among several
		}, nil)

	require.NoError(t, svc.LoadCandidates(context.Background()))

	cursor, total := svc.Position()
	assert.Equal(t, 0, cursor)
	require.Equal(t, 2, total)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "Bob", current.Name)
	assert.Equal(t, int64(2), current.UserID)
}

func TestMatchingService_LoadCandidates_DropsProfilesWithoutUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")

	// Neither profile carries a user_id: the second is the session user's
	// own. Without a swipe target, neither may enter the queue — the
	// profile-id fallback in the projection is for display flows only.
	userless := richProfile(20, 0, "Ghost", "CS101")
	userless.UserID = nil
	ownUserless := richProfile(10, 0, "Me", "CS101")
	ownUserless.UserID = nil

	mockAPI.EXPECT().
		ListProfiles(gomock.Any()).
		Return([]models.RichProfileDTO{userless, ownUserless}, nil)

	require.NoError(t, svc.LoadCandidates(context.Background()))

	_, ok := svc.Current()
	assert.False(t, ok)
	_, total := svc.Position()
	assert.Zero(t, total)
}

func TestMatchingService_LoadCandidates_NoOwnCoursesMeansEmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl)

	mockAPI.EXPECT().
		ListProfiles(gomock.Any()).
		Return([]models.RichProfileDTO{richProfile(20, 2, "Bob", "CS101")}, nil)

	require.NoError(t, svc.LoadCandidates(context.Background()))

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestMatchingService_LoadCandidates_PoolFetchFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	poolErr := errors.New("timeout")

	mockAPI.EXPECT().ListProfiles(gomock.Any()).Return(nil, poolErr)

	err := svc.LoadCandidates(context.Background())
	require.ErrorIs(t, err, poolErr)
}

func TestMatchingService_LoadCandidates_PrefetchesFlaggedImages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")

	withImage := richProfile(20, 2, "Bob", "CS101")
	withImage.HasProfileImageBlob = boolp(true)

	mockAPI.EXPECT().
		ListProfiles(gomock.Any()).
		Return([]models.RichProfileDTO{
			withImage,
			richProfile(30, 3, "Carol", "CS101"), // no image flag, no fetch
		}, nil)
	mockAPI.EXPECT().
		FetchProfileImage(gomock.Any(), int64(20)).
		Return([]byte{0xFF, 0xD8}, nil)

	require.NoError(t, svc.LoadCandidates(context.Background()))
	svc.Drain()

	data, ok := svc.Image(20)
	require.True(t, ok)
	assert.Equal(t, []byte{0xFF, 0xD8}, data)

	_, ok = svc.Image(30)
	assert.False(t, ok)
}

// ── Swiping ──────────────────────────────────────────────────────────────────

func TestMatchingService_SwipeRight_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI,
		richProfile(20, 2, "Bob", "CS101"),
		richProfile(30, 3, "Carol", "CS101"),
	)

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), models.SwipeRequest{SwiperID: 1, TargetID: 2, Status: models.SwipeLike}).
		Return(models.SwipeResponse{MatchFound: boolp(false)}, nil)

	matched, err := svc.SwipeRight(context.Background())
	require.NoError(t, err)
	assert.False(t, matched)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), current.UserID)
	assert.Empty(t, svc.Matches())
}

func TestMatchingService_SwipeRight_MatchRecorded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI, richProfile(20, 2, "Bob", "CS101"))

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), models.SwipeRequest{SwiperID: 1, TargetID: 2, Status: models.SwipeLike}).
		Return(models.SwipeResponse{MatchFound: boolp(true), NewMatchID: intp(555)}, nil)

	matched, err := svc.SwipeRight(context.Background())
	require.NoError(t, err)
	assert.True(t, matched)

	matches := svc.Matches()
	require.Len(t, matches, 1)
	assert.Equal(t, int64(2), matches[0].UserID)
}

func TestMatchingService_SwipeRight_RepeatMatchNotDuplicated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI, richProfile(20, 2, "Bob", "CS101"))

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), gomock.Any()).
		Return(models.SwipeResponse{MatchFound: boolp(true)}, nil).
		Times(2)

	// The one-card queue wraps, so Bob comes around again.
	_, err := svc.SwipeRight(context.Background())
	require.NoError(t, err)
	_, err = svc.SwipeRight(context.Background())
	require.NoError(t, err)

	assert.Len(t, svc.Matches(), 1)
}

func TestMatchingService_SwipeRight_FailureStillAdvances(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI,
		richProfile(20, 2, "Bob", "CS101"),
		richProfile(30, 3, "Carol", "CS101"),
	)

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), gomock.Any()).
		Return(models.SwipeResponse{}, errors.New("timeout"))

	matched, err := svc.SwipeRight(context.Background())
	require.Error(t, err)
	assert.False(t, matched)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), current.UserID)
}

func TestMatchingService_SwipeRight_EmptyQueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestMatchingSvc(t, ctrl, "CS101")

	_, err := svc.SwipeRight(context.Background())
	require.ErrorIs(t, err, ErrNoCandidates)
}

func TestMatchingService_SwipeLeft_AdvancesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI,
		richProfile(20, 2, "Bob", "CS101"),
		richProfile(30, 3, "Carol", "CS101"),
	)

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), models.SwipeRequest{SwiperID: 1, TargetID: 2, Status: models.SwipeDislike}).
		Return(models.SwipeResponse{}, errors.New("dropped")) // outcome never surfaces

	svc.SwipeLeft(context.Background())

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(3), current.UserID)

	svc.Drain()
	assert.Empty(t, svc.Matches())
}

func TestMatchingService_CursorWrapsAround(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI,
		richProfile(20, 2, "Bob", "CS101"),
		richProfile(30, 3, "Carol", "CS101"),
	)

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), gomock.Any()).
		Return(models.SwipeResponse{}, nil).
		Times(2)

	_, err := svc.SwipeRight(context.Background())
	require.NoError(t, err)
	_, err = svc.SwipeRight(context.Background())
	require.NoError(t, err)

	// Two swipes over a two-card queue land back on the first card.
	cursor, total := svc.Position()
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 2, total)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, int64(2), current.UserID)
}

func TestMatchingService_ReloadResetsCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI := newTestMatchingSvc(t, ctrl, "CS101")
	loadQueue(t, svc, mockAPI,
		richProfile(20, 2, "Bob", "CS101"),
		richProfile(30, 3, "Carol", "CS101"),
	)

	mockAPI.EXPECT().
		RecordSwipe(gomock.Any(), gomock.Any()).
		Return(models.SwipeResponse{}, nil)
	_, err := svc.SwipeRight(context.Background())
	require.NoError(t, err)

	loadQueue(t, svc, mockAPI, richProfile(40, 4, "Dave", "CS101"))

	cursor, total := svc.Position()
	assert.Equal(t, 0, cursor)
	assert.Equal(t, 1, total)
}

// loadQueue stubs one ListProfiles call and loads the pool.
func loadQueue(t *testing.T, svc *matchingService, mockAPI *mock.MockServerAPI, pool ...models.RichProfileDTO) {
	t.Helper()
	mockAPI.EXPECT().ListProfiles(gomock.Any()).Return(pool, nil)
	require.NoError(t, svc.LoadCandidates(context.Background()))
}
