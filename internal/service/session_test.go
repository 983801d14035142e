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

func strp(s string) *string { return &s }
func intp(v int64) *int64   { return &v }
func boolp(b bool) *bool    { return &b }

// newTestSessionSvc builds a sessionService with a mocked adapter and
// identity store.
func newTestSessionSvc(t *testing.T, ctrl *gomock.Controller) (*sessionService, *mock.MockServerAPI, *mock.MockIdentityStore) {
	t.Helper()
	mockAPI := mock.NewMockServerAPI(ctrl)
	mockIdentity := mock.NewMockIdentityStore(ctrl)

	svc := NewSessionService(mockAPI, mockIdentity, logger.Nop()).(*sessionService)
	return svc, mockAPI, mockIdentity
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestSessionService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockIdentity := newTestSessionSvc(t, ctrl)
	ctx := context.Background()

	mockAPI.EXPECT().
		SignUp(gomock.Any(), models.SignupRequest{Username: "alice", Email: "alice@example.com", Password: "pw"}).
		Return(models.SignupResult{UserID: intp(7), Status: 201}, nil)
	mockIdentity.EXPECT().SaveUserID(int64(7)).Return(nil)

	err := svc.SignUp(ctx, "alice", "alice@example.com", "pw")
	require.NoError(t, err)

	userID, ok := svc.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(7), userID)
	assert.Equal(t, "alice", svc.Profile().Name)
}

func TestSessionService_SignUp_NoUserIDInResponse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)

	mockAPI.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		Return(models.SignupResult{Status: 201}, nil)

	err := svc.SignUp(context.Background(), "alice", "alice@example.com", "pw")
	require.ErrorIs(t, err, ErrMissingUserID)

	_, ok := svc.UserID()
	assert.False(t, ok)
}

func TestSessionService_SignUp_ServerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	serverErr := errors.New("boom")

	mockAPI.EXPECT().
		SignUp(gomock.Any(), gomock.Any()).
		Return(models.SignupResult{}, serverErr)

	err := svc.SignUp(context.Background(), "alice", "alice@example.com", "pw")
	require.ErrorIs(t, err, serverErr)

	_, ok := svc.UserID()
	assert.False(t, ok)
}

// ── LogIn ────────────────────────────────────────────────────────────────────

func TestSessionService_LogIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockIdentity := newTestSessionSvc(t, ctrl)

	mockAPI.EXPECT().
		LogIn(gomock.Any(), "alice", "pw").
		Return(models.LoginResult{UserID: intp(17), Status: 200}, nil)
	mockIdentity.EXPECT().SaveUserID(int64(17)).Return(nil)

	require.NoError(t, svc.LogIn(context.Background(), "alice", "pw"))

	userID, ok := svc.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(17), userID)
}

func TestSessionService_LogIn_PersistFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockIdentity := newTestSessionSvc(t, ctrl)

	mockAPI.EXPECT().
		LogIn(gomock.Any(), "alice", "pw").
		Return(models.LoginResult{UserID: intp(17)}, nil)
	mockIdentity.EXPECT().SaveUserID(int64(17)).Return(errors.New("disk full"))

	require.NoError(t, svc.LogIn(context.Background(), "alice", "pw"))

	_, ok := svc.UserID()
	assert.True(t, ok)
}

// ── RestoreSession / Logout ──────────────────────────────────────────────────

func TestSessionService_RestoreSession_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity := newTestSessionSvc(t, ctrl)

	mockIdentity.EXPECT().LoadUserID().Return(int64(99), true, nil)

	require.NoError(t, svc.RestoreSession(context.Background()))

	userID, ok := svc.UserID()
	require.True(t, ok)
	assert.Equal(t, int64(99), userID)
}

func TestSessionService_RestoreSession_NothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockIdentity := newTestSessionSvc(t, ctrl)

	mockIdentity.EXPECT().LoadUserID().Return(int64(0), false, nil)

	err := svc.RestoreSession(context.Background())
	require.ErrorIs(t, err, ErrNoSavedSession)
}

func TestSessionService_RestoreSession_NoIdentityStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewSessionService(mock.NewMockServerAPI(ctrl), nil, logger.Nop())

	err := svc.RestoreSession(context.Background())
	require.ErrorIs(t, err, ErrNoSavedSession)
}

func TestSessionService_Logout_ClearsEverything(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, mockIdentity := newTestSessionSvc(t, ctrl)

	mockAPI.EXPECT().
		LogIn(gomock.Any(), "alice", "pw").
		Return(models.LoginResult{UserID: intp(17)}, nil)
	mockIdentity.EXPECT().SaveUserID(int64(17)).Return(nil)
	mockIdentity.EXPECT().ClearUserID().Return(nil)

	require.NoError(t, svc.LogIn(context.Background(), "alice", "pw"))
	svc.Profile().Name = "Alice"

	svc.Logout()

	_, ok := svc.UserID()
	assert.False(t, ok)
	_, ok = svc.ProfileID()
	assert.False(t, ok)
	assert.Empty(t, svc.Profile().Name)
}

// ── RefreshProfile ───────────────────────────────────────────────────────────

func TestSessionService_RefreshProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	mockAPI.EXPECT().
		GetUser(gomock.Any(), int64(1)).
		Return(models.UserDTO{
			ID:      intp(1),
			Profile: &models.UserProfileRef{ID: intp(42)},
		}, nil)
	mockAPI.EXPECT().
		GetProfile(gomock.Any(), int64(42)).
		Return(models.RichProfileDTO{
			ID:     intp(42),
			UserID: intp(1),
			Name:   strp("Alice"),
			Courses: []models.Course{
				{ID: intp(1), Code: strp("CS101")},
				{ID: intp(2), Code: strp("  MATH201 ")},
			},
			Majors:     []models.Major{{ID: intp(3), Name: strp("Computer Science")}},
			College:    &models.College{ID: intp(4), Name: strp("Engineering")},
			StudyArea:  &models.StudyAreaRef{ID: intp(3), Name: strp("Library")},
			StudyTimes: []models.StudyTimeRef{{ID: intp(1), Name: strp("Morning")}},

			HasProfileImageBlob: boolp(true),
		}, nil)
	mockAPI.EXPECT().
		FetchProfileImage(gomock.Any(), int64(42)).
		Return([]byte{0xFF, 0xD8}, nil)

	require.NoError(t, svc.RefreshProfile(context.Background()))

	profileID, ok := svc.ProfileID()
	require.True(t, ok)
	assert.Equal(t, int64(42), profileID)

	p := svc.Profile()
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, []string{"CS101", "MATH201"}, p.Courses)
	assert.Equal(t, []string{"Computer Science"}, p.Majors)
	assert.Equal(t, "Engineering", p.College)
	assert.True(t, p.StudyTimes[models.StudyTimeMorning])
	require.NotNil(t, p.Location)
	assert.Equal(t, models.StudyLocationLibrary, *p.Location)
	assert.Equal(t, []byte{0xFF, 0xD8}, p.PhotoData)
}

func TestSessionService_RefreshProfile_UserWithoutProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	mockAPI.EXPECT().
		GetUser(gomock.Any(), int64(1)).
		Return(models.UserDTO{ID: intp(1)}, nil)

	require.NoError(t, svc.RefreshProfile(context.Background()))

	_, ok := svc.ProfileID()
	assert.False(t, ok)
}

func TestSessionService_RefreshProfile_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	err := svc.RefreshProfile(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

// ── SubmitProfile ────────────────────────────────────────────────────────────

func TestSessionService_SubmitProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	loc := models.StudyLocationLibrary
	p := svc.Profile()
	p.Name = "Alice"
	p.Courses = []string{"cs101"}
	p.Majors = []string{"Computer Science"}
	p.StudyTimes[models.StudyTimeMorning] = true
	p.StudyTimes[models.StudyTimeNight] = true
	p.Location = &loc
	p.PhotoData = []byte{0xFF, 0xD8}

	mockAPI.EXPECT().
		CreateCourse(gomock.Any(), "CS101").
		Return(models.Course{ID: intp(11), Code: strp("CS101")}, nil)
	mockAPI.EXPECT().
		CreateMajor(gomock.Any(), "Computer Science").
		Return(models.Major{ID: intp(22), Name: strp("Computer Science")}, nil)
	mockAPI.EXPECT().
		CreateProfile(gomock.Any(), models.CreateProfileRequest{
			UserID:       1,
			StudyAreaID:  3,
			CourseIDs:    []int64{11},
			StudyTimeIDs: []int64{1, 3},
			MajorIDs:     []int64{22},
			Name:         "Alice",
		}).
		Return(models.ProfileDTO{ID: intp(42)}, nil)
	mockAPI.EXPECT().
		UploadProfileImage(gomock.Any(), int64(42), []byte{0xFF, 0xD8}).
		Return(nil)

	require.NoError(t, svc.SubmitProfile(context.Background()))

	profileID, ok := svc.ProfileID()
	require.True(t, ok)
	assert.Equal(t, int64(42), profileID)
}

func TestSessionService_SubmitProfile_MissingLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	err := svc.SubmitProfile(context.Background())
	require.ErrorIs(t, err, ErrMissingStudyLocation)
}

func TestSessionService_SubmitProfile_UnresolvedCourseBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	loc := models.StudyLocationCafe
	p := svc.Profile()
	p.Courses = []string{"CS999"}
	p.Location = &loc

	mockAPI.EXPECT().
		CreateCourse(gomock.Any(), "CS999").
		Return(models.Course{}, errors.New("duplicate"))
	mockAPI.EXPECT().
		ListCourses(gomock.Any()).
		Return([]models.Course{{ID: intp(1), Code: strp("CS101")}}, nil)

	err := svc.SubmitProfile(context.Background())
	require.ErrorIs(t, err, ErrUnresolvedReference)

	// Submission must be blocked entirely: no profile was created.
	_, ok := svc.ProfileID()
	assert.False(t, ok)
}

func TestSessionService_SubmitProfile_PhotoUploadFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	loc := models.StudyLocationStudyHall
	p := svc.Profile()
	p.Name = "Alice"
	p.Location = &loc
	p.PhotoData = []byte{0x01}

	mockAPI.EXPECT().
		CreateProfile(gomock.Any(), gomock.Any()).
		Return(models.ProfileDTO{ID: intp(42)}, nil)
	mockAPI.EXPECT().
		UploadProfileImage(gomock.Any(), int64(42), []byte{0x01}).
		Return(errors.New("image too large"))

	require.NoError(t, svc.SubmitProfile(context.Background()))

	_, ok := svc.ProfileID()
	assert.True(t, ok)
}

// ── SyncProfile ──────────────────────────────────────────────────────────────

func TestSessionService_SyncProfile_RequiresProfileID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	err := svc.SyncProfile(context.Background())
	require.ErrorIs(t, err, ErrNoProfileID)
}

func TestSessionService_SyncProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)
	svc.profileID = intp(42)

	loc := models.StudyLocationCafe
	p := svc.Profile()
	p.Courses = []string{"CS101"}
	p.StudyTimes[models.StudyTimeDay] = true
	p.Location = &loc

	mockAPI.EXPECT().
		CreateCourse(gomock.Any(), "CS101").
		Return(models.Course{ID: intp(11)}, nil)
	mockAPI.EXPECT().
		UpdateProfile(gomock.Any(), int64(42), models.UpdateProfileRequest{
			StudyAreaID:  intp(1),
			CourseIDs:    []int64{11},
			StudyTimeIDs: []int64{2},
		}).
		Return(nil)

	require.NoError(t, svc.SyncProfile(context.Background()))
}

// ── FetchMatchedUsers ────────────────────────────────────────────────────────

func TestSessionService_FetchMatchedUsers_DedupsAndSkipsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAPI, _ := newTestSessionSvc(t, ctrl)
	svc.userID = intp(1)

	bob := &models.UserDTO{
		ID:      intp(5),
		Profile: &models.UserProfileRef{ID: intp(50)},
	}
	carol := &models.UserDTO{
		ID:      intp(6),
		Profile: &models.UserProfileRef{ID: intp(60)},
	}

	mockAPI.EXPECT().
		ListUserMatches(gomock.Any(), int64(1)).
		Return([]models.UserMatch{
			{MatchID: intp(100), MatchedUser: bob},
			{MatchID: intp(101), MatchedUser: bob}, // repeat match, must collapse
			{MatchID: intp(102), MatchedUser: carol},
			{MatchID: intp(103)}, // no matched user, skipped
		}, nil)
	mockAPI.EXPECT().
		GetProfile(gomock.Any(), int64(50)).
		Return(models.RichProfileDTO{ID: intp(50), UserID: intp(5), Name: strp("Bob")}, nil).
		Times(2)
	mockAPI.EXPECT().
		GetProfile(gomock.Any(), int64(60)).
		Return(models.RichProfileDTO{}, errors.New("gone"))

	matched, err := svc.FetchMatchedUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, matched, 1)
	assert.Equal(t, int64(5), matched[0].UserID)
	assert.Equal(t, "Bob", matched[0].Name)
}

func TestSessionService_FetchMatchedUsers_NotAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestSessionSvc(t, ctrl)

	_, err := svc.FetchMatchedUsers(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}
