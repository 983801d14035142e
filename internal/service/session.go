// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/MKhiriev/study-buddy/internal/adapter"
	"github.com/MKhiriev/study-buddy/internal/logger"
	"github.com/MKhiriev/study-buddy/models"
)

type sessionService struct {
	adapter  adapter.ServerAPI
	identity IdentityStore
	logger   *logger.Logger

	mu        sync.RWMutex
	userID    *int64
	profileID *int64
	profile   *models.Profile
}

// NewSessionService builds the session service on top of the given server
// adapter. identity may be nil; session restore is then unavailable.
func NewSessionService(serverAPI adapter.ServerAPI, identity IdentityStore, log *logger.Logger) SessionService {
	if log == nil {
		log = logger.Nop()
	}
	return &sessionService{
		adapter:  serverAPI,
		identity: identity,
		logger:   log,
		profile:  models.NewProfile(),
	}
}

func (s *sessionService) SignUp(ctx context.Context, username, email, password string) error {
	result, err := s.adapter.SignUp(ctx, models.SignupRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return fmt.Errorf("sign up: %w", err)
	}
	if result.UserID == nil {
		return ErrMissingUserID
	}

	s.mu.Lock()
	s.userID = result.UserID
	s.profileID = nil
	s.profile = models.NewProfile()
	s.profile.Name = username
	s.mu.Unlock()

	s.persistUserID(*result.UserID)
	s.logger.Info().Int64("user_id", *result.UserID).Msg("account registered")
	return nil
}

func (s *sessionService) LogIn(ctx context.Context, username, password string) error {
	result, err := s.adapter.LogIn(ctx, username, password)
	if err != nil {
		return fmt.Errorf("log in: %w", err)
	}
	if result.UserID == nil {
		return ErrMissingUserID
	}

	s.mu.Lock()
	s.userID = result.UserID
	s.profileID = nil
	s.profile = models.NewProfile()
	s.mu.Unlock()

	s.persistUserID(*result.UserID)
	s.logger.Info().Int64("user_id", *result.UserID).Msg("logged in")
	return nil
}

func (s *sessionService) RestoreSession(ctx context.Context) error {
	if s.identity == nil {
		return ErrNoSavedSession
	}
	id, ok, err := s.identity.LoadUserID()
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return ErrNoSavedSession
	}

	s.mu.Lock()
	s.userID = &id
	s.profileID = nil
	s.profile = models.NewProfile()
	s.mu.Unlock()

	s.logger.Info().Int64("user_id", id).Msg("session restored")
	return nil
}

func (s *sessionService) Logout() {
	s.mu.Lock()
	s.userID = nil
	s.profileID = nil
	s.profile = models.NewProfile()
	s.mu.Unlock()

	if s.identity != nil {
		if err := s.identity.ClearUserID(); err != nil {
			s.logger.Warn().Err(err).Msg("failed to clear persisted user id")
		}
	}
}

func (s *sessionService) UserID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.userID == nil {
		return 0, false
	}
	return *s.userID, true
}

func (s *sessionService) ProfileID() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profileID == nil {
		return 0, false
	}
	return *s.profileID, true
}

func (s *sessionService) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *sessionService) RefreshProfile(ctx context.Context) error {
	userID, ok := s.UserID()
	if !ok {
		return ErrNotAuthenticated
	}

	user, err := s.adapter.GetUser(ctx, userID)
	if err != nil {
		return fmt.Errorf("fetch user %d: %w", userID, err)
	}
	if user.Profile == nil || user.Profile.ID == nil {
		// Not an error: the user simply has not completed profile setup.
		s.logger.Debug().Int64("user_id", userID).Msg("user has no backend profile yet")
		return nil
	}
	profileID := *user.Profile.ID

	dto, err := s.adapter.GetProfile(ctx, profileID)
	if err != nil {
		return fmt.Errorf("fetch profile %d: %w", profileID, err)
	}

	profile := profileFromDTO(dto)
	if !profile.HasPhoto() && dto.HasImage() {
		data, imgErr := s.adapter.FetchProfileImage(ctx, profileID)
		if imgErr != nil {
			s.logger.Debug().Err(imgErr).Int64("profile_id", profileID).Msg("profile image unavailable")
		} else {
			profile.PhotoData = data
		}
	}

	s.mu.Lock()
	s.profileID = &profileID
	s.profile = profile
	s.mu.Unlock()
	return nil
}

func (s *sessionService) SubmitProfile(ctx context.Context) error {
	userID, ok := s.UserID()
	if !ok {
		return ErrNotAuthenticated
	}
	profile := s.Profile()

	if profile.Location == nil {
		return ErrMissingStudyLocation
	}
	areaID, ok := profile.Location.BackendID()
	if !ok {
		return fmt.Errorf("%w: study location %q", ErrUnresolvedReference, *profile.Location)
	}

	courseIDs, err := s.ResolveCourseIDs(ctx, profile.Courses)
	if err != nil {
		return err
	}

	var majorIDs []int64
	if major := profile.PrimaryMajor(); major != "" {
		majorID, err := s.ResolveMajorID(ctx, major)
		if err != nil {
			return err
		}
		majorIDs = []int64{majorID}
	}

	var collegeID *int64
	if profile.College != "" {
		id, err := s.ResolveCollegeID(ctx, profile.College)
		if err != nil {
			return err
		}
		collegeID = &id
	}

	dto, err := s.adapter.CreateProfile(ctx, models.CreateProfileRequest{
		UserID:       userID,
		StudyAreaID:  areaID,
		CourseIDs:    courseIDs,
		StudyTimeIDs: studyTimeIDs(profile.StudyTimes),
		MajorIDs:     majorIDs,
		Name:         profile.Name,
		CollegeID:    collegeID,
	})
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	if dto.ID == nil {
		return ErrNoProfileID
	}

	s.mu.Lock()
	s.profileID = dto.ID
	s.mu.Unlock()

	if profile.HasPhoto() {
		if upErr := s.adapter.UploadProfileImage(ctx, *dto.ID, profile.PhotoData); upErr != nil {
			// Photo upload never rolls back a created profile.
			s.logger.Warn().Err(upErr).Int64("profile_id", *dto.ID).Msg("profile photo upload failed")
		}
	}

	s.logger.Info().Int64("profile_id", *dto.ID).Msg("profile created")
	return nil
}

func (s *sessionService) SyncProfile(ctx context.Context) error {
	profileID, ok := s.ProfileID()
	if !ok {
		return ErrNoProfileID
	}
	profile := s.Profile()

	req := models.UpdateProfileRequest{
		StudyTimeIDs: studyTimeIDs(profile.StudyTimes),
	}

	if profile.Location != nil {
		if areaID, ok := profile.Location.BackendID(); ok {
			req.StudyAreaID = &areaID
		}
	}

	if len(profile.Courses) > 0 {
		courseIDs, err := s.ResolveCourseIDs(ctx, profile.Courses)
		if err != nil {
			return err
		}
		req.CourseIDs = courseIDs
	}

	if major := profile.PrimaryMajor(); major != "" {
		majorID, err := s.ResolveMajorID(ctx, major)
		if err != nil {
			return err
		}
		req.MajorIDs = []int64{majorID}
	}

	if err := s.adapter.UpdateProfile(ctx, profileID, req); err != nil {
		return fmt.Errorf("update profile %d: %w", profileID, err)
	}

	if profile.HasPhoto() {
		if upErr := s.adapter.UploadProfileImage(ctx, profileID, profile.PhotoData); upErr != nil {
			s.logger.Warn().Err(upErr).Int64("profile_id", profileID).Msg("profile photo upload failed")
		}
	}
	return nil
}

func (s *sessionService) FetchMatchedUsers(ctx context.Context) ([]models.Candidate, error) {
	userID, ok := s.UserID()
	if !ok {
		return nil, ErrNotAuthenticated
	}

	matches, err := s.adapter.ListUserMatches(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	seen := make(map[int64]bool, len(matches))
	candidates := make([]models.Candidate, 0, len(matches))
	for _, m := range matches {
		if m.MatchedUser == nil || m.MatchedUser.Profile == nil || m.MatchedUser.Profile.ID == nil {
			continue
		}
		dto, err := s.adapter.GetProfile(ctx, *m.MatchedUser.Profile.ID)
		if err != nil {
			s.logger.Warn().Err(err).Int64("profile_id", *m.MatchedUser.Profile.ID).Msg("failed to hydrate matched profile")
			continue
		}
		c := models.NewCandidate(dto)
		if m.MatchedUser.ID != nil {
			c.UserID = *m.MatchedUser.ID
		}
		if seen[c.UserID] {
			continue
		}
		seen[c.UserID] = true
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// persistUserID saves the id through the identity store when one is
// configured. Persistence failures only degrade session restore.
func (s *sessionService) persistUserID(id int64) {
	if s.identity == nil {
		return
	}
	if err := s.identity.SaveUserID(id); err != nil {
		s.logger.Warn().Err(err).Msg("failed to persist user id")
	}
}

// profileFromDTO rebuilds a local profile from a rich backend record.
func profileFromDTO(dto models.RichProfileDTO) *models.Profile {
	p := models.NewProfile()

	if dto.Name != nil {
		p.Name = *dto.Name
	}
	p.Courses = dto.CourseCodes()

	for _, m := range dto.Majors {
		if m.Name != nil && *m.Name != "" {
			p.Majors = append(p.Majors, *m.Name)
		}
	}
	for _, m := range dto.Minors {
		if m.Name != nil && *m.Name != "" {
			p.Minors = append(p.Minors, *m.Name)
		}
	}
	if dto.College != nil && dto.College.Name != nil {
		p.College = *dto.College.Name
	}

	for _, st := range dto.StudyTimes {
		if st.Name == nil {
			continue
		}
		if t, ok := models.StudyTimeFromName(*st.Name); ok {
			p.StudyTimes[t] = true
		}
	}
	if dto.StudyArea != nil && dto.StudyArea.Name != nil {
		if loc, ok := models.StudyLocationFromName(*dto.StudyArea.Name); ok {
			p.Location = &loc
		}
	}

	if dto.ProfileImageBlobBase64 != nil {
		if data, err := base64.StdEncoding.DecodeString(*dto.ProfileImageBlobBase64); err == nil {
			p.PhotoData = data
		}
	}
	return p
}

// studyTimeIDs maps the selected time slots to backend ids in canonical
// morning, day, night order so requests are deterministic.
func studyTimeIDs(times map[models.StudyTime]bool) []int64 {
	var ids []int64
	for _, t := range []models.StudyTime{models.StudyTimeMorning, models.StudyTimeDay, models.StudyTimeNight} {
		if !times[t] {
			continue
		}
		if id, ok := t.BackendID(); ok {
			ids = append(ids, id)
		}
	}
	return ids
}
