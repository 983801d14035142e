// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/study-buddy/internal/adapter"
	"github.com/MKhiriev/study-buddy/internal/logger"
	"github.com/MKhiriev/study-buddy/models"
)

type matchingService struct {
	adapter adapter.ServerAPI
	session SessionService
	logger  *logger.Logger

	mu      sync.Mutex
	queue   []models.Candidate
	cursor  int
	matches []models.Candidate
	loadSeq int

	imgMu  sync.RWMutex
	images map[int64][]byte

	background sync.WaitGroup
}

// NewMatchingService builds the swipe engine. The session service supplies
// the authenticated user id and the course list candidates are filtered
// against.
func NewMatchingService(serverAPI adapter.ServerAPI, session SessionService, log *logger.Logger) MatchingService {
	if log == nil {
		log = logger.Nop()
	}
	return &matchingService{
		adapter: serverAPI,
		session: session,
		logger:  log,
		images:  make(map[int64][]byte),
	}
}

func (m *matchingService) LoadCandidates(ctx context.Context) error {
	userID, ok := m.session.UserID()
	if !ok {
		return ErrNotAuthenticated
	}

	ownCourses := courseSet(m.session.Profile().Courses)

	m.mu.Lock()
	m.loadSeq++
	seq := m.loadSeq
	m.mu.Unlock()

	profiles, err := m.adapter.ListProfiles(ctx)
	if err != nil {
		return fmt.Errorf("load candidate pool: %w", err)
	}

	// A user with no courses shares none with anyone: the queue is empty
	// rather than unfiltered.
	queue := make([]models.Candidate, 0, len(profiles))
	if len(ownCourses) > 0 {
		for _, dto := range profiles {
			// A profile without a backend user id cannot be swiped on;
			// it never enters the queue, fallback ids notwithstanding.
			if dto.UserID == nil {
				continue
			}
			if *dto.UserID == userID {
				continue
			}
			c := models.NewCandidate(dto)
			if !sharesCourse(ownCourses, c.Courses) {
				continue
			}
			queue = append(queue, c)
		}
	}

	m.mu.Lock()
	if seq < m.loadSeq {
		// A newer load started while this one was in flight; its result
		// wins even if it completes first.
		m.mu.Unlock()
		m.logger.Debug().Int("superseded_load", seq).Msg("discarding stale candidate pool")
		return nil
	}
	m.queue = queue
	m.cursor = 0
	m.mu.Unlock()

	m.logger.Info().Int("candidates", len(queue)).Msg("candidate pool loaded")
	m.prefetchImages(ctx, queue)
	return nil
}

func (m *matchingService) Current() (models.Candidate, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentLocked()
}

func (m *matchingService) Position() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cursor, len(m.queue)
}

func (m *matchingService) SwipeRight(ctx context.Context) (bool, error) {
	userID, ok := m.session.UserID()
	if !ok {
		return false, ErrNotAuthenticated
	}

	m.mu.Lock()
	cand, ok := m.currentLocked()
	m.mu.Unlock()
	if !ok {
		return false, ErrNoCandidates
	}

	resp, err := m.adapter.RecordSwipe(ctx, models.SwipeRequest{
		SwiperID: userID,
		TargetID: cand.UserID,
		Status:   models.SwipeLike,
	})

	matched := false
	if err != nil {
		// The swipe may or may not have landed; either way the user moves
		// on and a lost like resurfaces on the next pool load.
		m.logger.Warn().Err(err).Int64("target_id", cand.UserID).Msg("like submission failed, advancing anyway")
	} else if resp.Matched() {
		matched = true
		m.recordMatch(cand, resp.NewMatchID)
	}

	m.advance()
	if err != nil {
		return false, fmt.Errorf("record like: %w", err)
	}
	return matched, nil
}

func (m *matchingService) SwipeLeft(ctx context.Context) {
	userID, ok := m.session.UserID()
	if !ok {
		return
	}

	m.mu.Lock()
	cand, ok := m.currentLocked()
	m.mu.Unlock()
	if !ok {
		return
	}

	// Dislikes never change what the user sees next, so the submission is
	// detached from the caller's lifetime.
	bg := context.WithoutCancel(ctx)
	m.background.Add(1)
	go func() {
		defer m.background.Done()
		_, err := m.adapter.RecordSwipe(bg, models.SwipeRequest{
			SwiperID: userID,
			TargetID: cand.UserID,
			Status:   models.SwipeDislike,
		})
		if err != nil {
			m.logger.Warn().Err(err).Int64("target_id", cand.UserID).Msg("dislike submission failed")
		}
	}()

	m.advance()
}

func (m *matchingService) Matches() []models.Candidate {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Candidate, len(m.matches))
	copy(out, m.matches)
	return out
}

func (m *matchingService) Image(profileID int64) ([]byte, bool) {
	m.imgMu.RLock()
	defer m.imgMu.RUnlock()
	data, ok := m.images[profileID]
	return data, ok
}

func (m *matchingService) Drain() {
	m.background.Wait()
}

func (m *matchingService) currentLocked() (models.Candidate, bool) {
	if len(m.queue) == 0 {
		return models.Candidate{}, false
	}
	return m.queue[m.cursor], true
}

// advance moves the cursor one slot forward, wrapping to the start of the
// queue. Candidates are never removed from the queue within a load, so a
// full lap shows everyone again.
func (m *matchingService) advance() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.queue)
}

// recordMatch appends the candidate to the session match list unless a
// match with the same user was already recorded.
func (m *matchingService) recordMatch(cand models.Candidate, matchID *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.matches {
		if existing.UserID == cand.UserID {
			return
		}
	}
	m.matches = append(m.matches, cand)

	event := m.logger.Info().Int64("user_id", cand.UserID)
	if matchID != nil {
		event = event.Int64("match_id", *matchID)
	}
	event.Msg("mutual match")
}

// prefetchImages starts one background download per flagged candidate.
// Results are cached by profile id, so a download outliving its pool load
// is stored harmlessly rather than applied to the wrong card.
func (m *matchingService) prefetchImages(ctx context.Context, queue []models.Candidate) {
	bg := context.WithoutCancel(ctx)
	for _, cand := range queue {
		if !cand.HasImage {
			continue
		}
		if _, ok := m.Image(cand.ProfileID); ok {
			continue
		}
		profileID := cand.ProfileID
		m.background.Add(1)
		go func() {
			defer m.background.Done()
			data, err := m.adapter.FetchProfileImage(bg, profileID)
			if err != nil {
				m.logger.Debug().Err(err).Int64("profile_id", profileID).Msg("candidate image unavailable")
				return
			}
			m.imgMu.Lock()
			m.images[profileID] = data
			m.imgMu.Unlock()
		}()
	}
}

// courseSet canonicalises course codes into a lookup set.
func courseSet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, code := range codes {
		if code = normalizeCourseCode(code); code != "" {
			set[code] = true
		}
	}
	return set
}

// sharesCourse reports whether any of the candidate's codes is in the
// user's set.
func sharesCourse(own map[string]bool, courses []string) bool {
	for _, code := range courses {
		if own[normalizeCourseCode(code)] {
			return true
		}
	}
	return false
}
