// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Candidate is a transient projection of a remote profile into the
// matching engine's working queue. It is rebuilt on every candidate-pool
// load and never persisted.
type Candidate struct {
	// UserID is the swipe target. Falls back to the profile id when the
	// backend omitted user_id, matching the mobile client's behaviour.
	UserID int64

	// ProfileID keys image fetches; distinct from UserID.
	ProfileID int64

	// Name is the trimmed display name, "Unknown User" when absent.
	Name string

	// PrimaryMajor is the first major name, "N/A" when absent.
	PrimaryMajor string

	// Courses holds the candidate's trimmed course codes.
	Courses []string

	// StudyTimes lists the candidate's recognised time slots.
	StudyTimes []StudyTime

	// Location is the candidate's study venue, nil when unset or unknown.
	Location *StudyLocation

	// HasImage reports whether the backend flags an avatar; the engine
	// prefetches images only for flagged candidates.
	HasImage bool
}

// NewCandidate projects a rich profile DTO into a Candidate, tolerating
// absent fields the same way the display layer must.
func NewCandidate(dto RichProfileDTO) Candidate {
	c := Candidate{
		Name:         "Unknown User",
		PrimaryMajor: "N/A",
		Courses:      dto.CourseCodes(),
		HasImage:     dto.HasImage(),
	}

	if dto.UserID != nil {
		c.UserID = *dto.UserID
	} else if dto.ID != nil {
		c.UserID = *dto.ID
	}
	if dto.ID != nil {
		c.ProfileID = *dto.ID
	}

	if dto.Name != nil {
		if name := strings.TrimSpace(*dto.Name); name != "" {
			c.Name = name
		}
	}

	if len(dto.Majors) > 0 && dto.Majors[0].Name != nil {
		if major := strings.TrimSpace(*dto.Majors[0].Name); major != "" {
			c.PrimaryMajor = major
		}
	}

	for _, st := range dto.StudyTimes {
		if st.Name == nil {
			continue
		}
		if t, ok := StudyTimeFromName(*st.Name); ok {
			c.StudyTimes = append(c.StudyTimes, t)
		}
	}

	if dto.StudyArea != nil && dto.StudyArea.Name != nil {
		if loc, ok := StudyLocationFromName(*dto.StudyArea.Name); ok {
			c.Location = &loc
		}
	}

	return c
}
