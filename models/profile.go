// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// StudyTime is a preferred time-of-day slot for study sessions.
type StudyTime string

const (
	StudyTimeMorning StudyTime = "morning"
	StudyTimeDay     StudyTime = "day"
	StudyTimeNight   StudyTime = "night"
)

// studyTimeIDs maps each study time to its fixed backend identifier.
var studyTimeIDs = map[StudyTime]int64{
	StudyTimeMorning: 1,
	StudyTimeDay:     2,
	StudyTimeNight:   3,
}

// BackendID returns the fixed backend id of the study time
// (morning=1, day=2, night=3).
func (t StudyTime) BackendID() (int64, bool) {
	id, ok := studyTimeIDs[t]
	return id, ok
}

// StudyTimeFromName maps a backend study-time name to a StudyTime,
// case-insensitively and whitespace-trimmed. Unknown names report false.
func StudyTimeFromName(name string) (StudyTime, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "morning":
		return StudyTimeMorning, true
	case "day":
		return StudyTimeDay, true
	case "night":
		return StudyTimeNight, true
	default:
		return "", false
	}
}

// StudyLocation is a preferred study venue. The backend stores at most
// one per profile (the "study area"), even though parts of the client
// model it as a set.
type StudyLocation string

const (
	StudyLocationLibrary   StudyLocation = "library"
	StudyLocationCafe      StudyLocation = "cafe"
	StudyLocationStudyHall StudyLocation = "studyHall"
)

// studyLocationIDs maps each location to its fixed backend identifier.
// The ordering (cafe=1, studyHall=2, library=3) intentionally differs
// from the study-time table; it is backend convention.
var studyLocationIDs = map[StudyLocation]int64{
	StudyLocationCafe:      1,
	StudyLocationStudyHall: 2,
	StudyLocationLibrary:   3,
}

// BackendID returns the fixed backend id of the study area
// (cafe=1, studyHall=2, library=3).
func (l StudyLocation) BackendID() (int64, bool) {
	id, ok := studyLocationIDs[l]
	return id, ok
}

// StudyLocationFromName maps a backend study-area name ("library",
// "cafe", "study hall") to a StudyLocation. Unknown names report false.
func StudyLocationFromName(name string) (StudyLocation, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "library":
		return StudyLocationLibrary, true
	case "cafe":
		return StudyLocationCafe, true
	case "study hall":
		return StudyLocationStudyHall, true
	default:
		return "", false
	}
}

// Profile is the locally edited study-matching profile of the current
// user. It mirrors what the backend stores but keeps human-entered names
// (course codes, major names) rather than backend ids; the session layer
// resolves names to ids at submission time.
type Profile struct {
	// Name is the display name shown to candidates.
	Name string

	// Courses holds course codes; identity is case-insensitive.
	Courses []string

	// Majors is ordered; the first entry is the primary major.
	Majors []string

	// Minors is an ordered list of minor names.
	Minors []string

	// College is the optional college name.
	College string

	// StudyTimes is the set of preferred time slots.
	StudyTimes map[StudyTime]bool

	// Location is the single preferred study venue, nil when unset.
	Location *StudyLocation

	// PhotoData holds the raw avatar bytes, nil when no photo is set.
	PhotoData []byte
}

// NewProfile returns an empty profile with an initialised time set.
func NewProfile() *Profile {
	return &Profile{StudyTimes: make(map[StudyTime]bool)}
}

// HasPhoto reports whether the profile carries avatar bytes.
func (p *Profile) HasPhoto() bool { return len(p.PhotoData) > 0 }

// PrimaryMajor returns the first major, or "" when none is set.
func (p *Profile) PrimaryMajor() string {
	if len(p.Majors) == 0 {
		return ""
	}
	return p.Majors[0]
}

// CreateProfileRequest is the request body for POST /profiles/.
// CollegeID is optional; the backend accepts profiles without a college.
type CreateProfileRequest struct {
	UserID       int64   `json:"user_id"`
	StudyAreaID  int64   `json:"study_area_id"`
	CourseIDs    []int64 `json:"course_ids"`
	StudyTimeIDs []int64 `json:"study_time_ids"`
	MajorIDs     []int64 `json:"major_ids"`
	Name         string  `json:"name"`
	CollegeID    *int64  `json:"college_id,omitempty"`
}

// UpdateProfileRequest is the partial-update body for PUT /profiles/{id}/.
// Nil fields are omitted and left untouched by the backend.
type UpdateProfileRequest struct {
	StudyAreaID  *int64  `json:"study_area_id,omitempty"`
	CourseIDs    []int64 `json:"course_ids,omitempty"`
	StudyTimeIDs []int64 `json:"study_time_ids,omitempty"`
	MajorIDs     []int64 `json:"major_ids,omitempty"`
}

// ProfileDTO is the flat profile record returned by profile writes.
type ProfileDTO struct {
	ID           *int64  `json:"id"`
	UserID       *int64  `json:"user_id"`
	StudyAreaID  *int64  `json:"study_area_id"`
	CourseIDs    []int64 `json:"course_ids"`
	StudyTimeIDs []int64 `json:"study_time_ids"`
	MajorIDs     []int64 `json:"major_ids"`
	Name         *string `json:"name"`
	CollegeID    *int64  `json:"college_id"`
}

// RichProfileDTO is the fully expanded profile returned by profile reads,
// with reference entities inlined by name. Every field is optional: the
// backend omits whatever a profile does not have.
type RichProfileDTO struct {
	ID         *int64         `json:"id"`
	UserID     *int64         `json:"user_id"`
	Name       *string        `json:"name"`
	Courses    []Course       `json:"courses"`
	Majors     []Major        `json:"majors"`
	Minors     []Minor        `json:"minors"`
	StudyArea  *StudyAreaRef  `json:"study_area"`
	StudyTimes []StudyTimeRef `json:"study_times"`
	College    *College       `json:"college"`

	HasProfileImageBlob    *bool   `json:"has_profile_image_blob"`
	ProfileImageBlobBase64 *string `json:"profile_image_blob_base64"`
	ProfileImageBlobURL    *string `json:"profile_image_blob_url"`
	ProfileImageMime       *string `json:"profile_image_mime"`
}

// CourseCodes returns the trimmed, non-empty course codes of the profile.
func (p RichProfileDTO) CourseCodes() []string {
	codes := make([]string, 0, len(p.Courses))
	for _, c := range p.Courses {
		if c.Code == nil {
			continue
		}
		if code := strings.TrimSpace(*c.Code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// HasImage reports whether the backend flags an avatar for this profile.
func (p RichProfileDTO) HasImage() bool {
	return p.HasProfileImageBlob != nil && *p.HasProfileImageBlob
}
