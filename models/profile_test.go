package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudyTime_BackendIDs(t *testing.T) {
	tests := []struct {
		time StudyTime
		id   int64
	}{
		{StudyTimeMorning, 1},
		{StudyTimeDay, 2},
		{StudyTimeNight, 3},
	}
	for _, tt := range tests {
		id, ok := tt.time.BackendID()
		require.True(t, ok)
		assert.Equal(t, tt.id, id)
	}

	_, ok := StudyTime("afternoon").BackendID()
	assert.False(t, ok)
}

func TestStudyLocation_BackendIDs(t *testing.T) {
	// cafe=1, studyHall=2, library=3 — deliberately not the same ordering
	// as the study-time table.
	tests := []struct {
		loc StudyLocation
		id  int64
	}{
		{StudyLocationCafe, 1},
		{StudyLocationStudyHall, 2},
		{StudyLocationLibrary, 3},
	}
	for _, tt := range tests {
		id, ok := tt.loc.BackendID()
		require.True(t, ok)
		assert.Equal(t, tt.id, id)
	}
}

func TestStudyTimeFromName(t *testing.T) {
	got, ok := StudyTimeFromName("  Morning ")
	require.True(t, ok)
	assert.Equal(t, StudyTimeMorning, got)

	_, ok = StudyTimeFromName("dawn")
	assert.False(t, ok)
}

func TestStudyLocationFromName(t *testing.T) {
	got, ok := StudyLocationFromName("Study Hall")
	require.True(t, ok)
	assert.Equal(t, StudyLocationStudyHall, got)

	got, ok = StudyLocationFromName("LIBRARY")
	require.True(t, ok)
	assert.Equal(t, StudyLocationLibrary, got)

	_, ok = StudyLocationFromName("dorm")
	assert.False(t, ok)
}

func TestRichProfileDTO_CourseCodes(t *testing.T) {
	body := `{
		"id": 9,
		"courses": [
			{"id": 1, "code": " CS3110 "},
			{"id": 2, "code": ""},
			{"id": 3},
			{"id": 4, "code": "MATH2940"}
		]
	}`

	var dto RichProfileDTO
	require.NoError(t, json.Unmarshal([]byte(body), &dto))

	assert.Equal(t, []string{"CS3110", "MATH2940"}, dto.CourseCodes())
}

func TestRichProfileDTO_HasImage(t *testing.T) {
	var dto RichProfileDTO
	assert.False(t, dto.HasImage())

	flag := true
	dto.HasProfileImageBlob = &flag
	assert.True(t, dto.HasImage())
}
