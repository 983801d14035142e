// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── FlexibleID ───────────────────────────────────────────────────────────────

func TestFlexibleID_AcceptedShapes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "string id", input: `"42"`, want: "42"},
		{name: "integer id", input: `42`, want: "42"},
		{name: "float id", input: `42.0`, want: "42"},
		{name: "non-integral float id", input: `42.5`, want: "42.5"},
		{name: "negative integer", input: `-7`, want: "-7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id FlexibleID
			err := json.Unmarshal([]byte(tt.input), &id)

			require.NoError(t, err)
			assert.Equal(t, tt.want, id.Value)
		})
	}
}

func TestFlexibleID_FallbackIsRandomUUID(t *testing.T) {
	var first, second FlexibleID
	require.NoError(t, json.Unmarshal([]byte(`{"nested":true}`), &first))
	require.NoError(t, json.Unmarshal([]byte(`null`), &second))

	_, err := uuid.Parse(first.Value)
	assert.NoError(t, err, "fallback must be a parseable UUID")
	_, err = uuid.Parse(second.Value)
	assert.NoError(t, err)
	assert.NotEqual(t, first.Value, second.Value, "fallback ids must be unique")
}

// ── AnyValue ─────────────────────────────────────────────────────────────────

func TestAnyValue_Coercions(t *testing.T) {
	var v AnyValue

	require.NoError(t, json.Unmarshal([]byte(`"hello"`), &v))
	s, ok := v.AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)
	_, ok = v.AsDict()
	assert.False(t, ok, "string must not coerce to dict")

	require.NoError(t, json.Unmarshal([]byte(`17`), &v))
	assert.Equal(t, KindNumber, v.Kind())
	s, ok = v.AsString()
	require.True(t, ok)
	assert.Equal(t, "17", s)
	i, ok := v.AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(17), i)

	require.NoError(t, json.Unmarshal([]byte(`{"id": 5, "name": "x"}`), &v))
	dict, ok := v.AsDict()
	require.True(t, ok)
	id, ok := dict["id"].AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(5), id)
	_, ok = v.AsString()
	assert.False(t, ok, "object must not coerce to string")

	require.NoError(t, json.Unmarshal([]byte(`[1, 2]`), &v))
	arr, ok := v.AsArray()
	require.True(t, ok)
	assert.Len(t, arr, 2)

	require.NoError(t, json.Unmarshal([]byte(`true`), &v))
	b, ok := v.AsBool()
	require.True(t, ok)
	assert.True(t, b)

	require.NoError(t, json.Unmarshal([]byte(`null`), &v))
	assert.Equal(t, KindNull, v.Kind())
}

func TestAnyValue_StringNumericCoercion(t *testing.T) {
	var v AnyValue
	require.NoError(t, json.Unmarshal([]byte(`"17"`), &v))

	i, ok := v.AsInt64()
	require.True(t, ok)
	assert.Equal(t, int64(17), i)
}

// ── TopLevelID ───────────────────────────────────────────────────────────────

func TestTopLevelID(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		wantID int64
		wantOK bool
	}{
		{name: "integer id", body: `{"id": 17, "username": "x"}`, wantID: 17, wantOK: true},
		{name: "string id", body: `{"id": "17", "username": "x"}`, wantID: 17, wantOK: true},
		{name: "missing id", body: `{"username": "x"}`, wantOK: false},
		{name: "non-numeric id", body: `{"id": "abc"}`, wantOK: false},
		{name: "array body", body: `[1, 2]`, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := TopLevelID([]byte(tt.body))

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, id)
			}
		})
	}
}
