// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the wire DTOs exchanged with the StudyBuddy
// backend and the domain types the client works with locally.
//
// The backend serialises identifiers inconsistently (string, integer and
// floating-point ids all occur), so the decoding helpers in this file
// normalise values instead of rejecting them. Decoding here is tolerant
// on principle: a malformed field degrades to an absent one, never to a
// failed response.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/google/uuid"
)

// FlexibleID decodes a backend identifier of any JSON type into its
// canonical string form: strings are kept as-is, numbers are formatted
// without a trailing ".0" ("42", not "42.0"), and anything else falls
// back to a freshly generated random UUID. Decoding never fails.
//
// The UUID fallback mirrors the mobile client; such an id matches no
// backend record, so callers that need a real id must validate it.
type FlexibleID struct {
	Value string
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	// json.Unmarshal treats null as a no-op for string targets, which
	// would silently yield an empty id instead of the fallback.
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Value = uuid.NewString()
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Value = s
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f.Value = formatNumber(n)
		return nil
	}

	f.Value = uuid.NewString()
	return nil
}

// formatNumber renders a JSON number the way the backend renders ids:
// integral values without a fractional part.
func formatNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	if f, err := n.Float64(); err == nil {
		if f == float64(int64(f)) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return n.String()
}

// ValueKind enumerates the JSON types an [AnyValue] can hold.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber
	KindBool
	KindObject
	KindArray
)

// AnyValue is a decoded JSON value of unknown shape, used for response
// fields the backend populates inconsistently (e.g. a user's "profile"
// arriving as an object, an id, or null). Accessors coerce leniently:
// numbers read as strings and numeric strings read as integers, but
// containers never coerce to scalars.
type AnyValue struct {
	kind ValueKind
	str  string
	num  json.Number
	b    bool
	obj  map[string]AnyValue
	arr  []AnyValue
}

// UnmarshalJSON implements json.Unmarshaler. It never fails on valid
// JSON of any shape.
func (v *AnyValue) UnmarshalJSON(data []byte) error {
	*v = AnyValue{}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	switch trimmed[0] {
	case '"':
		v.kind = KindString
		return json.Unmarshal(trimmed, &v.str)
	case '{':
		v.kind = KindObject
		return json.Unmarshal(trimmed, &v.obj)
	case '[':
		v.kind = KindArray
		return json.Unmarshal(trimmed, &v.arr)
	case 't', 'f':
		v.kind = KindBool
		return json.Unmarshal(trimmed, &v.b)
	default:
		v.kind = KindNumber
		return json.Unmarshal(trimmed, &v.num)
	}
}

// Kind returns the JSON type of the held value.
func (v AnyValue) Kind() ValueKind { return v.kind }

// AsString returns the value as a string. Numbers coerce to their
// canonical string form; containers, booleans and null do not coerce.
func (v AnyValue) AsString() (string, bool) {
	switch v.kind {
	case KindString:
		return v.str, true
	case KindNumber:
		return formatNumber(v.num), true
	default:
		return "", false
	}
}

// AsInt64 returns the value as an integer. Integral numbers and numeric
// strings both qualify.
func (v AnyValue) AsInt64() (int64, bool) {
	switch v.kind {
	case KindNumber:
		if i, err := v.num.Int64(); err == nil {
			return i, true
		}
		if f, err := v.num.Float64(); err == nil && f == float64(int64(f)) {
			return int64(f), true
		}
		return 0, false
	case KindString:
		if i, err := strconv.ParseInt(v.str, 10, 64); err == nil {
			return i, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsBool returns the value as a boolean.
func (v AnyValue) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsDict returns the value as an object.
func (v AnyValue) AsDict() (map[string]AnyValue, bool) {
	return v.obj, v.kind == KindObject
}

// AsArray returns the value as an array.
func (v AnyValue) AsArray() ([]AnyValue, bool) {
	return v.arr, v.kind == KindArray
}

// TopLevelID extracts a numeric id from the top-level "id" field of a
// JSON object body, tolerating both number and numeric-string forms.
// Reports false for non-object bodies, absent ids and non-numeric ids.
func TopLevelID(data []byte) (int64, bool) {
	var obj map[string]AnyValue
	if err := json.Unmarshal(data, &obj); err != nil {
		return 0, false
	}
	id, ok := obj["id"]
	if !ok {
		return 0, false
	}
	return id.AsInt64()
}
