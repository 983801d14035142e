// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
)

// SignupRequest is the request body for POST /signup/.
type SignupRequest struct {
	// Username is the unique account name chosen at signup.
	Username string `json:"username"`

	// Email is the account contact address.
	Email string `json:"email"`

	// Password is sent in plaintext; the backend owns hashing.
	Password string `json:"password"`
}

// SignupUser is the tolerant decode of a signup response. The backend
// returns identity fields either flat ({id, username, email}) or nested
// beneath a "user" key ({user: {id, ...}}); both shapes are accepted and
// missing fields become nil rather than an error.
type SignupUser struct {
	// ID is the new user's identifier as a string. Ids arrive in mixed
	// JSON types and are decoded through [FlexibleID], so an id of an
	// unusable shape comes back as a random UUID rather than nil.
	ID *string

	// Username echoes the registered account name, if present.
	Username *string

	// Email echoes the registered address, if present.
	Email *string
}

// UnmarshalJSON implements json.Unmarshaler. It tries the flat shape
// first, then the nested "user" object, and never fails outright: a
// non-object body simply yields all-nil fields.
func (u *SignupUser) UnmarshalJSON(data []byte) error {
	*u = SignupUser{}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil
	}

	var nested map[string]json.RawMessage
	if rawUser, ok := obj["user"]; ok {
		_ = json.Unmarshal(rawUser, &nested)
	}

	pickRaw := func(key string) (json.RawMessage, bool) {
		if raw, ok := obj[key]; ok && !isJSONNull(raw) {
			return raw, true
		}
		if raw, ok := nested[key]; ok && !isJSONNull(raw) {
			return raw, true
		}
		return nil, false
	}

	if raw, ok := pickRaw("id"); ok {
		var id FlexibleID
		_ = json.Unmarshal(raw, &id)
		u.ID = &id.Value
	}

	pickString := func(key string) *string {
		if raw, ok := pickRaw(key); ok {
			var v AnyValue
			if json.Unmarshal(raw, &v) == nil {
				if s, ok := v.AsString(); ok {
					return &s
				}
			}
		}
		return nil
	}

	u.Username = pickString("username")
	u.Email = pickString("email")
	return nil
}

func isJSONNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// LoginUser is the decoded body of a successful GET /login/ response.
// All fields are optional; the session layer prefers TopLevelID over ID
// because the backend sometimes serialises the id as a string.
type LoginUser struct {
	Email    *string  `json:"email"`
	ID       *int64   `json:"id"`
	Username *string  `json:"username"`
	Profile  AnyValue `json:"profile"`
}

// UserProfileRef is the lightweight profile reference nested in a user
// record. Only the id is needed to fetch the rich profile; the remaining
// fields are carried for image handling.
type UserProfileRef struct {
	HasProfileImageBlob *bool   `json:"has_profile_image_blob"`
	ID                  *int64  `json:"id"`
	ProfileImageMime    *string `json:"profile_image_mime"`
	StudyAreaID         *int64  `json:"study_area_id"`
	UserID              *int64  `json:"user_id"`
}

// UserDTO is the wire representation of a backend user as returned by
// GET /users/{id}/, including the nested profile reference when the user
// has completed profile setup.
type UserDTO struct {
	Email    *string         `json:"email"`
	ID       *int64          `json:"id"`
	Profile  *UserProfileRef `json:"profile"`
	Username *string         `json:"username"`
}
