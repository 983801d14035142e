// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SwipeStatus is the one-directional decision recorded against a target
// user. The backend accepts exactly these two literals.
type SwipeStatus string

const (
	SwipeLike    SwipeStatus = "LIKE"
	SwipeDislike SwipeStatus = "DISLIKE"
)

// SwipeRequest is the request body for POST /swipes/. Both ids are user
// ids, not profile ids.
type SwipeRequest struct {
	SwiperID int64       `json:"swiper_id"`
	TargetID int64       `json:"target_id"`
	Status   SwipeStatus `json:"status"`
}

// SwipeResponse is returned synchronously by the swipe endpoint. The
// backend is the sole source of truth for whether a swipe produced a
// mutual match.
type SwipeResponse struct {
	MatchFound *bool  `json:"match_found"`
	NewMatchID *int64 `json:"new_match_id"`
}

// Matched reports whether the backend confirmed a mutual match.
func (r SwipeResponse) Matched() bool {
	return r.MatchFound != nil && *r.MatchFound
}
