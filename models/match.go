package models

// UserMatch is one confirmed mutual match as returned by
// GET /users/{id}/matches/. MatchedUser carries the counterpart's user
// record including its profile reference, which the messaging flow uses
// to hydrate the full profile.
type UserMatch struct {
	MatchID     *int64   `json:"match_id"`
	MatchedUser *UserDTO `json:"matched_user"`
	MatchedOn   *string  `json:"matched_on"`
}
