package models

// SignupResult carries the outcome of a signup call. UserID is the
// resolved numeric id (top-level "id" field preferred over the decoded
// user, which may hold a string id); nil when the backend returned
// neither. User is nil when the body could not be decoded at all.
type SignupResult struct {
	UserID *int64
	User   *SignupUser
	Status int
}

// LoginResult carries the outcome of a login lookup. UserID resolution
// follows the same preference order as SignupResult.
type LoginResult struct {
	UserID *int64
	User   *LoginUser
	Status int
}
