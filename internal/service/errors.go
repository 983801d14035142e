package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrMissingUserID    = errors.New("server response carried no user id")
	ErrNoSavedSession   = errors.New("no saved session")

	ErrNoProfileID          = errors.New("no backend profile id for current user")
	ErrMissingStudyLocation = errors.New("no study location selected")
	ErrUnresolvedReference  = errors.New("could not resolve reference")

	ErrNoCandidates = errors.New("candidate queue is empty")
)
