package service

import (
	"github.com/MKhiriev/study-buddy/internal/adapter"
	"github.com/MKhiriev/study-buddy/internal/logger"
)

type ClientServices struct {
	Session  SessionService
	Matching MatchingService
}

func NewClientServices(serverAPI adapter.ServerAPI, identity IdentityStore, log *logger.Logger) *ClientServices {
	if log == nil {
		log = logger.Nop()
	}
	sessionSvc := NewSessionService(serverAPI, identity, log.GetChildLogger())

	return &ClientServices{
		Session:  sessionSvc,
		Matching: NewMatchingService(serverAPI, sessionSvc, log.GetChildLogger()),
	}
}
