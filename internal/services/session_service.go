package services

import (
	"context"
	"time"

	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/models"
)

// SessionService drives the per-visitor selection state.
type SessionService interface {
	// Create starts a session on the default site with the building section shown.
	Create(ctx context.Context) (Session, error)

	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id string) (Session, error)

	// SelectSite returns ErrSiteNotFound for an unknown site and leaves the session unchanged.
	SelectSite(ctx context.Context, id, site string) (Session, error)

	// SelectSection returns ErrInvalidSection for an unknown section.
	SelectSection(ctx context.Context, id string, section models.Section) (Session, error)

	// SelectUnit sets the flat and the flat section together. It returns
	// ErrFlatNotFound when the active site has no such flat.
	SelectUnit(ctx context.Context, id, flatNumber string) (Session, error)

	// ExpireIdle removes sessions idle for longer than ttl.
	ExpireIdle(ctx context.Context, ttl time.Duration) int
}

type sessionService struct {
	sites SiteLookup
	store *SessionStore
	log   *logger.Logger
}

// NewSessionService creates a SessionService backed by store.
func NewSessionService(sites SiteLookup, store *SessionStore, log *logger.Logger) SessionService {
	return &sessionService{
		sites: sites,
		store: store,
		log:   log,
	}
}

func (s *sessionService) Create(ctx context.Context) (Session, error) {
	session := s.store.Create(InitialSelection(s.sites), InitialCapture())
	s.log.Info("Session created", logger.Fields{
		"session_id": session.ID,
		"site":       session.Selection.Site,
	})
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, id string) (Session, error) {
	return s.store.Get(id)
}

func (s *sessionService) SelectSite(ctx context.Context, id, site string) (Session, error) {
	session, err := s.store.Update(id, func(current Session) (Session, error) {
		selection, err := SelectSite(s.sites, current.Selection, site)
		if err != nil {
			return current, err
		}
		current.Selection = selection
		return current, nil
	})
	if err != nil {
		s.log.Warn("Site selection rejected", logger.Fields{
			"session_id": id,
			"site":       site,
			"error":      err.Error(),
		})
		return Session{}, err
	}

	s.log.Debug("Site selected", logger.Fields{
		"session_id": id,
		"site":       site,
		"flat":       session.Selection.FlatNumber(),
	})
	return session, nil
}

func (s *sessionService) SelectSection(ctx context.Context, id string, section models.Section) (Session, error) {
	session, err := s.store.Update(id, func(current Session) (Session, error) {
		selection, err := SelectSection(current.Selection, section)
		if err != nil {
			return current, err
		}
		current.Selection = selection
		return current, nil
	})
	if err != nil {
		return Session{}, err
	}

	s.log.Debug("Section selected", logger.Fields{
		"session_id": id,
		"section":    string(section),
	})
	return session, nil
}

func (s *sessionService) SelectUnit(ctx context.Context, id, flatNumber string) (Session, error) {
	session, err := s.store.Update(id, func(current Session) (Session, error) {
		selection, err := SelectUnit(s.sites, current.Selection, flatNumber)
		if err != nil {
			return current, err
		}
		current.Selection = selection
		return current, nil
	})
	if err != nil {
		s.log.Warn("Unit selection rejected", logger.Fields{
			"session_id": id,
			"flat":       flatNumber,
			"error":      err.Error(),
		})
		return Session{}, err
	}

	s.log.Debug("Unit selected", logger.Fields{
		"session_id": id,
		"site":       session.Selection.Site,
		"flat":       flatNumber,
	})
	return session, nil
}

func (s *sessionService) ExpireIdle(ctx context.Context, ttl time.Duration) int {
	removed := s.store.Expire(s.store.now().Add(-ttl))
	if removed > 0 {
		s.log.Info("Expired idle sessions", logger.Fields{
			"removed":   removed,
			"remaining": s.store.Len(),
		})
	}
	return removed
}
