package services

import (
	"context"

	"github.com/drcity/portal/api/internal/logger"
	"github.com/drcity/portal/api/internal/models"
)

// CaptureService drives the coordinate capture page of a session.
type CaptureService interface {
	Hotspots(ctx context.Context) []models.Hotspot
	State(ctx context.Context, id string) (models.CaptureState, error)
	SelectTab(ctx context.Context, id string, tab models.CaptureTab) (models.CaptureState, error)
	ResetView(ctx context.Context, id string) (models.CaptureState, error)
	JumpToHotspot(ctx context.Context, id, label string) (models.CaptureState, error)
	CaptureCamera(ctx context.Context, id string, view models.CameraView) (models.CaptureState, models.CaptureMessage, error)
	CapturePoint(ctx context.Context, id string, point *models.Vec3) (models.CaptureState, models.CaptureMessage, error)
}

type captureService struct {
	store *SessionStore
	log   *logger.Logger
}

// NewCaptureService creates a CaptureService that keeps its state in store.
func NewCaptureService(store *SessionStore, log *logger.Logger) CaptureService {
	return &captureService{store: store, log: log}
}

func (s *captureService) Hotspots(ctx context.Context) []models.Hotspot {
	return Hotspots()
}

func (s *captureService) State(ctx context.Context, id string) (models.CaptureState, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return models.CaptureState{}, err
	}
	return session.Capture, nil
}

// transition applies fn to the capture state of session id.
func (s *captureService) transition(id string, fn func(models.CaptureState) (models.CaptureState, error)) (models.CaptureState, error) {
	session, err := s.store.Update(id, func(current Session) (Session, error) {
		capture, err := fn(current.Capture)
		if err != nil {
			return current, err
		}
		current.Capture = capture
		return current, nil
	})
	if err != nil {
		return models.CaptureState{}, err
	}
	return session.Capture, nil
}

func (s *captureService) SelectTab(ctx context.Context, id string, tab models.CaptureTab) (models.CaptureState, error) {
	return s.transition(id, func(current models.CaptureState) (models.CaptureState, error) {
		return SelectTab(current, tab)
	})
}

func (s *captureService) ResetView(ctx context.Context, id string) (models.CaptureState, error) {
	return s.transition(id, func(current models.CaptureState) (models.CaptureState, error) {
		return ResetView(current), nil
	})
}

func (s *captureService) JumpToHotspot(ctx context.Context, id, label string) (models.CaptureState, error) {
	state, err := s.transition(id, func(current models.CaptureState) (models.CaptureState, error) {
		return JumpToHotspot(current, label)
	})
	if err == nil {
		s.log.Debug("Camera moved to hotspot", logger.Fields{
			"session_id": id,
			"hotspot":    label,
		})
	}
	return state, err
}

func (s *captureService) CaptureCamera(ctx context.Context, id string, view models.CameraView) (models.CaptureState, models.CaptureMessage, error) {
	var message models.CaptureMessage
	state, err := s.transition(id, func(current models.CaptureState) (models.CaptureState, error) {
		next, msg, err := CaptureCamera(current, view)
		message = msg
		return next, err
	})
	if err != nil {
		return models.CaptureState{}, models.CaptureMessage{}, err
	}

	s.log.Info("Camera view captured", logger.Fields{
		"session_id": id,
		"view":       message.ContentToCopy,
	})
	return state, message, nil
}

func (s *captureService) CapturePoint(ctx context.Context, id string, point *models.Vec3) (models.CaptureState, models.CaptureMessage, error) {
	session, err := s.store.Get(id)
	if err != nil {
		return models.CaptureState{}, models.CaptureMessage{}, err
	}

	message, err := CapturePoint(session.Capture, point)
	if err != nil {
		return models.CaptureState{}, models.CaptureMessage{}, err
	}

	s.log.Info("Click point captured", logger.Fields{
		"session_id": id,
		"hit":        point != nil,
		"point":      message.ContentToCopy,
	})
	return session.Capture, message, nil
}
