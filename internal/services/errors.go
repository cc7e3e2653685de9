package services

import "errors"

// Service-level errors. Handlers map these to HTTP responses with errors.Is.
var (
	ErrSiteNotFound          = errors.New("site not found")
	ErrFlatNotFound          = errors.New("flat not found")
	ErrSessionNotFound       = errors.New("session not found")
	ErrInvalidSection        = errors.New("invalid section")
	ErrInvalidCategory       = errors.New("invalid gallery category")
	ErrInvalidTab            = errors.New("invalid capture tab")
	ErrWrongTab              = errors.New("operation not available on the current capture tab")
	ErrHotspotNotFound       = errors.New("hotspot not found")
	ErrInvalidInterestedFlat = errors.New("interested flat is not part of the site")
)
