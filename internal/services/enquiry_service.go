package services

import (
	"context"
	"fmt"
	"time"

	"github.com/drcity/portal/api/internal/logger"
	"github.com/google/uuid"
)

// Enquiry is a visitor's contact request.
type Enquiry struct {
	Name           string
	Email          string
	Phone          string
	Subject        string
	Message        string
	InterestedFlat string
}

// EnquiryReceipt acknowledges a submitted enquiry.
type EnquiryReceipt struct {
	ID             string    `json:"id"`
	Site           string    `json:"site"`
	InterestedFlat *string   `json:"interestedFlat"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

// EnquiryService accepts enquiries. There is no delivery backend; a submission
// waits for a fixed delay and is acknowledged.
type EnquiryService interface {
	// Submit returns ErrSiteNotFound or ErrInvalidInterestedFlat for bad
	// references, and the context error if ctx ends during the delay.
	Submit(ctx context.Context, site string, enquiry Enquiry) (EnquiryReceipt, error)
}

type enquiryService struct {
	sites SiteLookup
	delay time.Duration
	log   *logger.Logger
	now   func() time.Time
}

// NewEnquiryService creates an EnquiryService with the given artificial delay.
func NewEnquiryService(sites SiteLookup, delay time.Duration, log *logger.Logger) EnquiryService {
	return &enquiryService{
		sites: sites,
		delay: delay,
		log:   log,
		now:   time.Now,
	}
}

func (s *enquiryService) Submit(ctx context.Context, siteName string, enquiry Enquiry) (EnquiryReceipt, error) {
	site, ok := s.sites.Site(siteName)
	if !ok {
		return EnquiryReceipt{}, fmt.Errorf("%w: %q", ErrSiteNotFound, siteName)
	}

	var interested *string
	if enquiry.InterestedFlat != "" {
		if !site.Flats.Has(enquiry.InterestedFlat) {
			return EnquiryReceipt{}, fmt.Errorf("%w: %q", ErrInvalidInterestedFlat, enquiry.InterestedFlat)
		}
		flat := enquiry.InterestedFlat
		interested = &flat
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			s.log.Warn("Enquiry submission cancelled", logger.Fields{
				"site":  siteName,
				"error": ctx.Err().Error(),
			})
			return EnquiryReceipt{}, fmt.Errorf("enquiry submission cancelled: %w", ctx.Err())
		case <-timer.C:
		}
	}

	receipt := EnquiryReceipt{
		ID:             uuid.NewString(),
		Site:           siteName,
		InterestedFlat: interested,
		SubmittedAt:    s.now().UTC(),
	}

	// Contact details stay out of the log.
	s.log.Info("Enquiry accepted", logger.Fields{
		"enquiry_id":      receipt.ID,
		"site":            siteName,
		"interested_flat": enquiry.InterestedFlat,
		"subject":         enquiry.Subject,
	})
	return receipt, nil
}
