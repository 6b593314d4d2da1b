package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// AttendeeRepository defines persistence operations for RSVPs.
type AttendeeRepository interface {
	// Create inserts a new RSVP. It returns domain.ErrAlreadyRSVPd when the
	// WhatsApp number already answered for the event.
	Create(ctx context.Context, a *domain.Attendee) error
	FindByWhatsApp(ctx context.Context, eventID, whatsAppNumber string) (*domain.Attendee, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Attendee, error)
	Update(ctx context.Context, a *domain.Attendee) error
}
