package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// CreateRSVPInput carries a guest's answer to an invitation.
type CreateRSVPInput struct {
	EventSlug      string
	WhatsAppNumber string
	Name           string
	NumAdults      int
	NumChildren    int
	Comments       string
}

// RSVPKey identifies a single RSVP: the event plus the guest's WhatsApp number.
type RSVPKey struct {
	EventSlug      string
	WhatsAppNumber string
}

// ModifyRSVPInput carries a partial RSVP update. Nil fields are left untouched.
type ModifyRSVPInput struct {
	RSVPKey
	Name        *string
	NumAdults   *int
	NumChildren *int
	Comments    *string
}

// CancelRSVPInput identifies the RSVP to cancel and an optional reason for the host.
type CancelRSVPInput struct {
	RSVPKey
	Reason string
}

// RSVPDetail is an RSVP together with the event it answers.
type RSVPDetail struct {
	Attendee *domain.Attendee
	Event    *domain.Event
}

// RSVPService defines use-case operations for guests' RSVPs.
type RSVPService interface {
	CreateRSVP(ctx context.Context, input CreateRSVPInput) (*domain.Attendee, error)
	FindRSVP(ctx context.Context, key RSVPKey) (*RSVPDetail, error)
	ModifyRSVP(ctx context.Context, input ModifyRSVPInput) (*domain.Attendee, error)
	CancelRSVP(ctx context.Context, input CancelRSVPInput) error
}
