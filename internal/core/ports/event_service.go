package ports

import (
	"context"
	"time"

	"github.com/venha/invitations-api/internal/core/domain"
)

// CreateEventInput carries all data needed to create a new event.
type CreateEventInput struct {
	HostID             string
	Title              string
	Description        string
	EventDate          time.Time
	StartTime          string
	AddressFull        string
	AllowModifications bool
	AllowCancellations bool
}

// UpdateEventInput carries a partial event update. Nil fields are left untouched.
type UpdateEventInput struct {
	HostID             string
	Slug               string
	Title              *string
	Description        *string
	EventDate          *time.Time
	StartTime          *string
	AddressFull        *string
	AllowModifications *bool
	AllowCancellations *bool
}

// GuestList is the host's view of an event's RSVPs.
type GuestList struct {
	Event     *domain.Event
	Attendees []*domain.Attendee
	Confirmed domain.HeadCount
}

// EventService defines use-case operations for events.
type EventService interface {
	CreateEvent(ctx context.Context, input CreateEventInput) (*domain.Event, error)
	GetEvent(ctx context.Context, slug string) (*domain.Event, error)
	ListHostEvents(ctx context.Context, hostID string) ([]*domain.Event, error)
	UpdateEvent(ctx context.Context, input UpdateEventInput) (*domain.Event, error)
	GuestList(ctx context.Context, hostID, slug string) (*GuestList, error)
}
