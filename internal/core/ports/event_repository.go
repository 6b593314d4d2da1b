package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// EventRepository defines persistence operations for events.
type EventRepository interface {
	// Create inserts the event and sets its ID.
	Create(ctx context.Context, e *domain.Event) error
	FindBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Event, error)
	// Update replaces the mutable fields of the event identified by e.ID.
	Update(ctx context.Context, e *domain.Event) error
	SetLocation(ctx context.Context, eventID string, loc domain.Coordinates) error
}
