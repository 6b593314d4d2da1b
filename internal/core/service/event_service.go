package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
	"github.com/venha/invitations-api/internal/pkg/metrics"
)

const slugAttempts = 3

type eventService struct {
	events    ports.EventRepository
	attendees ports.AttendeeRepository
	geocoder  ports.Geocoder
	clock     clockwork.Clock
	log       zerolog.Logger
}

// NewEventService returns an EventService implementation.
func NewEventService(
	events ports.EventRepository,
	attendees ports.AttendeeRepository,
	geocoder ports.Geocoder,
	clock clockwork.Clock,
	log zerolog.Logger,
) ports.EventService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &eventService{
		events:    events,
		attendees: attendees,
		geocoder:  geocoder,
		clock:     clock,
		log:       log,
	}
}

// CreateEvent persists a new event under a fresh slug, then geocodes its
// address. A geocoding miss leaves the event without a location.
func (s *eventService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	if in.HostID == "" || strings.TrimSpace(in.Title) == "" || in.EventDate.IsZero() {
		return nil, domain.ErrInvalidInput
	}

	now := s.clock.Now().UTC()
	event := &domain.Event{
		HostID:             in.HostID,
		Title:              strings.TrimSpace(in.Title),
		Description:        in.Description,
		EventDate:          in.EventDate,
		StartTime:          in.StartTime,
		AddressFull:        strings.TrimSpace(in.AddressFull),
		AllowModifications: in.AllowModifications,
		AllowCancellations: in.AllowCancellations,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	// 1. Insert under a random slug, retrying on the rare collision.
	var err error
	for range slugAttempts {
		event.Slug = generateSlug()
		if err = s.events.Create(ctx, event); !errors.Is(err, domain.ErrDuplicateSlug) {
			break
		}
	}
	if err != nil {
		s.log.Error().Err(err).Str("host_id", in.HostID).Msg("failed to create event")
		return nil, fmt.Errorf("create event: %w", err)
	}

	metrics.EventsCreatedTotal.Inc()
	s.log.Info().Str("slug", event.Slug).Str("host_id", in.HostID).Msg("event created")

	// 2. Resolve coordinates after the commit (best effort).
	s.locate(ctx, event)

	return event, nil
}

func (s *eventService) GetEvent(ctx context.Context, slug string) (*domain.Event, error) {
	if slug == "" {
		return nil, domain.ErrEventNotFound
	}
	return s.events.FindBySlug(ctx, slug)
}

func (s *eventService) ListHostEvents(ctx context.Context, hostID string) ([]*domain.Event, error) {
	if hostID == "" {
		return nil, domain.ErrForbidden
	}
	return s.events.ListByHost(ctx, hostID)
}

// UpdateEvent applies a partial update. Only the event's host may update it;
// a changed address clears the stored location and is geocoded again.
func (s *eventService) UpdateEvent(ctx context.Context, in ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.ownedEvent(ctx, in.HostID, in.Slug)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		title := strings.TrimSpace(*in.Title)
		if title == "" {
			return nil, domain.ErrInvalidInput
		}
		event.Title = title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.EventDate != nil {
		event.EventDate = *in.EventDate
	}
	if in.StartTime != nil {
		event.StartTime = *in.StartTime
	}
	if in.AllowModifications != nil {
		event.AllowModifications = *in.AllowModifications
	}
	if in.AllowCancellations != nil {
		event.AllowCancellations = *in.AllowCancellations
	}

	addressChanged := false
	if in.AddressFull != nil {
		addr := strings.TrimSpace(*in.AddressFull)
		if addr != event.AddressFull {
			event.AddressFull = addr
			event.Location = nil
			addressChanged = true
		}
	}

	event.UpdatedAt = s.clock.Now().UTC()
	if err := s.events.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	if addressChanged {
		s.locate(ctx, event)
	}
	return event, nil
}

func (s *eventService) GuestList(ctx context.Context, hostID, slug string) (*ports.GuestList, error) {
	event, err := s.ownedEvent(ctx, hostID, slug)
	if err != nil {
		return nil, err
	}

	attendees, err := s.attendees.ListByEvent(ctx, event.ID)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}

	return &ports.GuestList{
		Event:     event,
		Attendees: attendees,
		Confirmed: domain.CountConfirmed(attendees),
	}, nil
}

func (s *eventService) ownedEvent(ctx context.Context, hostID, slug string) (*domain.Event, error) {
	event, err := s.events.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !event.OwnedBy(hostID) {
		return nil, domain.ErrForbidden
	}
	return event, nil
}

// locate geocodes the event address and stores the result. Failures are
// logged only; the event is already committed.
func (s *eventService) locate(ctx context.Context, event *domain.Event) {
	if s.geocoder == nil || event.AddressFull == "" {
		return
	}

	coords, ok := s.geocoder.Geocode(ctx, event.AddressFull)
	if !ok {
		return
	}

	if err := s.events.SetLocation(ctx, event.ID, coords); err != nil {
		s.log.Warn().Err(err).Str("slug", event.Slug).Msg("failed to store event location")
		return
	}
	event.Location = &coords
}

// generateSlug returns an 8-character lowercase hex identifier.
func generateSlug() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("%08x", clockwork.NewRealClock().Now().UnixNano()&0xFFFFFFFF)
	}
	return hex.EncodeToString(b)
}
