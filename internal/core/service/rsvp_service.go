package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
	"github.com/venha/invitations-api/internal/pkg/metrics"
)

// RSVPService handles guests' RSVPs. Every state change is committed before
// the host is notified; notification failures never undo the change.
type RSVPService struct {
	events    ports.EventRepository
	attendees ports.AttendeeRepository
	hosts     ports.HostRepository
	notifier  ports.RSVPNotifier
	clock     clockwork.Clock
	logger    zerolog.Logger
}

func NewRSVPService(
	events ports.EventRepository,
	attendees ports.AttendeeRepository,
	hosts ports.HostRepository,
	notifier ports.RSVPNotifier,
	clock clockwork.Clock,
	logger zerolog.Logger,
) *RSVPService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &RSVPService{
		events:    events,
		attendees: attendees,
		hosts:     hosts,
		notifier:  notifier,
		clock:     clock,
		logger:    logger,
	}
}

// CreateRSVP records a guest's confirmation. A WhatsApp number can answer a
// given event only once.
func (s *RSVPService) CreateRSVP(ctx context.Context, input ports.CreateRSVPInput) (*domain.Attendee, error) {
	if input.EventSlug == "" || strings.TrimSpace(input.WhatsAppNumber) == "" || strings.TrimSpace(input.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.NumAdults < 0 || input.NumChildren < 0 {
		return nil, domain.ErrInvalidInput
	}

	event, err := s.events.FindBySlug(ctx, input.EventSlug)
	if err != nil {
		return nil, err
	}

	whatsApp := strings.TrimSpace(input.WhatsAppNumber)
	existing, err := s.attendees.FindByWhatsApp(ctx, event.ID, whatsApp)
	if err == nil && existing != nil {
		return nil, domain.ErrAlreadyRSVPd
	}
	if err != nil && !errors.Is(err, domain.ErrAttendeeNotFound) {
		return nil, fmt.Errorf("create rsvp: %w", err)
	}

	now := s.clock.Now().UTC()
	attendee := &domain.Attendee{
		EventID:        event.ID,
		WhatsAppNumber: whatsApp,
		Name:           strings.TrimSpace(input.Name),
		NumAdults:      input.NumAdults,
		NumChildren:    input.NumChildren,
		Comments:       input.Comments,
		Status:         domain.StatusConfirmed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.attendees.Create(ctx, attendee); err != nil {
		if !errors.Is(err, domain.ErrAlreadyRSVPd) {
			s.logger.Error().Err(err).Str("slug", event.Slug).Msg("failed to create rsvp")
		}
		return nil, err
	}

	metrics.RSVPsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("slug", event.Slug).Str("attendee_id", attendee.ID).Msg("rsvp created")

	if host := s.eventHost(ctx, event); host != nil {
		s.notifier.NotifyCreated(ctx, event, host, attendee)
	}
	return attendee, nil
}

// FindRSVP looks up a guest's RSVP by event slug and WhatsApp number.
func (s *RSVPService) FindRSVP(ctx context.Context, key ports.RSVPKey) (*ports.RSVPDetail, error) {
	event, attendee, err := s.lookup(ctx, key)
	if err != nil {
		return nil, err
	}
	return &ports.RSVPDetail{Attendee: attendee, Event: event}, nil
}

// ModifyRSVP applies a partial update when the event allows modifications.
// A cancelled RSVP is reactivated.
func (s *RSVPService) ModifyRSVP(ctx context.Context, input ports.ModifyRSVPInput) (*domain.Attendee, error) {
	event, err := s.eventFor(ctx, input.RSVPKey)
	if err != nil {
		return nil, err
	}
	if !event.AllowModifications {
		return nil, domain.ErrModificationsNotAllowed
	}

	attendee, err := s.attendees.FindByWhatsApp(ctx, event.ID, strings.TrimSpace(input.WhatsAppNumber))
	if err != nil {
		return nil, err
	}

	changes := make(map[string]any)
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, domain.ErrInvalidInput
		}
		if name != attendee.Name {
			attendee.Name = name
			changes["name"] = name
		}
	}
	if input.NumAdults != nil {
		if *input.NumAdults < 0 {
			return nil, domain.ErrInvalidInput
		}
		if *input.NumAdults != attendee.NumAdults {
			attendee.NumAdults = *input.NumAdults
			changes["num_adults"] = *input.NumAdults
		}
	}
	if input.NumChildren != nil {
		if *input.NumChildren < 0 {
			return nil, domain.ErrInvalidInput
		}
		if *input.NumChildren != attendee.NumChildren {
			attendee.NumChildren = *input.NumChildren
			changes["num_children"] = *input.NumChildren
		}
	}
	if input.Comments != nil && *input.Comments != attendee.Comments {
		attendee.Comments = *input.Comments
		changes["comments"] = *input.Comments
	}

	if attendee.Status != domain.StatusConfirmed {
		if err := attendee.TransitionTo(domain.StatusConfirmed); err != nil {
			return nil, err
		}
		changes["status"] = string(domain.StatusConfirmed)
	}

	attendee.UpdatedAt = s.clock.Now().UTC()
	if err := s.attendees.Update(ctx, attendee); err != nil {
		return nil, fmt.Errorf("modify rsvp: %w", err)
	}

	metrics.RSVPsTotal.WithLabelValues("modified").Inc()
	s.logger.Info().Str("slug", event.Slug).Str("attendee_id", attendee.ID).Int("changes", len(changes)).Msg("rsvp modified")

	if host := s.eventHost(ctx, event); host != nil {
		s.notifier.NotifyModified(ctx, event, host, attendee, changes)
	}
	return attendee, nil
}

// CancelRSVP marks the RSVP cancelled when the event allows cancellations.
// Cancelling an already cancelled RSVP succeeds without notifying the host again.
func (s *RSVPService) CancelRSVP(ctx context.Context, input ports.CancelRSVPInput) error {
	event, err := s.eventFor(ctx, input.RSVPKey)
	if err != nil {
		return err
	}
	if !event.AllowCancellations {
		return domain.ErrCancellationsNotAllowed
	}

	attendee, err := s.attendees.FindByWhatsApp(ctx, event.ID, strings.TrimSpace(input.WhatsAppNumber))
	if err != nil {
		return err
	}
	if attendee.Status == domain.StatusCancelled {
		s.logger.Debug().Str("attendee_id", attendee.ID).Msg("rsvp already cancelled")
		return nil
	}
	if err := attendee.TransitionTo(domain.StatusCancelled); err != nil {
		return err
	}

	attendee.UpdatedAt = s.clock.Now().UTC()
	if err := s.attendees.Update(ctx, attendee); err != nil {
		return fmt.Errorf("cancel rsvp: %w", err)
	}

	metrics.RSVPsTotal.WithLabelValues("cancelled").Inc()
	s.logger.Info().Str("slug", event.Slug).Str("attendee_id", attendee.ID).Msg("rsvp cancelled")

	if host := s.eventHost(ctx, event); host != nil {
		s.notifier.NotifyCancelled(ctx, event, host, attendee, strings.TrimSpace(input.Reason))
	}
	return nil
}

func (s *RSVPService) eventFor(ctx context.Context, key ports.RSVPKey) (*domain.Event, error) {
	if key.EventSlug == "" || strings.TrimSpace(key.WhatsAppNumber) == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.events.FindBySlug(ctx, key.EventSlug)
}

func (s *RSVPService) lookup(ctx context.Context, key ports.RSVPKey) (*domain.Event, *domain.Attendee, error) {
	event, err := s.eventFor(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	attendee, err := s.attendees.FindByWhatsApp(ctx, event.ID, strings.TrimSpace(key.WhatsAppNumber))
	if err != nil {
		return nil, nil, err
	}
	return event, attendee, nil
}

// eventHost loads the notification recipient. A missing host skips the
// notification; the RSVP itself is already committed.
func (s *RSVPService) eventHost(ctx context.Context, event *domain.Event) *domain.Host {
	host, err := s.hosts.FindByID(ctx, event.HostID)
	if err != nil {
		s.logger.Warn().Err(err).Str("slug", event.Slug).Msg("cannot load event host, skipping notification")
		return nil
	}
	return host
}
