package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// MailSender delivers a single email through the configured provider.
type MailSender interface {
	Send(ctx context.Context, msg domain.Email) error
}

// RSVPNotifier tells a host about RSVP activity on one of their events.
// Each method reports whether the provider accepted the message.
type RSVPNotifier interface {
	NotifyCreated(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee) bool
	NotifyModified(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee, changes map[string]any) bool
	NotifyCancelled(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee, reason string) bool
}
