package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
	"github.com/venha/invitations-api/internal/pkg/metrics"
)

var errNoRecipient = errors.New("host has no email address")

// RSVPNotifier emails hosts about RSVP activity. Delivery is best effort: a
// failed send is logged and reported as false, never returned as an error.
//
// Bodies are assembled from stored fields without HTML escaping; free text is
// validated upstream.
type RSVPNotifier struct {
	sender ports.MailSender
	from   string
	log    zerolog.Logger
}

// NewRSVPNotifier returns a notifier sending from the given address.
func NewRSVPNotifier(sender ports.MailSender, from string, log zerolog.Logger) *RSVPNotifier {
	return &RSVPNotifier{sender: sender, from: from, log: log}
}

// NotifyCreated tells the host a guest confirmed attendance.
func (n *RSVPNotifier) NotifyCreated(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee) bool {
	var b strings.Builder
	b.WriteString("<h2>Nova Confirmação de Presença!</h2>\n")
	fmt.Fprintf(&b, "<p><strong>%s</strong> confirmou presença no seu evento: <strong>%s</strong></p>\n", attendee.Name, event.Title)
	b.WriteString("<h3>Detalhes:</h3>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Adultos: %d</li>\n", attendee.NumAdults)
	fmt.Fprintf(&b, "<li>Crianças: %d</li>\n", attendee.NumChildren)
	fmt.Fprintf(&b, "<li>WhatsApp: %s</li>\n", attendee.WhatsAppNumber)
	if attendee.Comments != "" {
		fmt.Fprintf(&b, "<li>Comentários: %s</li>\n", attendee.Comments)
	}
	b.WriteString("</ul>\n<p>Veja todos os convidados no seu painel.</p>\n")

	return n.dispatch(ctx, "created", host, "Novo RSVP para "+event.Title, b.String())
}

// NotifyModified tells the host a guest changed their RSVP. The body shows the
// RSVP's current state; changes is only logged.
func (n *RSVPNotifier) NotifyModified(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee, changes map[string]any) bool {
	var b strings.Builder
	b.WriteString("<h2>RSVP Modificado</h2>\n")
	fmt.Fprintf(&b, "<p><strong>%s</strong> modificou a confirmação para: <strong>%s</strong></p>\n", attendee.Name, event.Title)
	b.WriteString("<h3>Detalhes Atualizados:</h3>\n<ul>\n")
	fmt.Fprintf(&b, "<li>Adultos: %d</li>\n", attendee.NumAdults)
	fmt.Fprintf(&b, "<li>Crianças: %d</li>\n", attendee.NumChildren)
	fmt.Fprintf(&b, "<li>Comentários: %s</li>\n", attendee.Comments)
	b.WriteString("</ul>\n")

	n.log.Debug().Interface("changes", changes).Str("attendee_id", attendee.ID).Msg("rsvp changes")
	return n.dispatch(ctx, "modified", host, "RSVP Modificado - "+event.Title, b.String())
}

// NotifyCancelled tells the host a guest cancelled, including the reason when given.
func (n *RSVPNotifier) NotifyCancelled(ctx context.Context, event *domain.Event, host *domain.Host, attendee *domain.Attendee, reason string) bool {
	var b strings.Builder
	b.WriteString("<h2>RSVP Cancelado</h2>\n")
	fmt.Fprintf(&b, "<p><strong>%s</strong> cancelou a presença em: <strong>%s</strong></p>\n", attendee.Name, event.Title)
	if reason != "" {
		fmt.Fprintf(&b, "<p><strong>Motivo:</strong> %s</p>\n", reason)
	}

	return n.dispatch(ctx, "cancelled", host, "RSVP Cancelado - "+event.Title, b.String())
}

func (n *RSVPNotifier) dispatch(ctx context.Context, kind string, host *domain.Host, subject, html string) bool {
	if host == nil || host.Email == "" {
		return n.failed(kind, errNoRecipient, "")
	}

	err := n.sender.Send(ctx, domain.Email{
		From:        n.from,
		To:          host.Email,
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return n.failed(kind, err, host.Email)
	}

	metrics.NotificationsTotal.WithLabelValues(kind, metrics.ResultSuccess).Inc()
	n.log.Info().Str("kind", kind).Str("to", host.Email).Msg("rsvp notification sent")
	return true
}

func (n *RSVPNotifier) failed(kind string, err error, to string) bool {
	metrics.NotificationsTotal.WithLabelValues(kind, metrics.ResultFailure).Inc()
	n.log.Error().Err(err).Str("kind", kind).Str("to", to).Msg("failed to send rsvp notification")
	return false
}
