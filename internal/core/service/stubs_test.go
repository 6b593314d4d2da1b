package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/venha/invitations-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubHostRepo struct {
	byID map[string]*domain.Host
	seq  int
}

func newStubHostRepo() *stubHostRepo {
	return &stubHostRepo{byID: make(map[string]*domain.Host)}
}

func (r *stubHostRepo) Create(_ context.Context, h *domain.Host) (*domain.Host, error) {
	for _, existing := range r.byID {
		if existing.Email == h.Email {
			return nil, domain.ErrHostExists
		}
	}
	r.seq++
	clone := *h
	clone.ID = fmt.Sprintf("host-%d", r.seq)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubHostRepo) FindByEmail(_ context.Context, email string) (*domain.Host, error) {
	for _, h := range r.byID {
		if h.Email == email {
			clone := *h
			return &clone, nil
		}
	}
	return nil, domain.ErrHostNotFound
}

func (r *stubHostRepo) FindByID(_ context.Context, id string) (*domain.Host, error) {
	h, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrHostNotFound
	}
	clone := *h
	return &clone, nil
}

type stubEventRepo struct {
	bySlug      map[string]*domain.Event
	createErr   error
	collisions  int // number of Create calls answering ErrDuplicateSlug first
	locationErr error
	seq         int
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{bySlug: make(map[string]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) error {
	if r.createErr != nil {
		return r.createErr
	}
	if r.collisions > 0 {
		r.collisions--
		return domain.ErrDuplicateSlug
	}
	r.seq++
	e.ID = fmt.Sprintf("event-%d", r.seq)
	clone := *e
	r.bySlug[e.Slug] = &clone
	return nil
}

func (r *stubEventRepo) FindBySlug(_ context.Context, slug string) (*domain.Event, error) {
	e, ok := r.bySlug[slug]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) ListByHost(_ context.Context, hostID string) ([]*domain.Event, error) {
	var out []*domain.Event
	for _, e := range r.bySlug {
		if e.HostID == hostID {
			clone := *e
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubEventRepo) Update(_ context.Context, e *domain.Event) error {
	if _, ok := r.bySlug[e.Slug]; !ok {
		return domain.ErrEventNotFound
	}
	clone := *e
	r.bySlug[e.Slug] = &clone
	return nil
}

func (r *stubEventRepo) SetLocation(_ context.Context, eventID string, loc domain.Coordinates) error {
	if r.locationErr != nil {
		return r.locationErr
	}
	for _, e := range r.bySlug {
		if e.ID == eventID {
			l := loc
			e.Location = &l
			return nil
		}
	}
	return domain.ErrEventNotFound
}

type stubAttendeeRepo struct {
	byKey     map[string]*domain.Attendee // event_id|whatsapp
	findErr   error
	updateErr error
	updates   int
	seq       int
}

func newStubAttendeeRepo() *stubAttendeeRepo {
	return &stubAttendeeRepo{byKey: make(map[string]*domain.Attendee)}
}

func attendeeKey(eventID, whatsApp string) string { return eventID + "|" + whatsApp }

func (r *stubAttendeeRepo) Create(_ context.Context, a *domain.Attendee) error {
	k := attendeeKey(a.EventID, a.WhatsAppNumber)
	if _, ok := r.byKey[k]; ok {
		return domain.ErrAlreadyRSVPd
	}
	r.seq++
	a.ID = fmt.Sprintf("attendee-%d", r.seq)
	clone := *a
	r.byKey[k] = &clone
	return nil
}

func (r *stubAttendeeRepo) FindByWhatsApp(_ context.Context, eventID, whatsApp string) (*domain.Attendee, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.byKey[attendeeKey(eventID, whatsApp)]
	if !ok {
		return nil, domain.ErrAttendeeNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAttendeeRepo) ListByEvent(_ context.Context, eventID string) ([]*domain.Attendee, error) {
	var out []*domain.Attendee
	for _, a := range r.byKey {
		if a.EventID == eventID {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAttendeeRepo) Update(_ context.Context, a *domain.Attendee) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	k := attendeeKey(a.EventID, a.WhatsAppNumber)
	if _, ok := r.byKey[k]; !ok {
		return domain.ErrAttendeeNotFound
	}
	r.updates++
	clone := *a
	r.byKey[k] = &clone
	return nil
}

// ---------------------------------------------------------------------------
// Collaborator stubs
// ---------------------------------------------------------------------------

type stubMailSender struct {
	err  error
	sent []domain.Email
}

func (s *stubMailSender) Send(_ context.Context, msg domain.Email) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, msg)
	return nil
}

type notification struct {
	kind    string
	to      string
	changes map[string]any
	reason  string
}

type stubNotifier struct {
	calls []notification
}

func (n *stubNotifier) NotifyCreated(_ context.Context, _ *domain.Event, host *domain.Host, _ *domain.Attendee) bool {
	n.calls = append(n.calls, notification{kind: "created", to: host.Email})
	return true
}

func (n *stubNotifier) NotifyModified(_ context.Context, _ *domain.Event, host *domain.Host, _ *domain.Attendee, changes map[string]any) bool {
	n.calls = append(n.calls, notification{kind: "modified", to: host.Email, changes: changes})
	return true
}

func (n *stubNotifier) NotifyCancelled(_ context.Context, _ *domain.Event, host *domain.Host, _ *domain.Attendee, reason string) bool {
	n.calls = append(n.calls, notification{kind: "cancelled", to: host.Email, reason: reason})
	return false
}

type stubProvider struct {
	name      string
	available bool
	coords    domain.Coordinates
	err       error
	queries   []string
}

func (p *stubProvider) Name() string    { return p.name }
func (p *stubProvider) Available() bool { return p.available }

func (p *stubProvider) Resolve(_ context.Context, query string) (domain.Coordinates, error) {
	p.queries = append(p.queries, query)
	return p.coords, p.err
}

type stubGeocoder struct {
	coords    domain.Coordinates
	ok        bool
	addresses []string
}

func (g *stubGeocoder) Geocode(_ context.Context, address string) (domain.Coordinates, bool) {
	g.addresses = append(g.addresses, address)
	return g.coords, g.ok
}

var errBoom = errors.New("boom")
