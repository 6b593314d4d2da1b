package handler

import (
	"time"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// --- Request → Service input ---

func toCreateEventInput(req createEventRequest, hostID string) (ports.CreateEventInput, error) {
	date, err := time.Parse(dateLayout, req.EventDate)
	if err != nil {
		return ports.CreateEventInput{}, err
	}
	return ports.CreateEventInput{
		HostID:             hostID,
		Title:              req.Title,
		Description:        req.Description,
		EventDate:          date,
		StartTime:          req.StartTime,
		AddressFull:        req.AddressFull,
		AllowModifications: boolOr(req.AllowModifications, true),
		AllowCancellations: boolOr(req.AllowCancellations, true),
	}, nil
}

func toUpdateEventInput(req updateEventRequest, hostID, slug string) (ports.UpdateEventInput, error) {
	in := ports.UpdateEventInput{
		HostID:             hostID,
		Slug:               slug,
		Title:              req.Title,
		Description:        req.Description,
		StartTime:          req.StartTime,
		AddressFull:        req.AddressFull,
		AllowModifications: req.AllowModifications,
		AllowCancellations: req.AllowCancellations,
	}
	if req.EventDate != nil {
		date, err := time.Parse(dateLayout, *req.EventDate)
		if err != nil {
			return ports.UpdateEventInput{}, err
		}
		in.EventDate = &date
	}
	return in, nil
}

func toCreateRSVPInput(req createRSVPRequest) ports.CreateRSVPInput {
	in := ports.CreateRSVPInput{
		EventSlug:      req.EventSlug,
		WhatsAppNumber: req.WhatsAppNumber,
		Name:           req.Name,
		Comments:       req.Comments,
	}
	if req.NumAdults != nil {
		in.NumAdults = *req.NumAdults
	}
	if req.NumChildren != nil {
		in.NumChildren = *req.NumChildren
	}
	return in
}

func (r rsvpKeyRequest) key() ports.RSVPKey {
	return ports.RSVPKey{EventSlug: r.EventSlug, WhatsAppNumber: r.WhatsAppNumber}
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}

// --- Domain → HTTP response ---

func toHostResponse(h *domain.Host) *hostResponse {
	if h == nil {
		return nil
	}
	return &hostResponse{
		ID:             h.ID,
		Email:          h.Email,
		Name:           h.Name,
		WhatsAppNumber: h.WhatsAppNumber,
		CreatedAt:      h.CreatedAt.UTC(),
	}
}

func toEventResponse(e *domain.Event) eventResponse {
	resp := eventResponse{
		ID:                 e.ID,
		Slug:               e.Slug,
		Title:              e.Title,
		Description:        e.Description,
		EventDate:          e.EventDate.Format(dateLayout),
		StartTime:          e.StartTime,
		AddressFull:        e.AddressFull,
		AllowModifications: e.AllowModifications,
		AllowCancellations: e.AllowCancellations,
		CreatedAt:          e.CreatedAt.UTC(),
	}
	if e.Location != nil {
		lat, lng := e.Location.Lat, e.Location.Lng
		resp.Latitude = &lat
		resp.Longitude = &lng
	}
	return resp
}

func toEventResponses(events []*domain.Event) []eventResponse {
	out := make([]eventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, toEventResponse(e))
	}
	return out
}

func toAttendeeResponse(a *domain.Attendee) attendeeResponse {
	return attendeeResponse{
		ID:             a.ID,
		Name:           a.Name,
		WhatsAppNumber: a.WhatsAppNumber,
		NumAdults:      a.NumAdults,
		NumChildren:    a.NumChildren,
		Comments:       a.Comments,
		Status:         string(a.Status),
		CreatedAt:      a.CreatedAt.UTC(),
	}
}

func toGuestListResponse(g *ports.GuestList) guestListResponse {
	attendees := make([]attendeeResponse, 0, len(g.Attendees))
	for _, a := range g.Attendees {
		attendees = append(attendees, toAttendeeResponse(a))
	}
	return guestListResponse{
		Event:     toEventResponse(g.Event),
		Attendees: attendees,
		Totals: totalsResponse{
			ConfirmedAdults:   g.Confirmed.Adults,
			ConfirmedChildren: g.Confirmed.Children,
			Responses:         len(g.Attendees),
		},
	}
}

func toFindRSVPResponse(d *ports.RSVPDetail) findRSVPResponse {
	return findRSVPResponse{
		Attendee: toAttendeeResponse(d.Attendee),
		Event: rsvpEventSummary{
			Title:              d.Event.Title,
			EventDate:          d.Event.EventDate.Format(dateLayout),
			AllowModifications: d.Event.AllowModifications,
			AllowCancellations: d.Event.AllowCancellations,
		},
	}
}
