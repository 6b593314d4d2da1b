package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
)

var fixedNow = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newEventSvc(events *stubEventRepo, attendees *stubAttendeeRepo, geo *stubGeocoder) ports.EventService {
	return NewEventService(events, attendees, geo, clockwork.NewFakeClockAt(fixedNow), zerolog.Nop())
}

func createInput() ports.CreateEventInput {
	return ports.CreateEventInput{
		HostID:             "host-1",
		Title:              "Aniversário da Ana",
		EventDate:          time.Date(2026, time.May, 2, 0, 0, 0, 0, time.UTC),
		StartTime:          "18:30",
		AddressFull:        rioAddress,
		AllowModifications: true,
		AllowCancellations: true,
	}
}

func TestEventService_CreateEvent_GeocodesAfterInsert(t *testing.T) {
	events := newStubEventRepo()
	geo := &stubGeocoder{coords: domain.Coordinates{Lat: -22.9, Lng: -43.2}, ok: true}
	svc := newEventSvc(events, newStubAttendeeRepo(), geo)

	event, err := svc.CreateEvent(context.Background(), createInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(event.Slug) != 8 {
		t.Errorf("expected 8-char slug, got %q", event.Slug)
	}
	if !event.CreatedAt.Equal(fixedNow) {
		t.Errorf("expected CreatedAt from clock, got %v", event.CreatedAt)
	}
	if len(geo.addresses) != 1 || geo.addresses[0] != rioAddress {
		t.Fatalf("expected address to be geocoded once, got %v", geo.addresses)
	}
	if event.Location == nil || event.Location.Lat != -22.9 {
		t.Fatalf("expected location on returned event, got %+v", event.Location)
	}
	stored := events.bySlug[event.Slug]
	if stored.Location == nil {
		t.Fatal("expected location to be persisted")
	}
}

func TestEventService_CreateEvent_GeocodeMissKeepsEvent(t *testing.T) {
	events := newStubEventRepo()
	svc := newEventSvc(events, newStubAttendeeRepo(), &stubGeocoder{ok: false})

	event, err := svc.CreateEvent(context.Background(), createInput())
	if err != nil {
		t.Fatalf("geocoding miss must not fail creation: %v", err)
	}
	if event.Location != nil {
		t.Fatalf("expected no location, got %+v", event.Location)
	}
	if _, ok := events.bySlug[event.Slug]; !ok {
		t.Fatal("event must remain persisted")
	}
}

func TestEventService_CreateEvent_LocationStoreFailureIsNonFatal(t *testing.T) {
	events := newStubEventRepo()
	events.locationErr = errBoom
	svc := newEventSvc(events, newStubAttendeeRepo(), &stubGeocoder{coords: domain.Coordinates{Lat: 1, Lng: 1}, ok: true})

	event, err := svc.CreateEvent(context.Background(), createInput())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if event.Location != nil {
		t.Fatal("location must stay empty when it could not be stored")
	}
}

func TestEventService_CreateEvent_RetriesSlugCollision(t *testing.T) {
	events := newStubEventRepo()
	events.collisions = 2
	svc := newEventSvc(events, newStubAttendeeRepo(), &stubGeocoder{})

	if _, err := svc.CreateEvent(context.Background(), createInput()); err != nil {
		t.Fatalf("expected success after collisions, got %v", err)
	}
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc := newEventSvc(newStubEventRepo(), newStubAttendeeRepo(), &stubGeocoder{})

	in := createInput()
	in.Title = "  "
	if _, err := svc.CreateEvent(context.Background(), in); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestEventService_UpdateEvent_AddressChangeRegeocodes(t *testing.T) {
	events := newStubEventRepo()
	geo := &stubGeocoder{coords: domain.Coordinates{Lat: -23.5, Lng: -46.6}, ok: true}
	svc := newEventSvc(events, newStubAttendeeRepo(), geo)

	event, _ := svc.CreateEvent(context.Background(), createInput())

	newAddr := "Av. Paulista, 1578, Bela Vista, São Paulo - SP, CEP 01310-200, Brasil"
	title := "Festa da Ana"
	updated, err := svc.UpdateEvent(context.Background(), ports.UpdateEventInput{
		HostID:      "host-1",
		Slug:        event.Slug,
		Title:       &title,
		AddressFull: &newAddr,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != title || updated.AddressFull != newAddr {
		t.Fatalf("fields not applied: %+v", updated)
	}
	if len(geo.addresses) != 2 || geo.addresses[1] != newAddr {
		t.Fatalf("expected new address geocoded, got %v", geo.addresses)
	}
}

func TestEventService_UpdateEvent_SameAddressSkipsGeocode(t *testing.T) {
	events := newStubEventRepo()
	geo := &stubGeocoder{coords: domain.Coordinates{Lat: -23.5, Lng: -46.6}, ok: true}
	svc := newEventSvc(events, newStubAttendeeRepo(), geo)

	event, _ := svc.CreateEvent(context.Background(), createInput())
	same := rioAddress
	if _, err := svc.UpdateEvent(context.Background(), ports.UpdateEventInput{HostID: "host-1", Slug: event.Slug, AddressFull: &same}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(geo.addresses) != 1 {
		t.Fatalf("unchanged address must not be geocoded again, got %v", geo.addresses)
	}
}

func TestEventService_UpdateEvent_NotOwner(t *testing.T) {
	events := newStubEventRepo()
	svc := newEventSvc(events, newStubAttendeeRepo(), &stubGeocoder{})

	event, _ := svc.CreateEvent(context.Background(), createInput())
	_, err := svc.UpdateEvent(context.Background(), ports.UpdateEventInput{HostID: "host-2", Slug: event.Slug})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestEventService_GuestList(t *testing.T) {
	events := newStubEventRepo()
	attendees := newStubAttendeeRepo()
	svc := newEventSvc(events, attendees, &stubGeocoder{})

	event, _ := svc.CreateEvent(context.Background(), createInput())
	_ = attendees.Create(context.Background(), &domain.Attendee{EventID: event.ID, WhatsAppNumber: "1", NumAdults: 2, NumChildren: 1, Status: domain.StatusConfirmed})
	_ = attendees.Create(context.Background(), &domain.Attendee{EventID: event.ID, WhatsAppNumber: "2", NumAdults: 1, Status: domain.StatusCancelled})

	list, err := svc.GuestList(context.Background(), "host-1", event.Slug)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list.Attendees) != 2 {
		t.Fatalf("expected 2 attendees, got %d", len(list.Attendees))
	}
	if list.Confirmed.Adults != 2 || list.Confirmed.Children != 1 {
		t.Fatalf("unexpected head count: %+v", list.Confirmed)
	}

	if _, err := svc.GuestList(context.Background(), "host-2", event.Slug); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another host, got %v", err)
	}
}

func TestEventService_GetEvent_NotFound(t *testing.T) {
	svc := newEventSvc(newStubEventRepo(), newStubAttendeeRepo(), &stubGeocoder{})
	if _, err := svc.GetEvent(context.Background(), "missing"); !errors.Is(err, domain.ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
