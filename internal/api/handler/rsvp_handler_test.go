package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
)

func TestRSVPHandler_Create_Success(t *testing.T) {
	stub := &stubRSVPService{
		createFn: func(ctx context.Context, in ports.CreateRSVPInput) (*domain.Attendee, error) {
			if in.EventSlug != "a1b2c3d4" || in.NumAdults != 2 || in.NumChildren != 0 || in.Comments != "" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Attendee{ID: "att-1"}, nil
		},
	}
	handler := NewRSVPHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/attendees/rsvp",
		`{"event_slug":"a1b2c3d4","whatsapp_number":"5521988887777","name":"Maria","num_adults":2}`)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createRSVPResponse
	decode(t, rec, &resp)
	if resp.AttendeeID != "att-1" || resp.Message != "RSVP successful" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRSVPHandler_Create_ZeroAdultsIsValid(t *testing.T) {
	stub := &stubRSVPService{
		createFn: func(ctx context.Context, in ports.CreateRSVPInput) (*domain.Attendee, error) {
			return &domain.Attendee{ID: "att-1"}, nil
		},
	}
	handler := NewRSVPHandler(stub)

	c, _ := newContext(http.MethodPost, "/api/attendees/rsvp",
		`{"event_slug":"s","whatsapp_number":"1","name":"M","num_adults":0,"num_children":2}`)
	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestRSVPHandler_Create_MissingFields(t *testing.T) {
	handler := NewRSVPHandler(&stubRSVPService{})

	for _, body := range []string{
		`{"whatsapp_number":"1","name":"M","num_adults":1}`,
		`{"event_slug":"s","name":"M","num_adults":1}`,
		`{"event_slug":"s","whatsapp_number":"1","num_adults":1}`,
		`{"event_slug":"s","whatsapp_number":"1","name":"M"}`,
		`{"event_slug":"s","whatsapp_number":"1","name":"M","num_adults":-1}`,
	} {
		c, _ := newContext(http.MethodPost, "/api/attendees/rsvp", body)
		if code := httpCode(handler.Create(c)); code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, code)
		}
	}
}

func TestRSVPHandler_Create_Duplicate(t *testing.T) {
	stub := &stubRSVPService{
		createFn: func(ctx context.Context, in ports.CreateRSVPInput) (*domain.Attendee, error) {
			return nil, domain.ErrAlreadyRSVPd
		},
	}
	handler := NewRSVPHandler(stub)

	c, _ := newContext(http.MethodPost, "/api/attendees/rsvp",
		`{"event_slug":"s","whatsapp_number":"1","name":"M","num_adults":1}`)
	if err := handler.Create(c); !errors.Is(err, domain.ErrAlreadyRSVPd) {
		t.Fatalf("expected ErrAlreadyRSVPd, got %v", err)
	}
}

func TestRSVPHandler_Find(t *testing.T) {
	stub := &stubRSVPService{
		findFn: func(ctx context.Context, key ports.RSVPKey) (*ports.RSVPDetail, error) {
			if key.EventSlug != "s" || key.WhatsAppNumber != "1" {
				t.Fatalf("unexpected key: %+v", key)
			}
			return &ports.RSVPDetail{
				Attendee: &domain.Attendee{ID: "att-1", Name: "Maria", Status: domain.StatusConfirmed},
				Event: &domain.Event{
					Title:              "Churrasco",
					EventDate:          time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC),
					AllowCancellations: true,
				},
			}, nil
		},
	}
	handler := NewRSVPHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/attendees/find", `{"event_slug":"s","whatsapp_number":"1"}`)
	if err := handler.Find(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp findRSVPResponse
	decode(t, rec, &resp)
	if resp.Attendee.Name != "Maria" || resp.Event.EventDate != "2026-06-01" || !resp.Event.AllowCancellations {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRSVPHandler_Modify(t *testing.T) {
	stub := &stubRSVPService{
		modifyFn: func(ctx context.Context, in ports.ModifyRSVPInput) (*domain.Attendee, error) {
			if in.NumAdults == nil || *in.NumAdults != 3 || in.Name != nil || in.Comments == nil {
				t.Fatalf("unexpected patch: %+v", in)
			}
			return &domain.Attendee{ID: "att-1", NumAdults: 3, Status: domain.StatusConfirmed}, nil
		},
	}
	handler := NewRSVPHandler(stub)

	c, rec := newContext(http.MethodPut, "/api/attendees/modify",
		`{"event_slug":"s","whatsapp_number":"1","num_adults":3,"comments":""}`)
	if err := handler.Modify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp modifyRSVPResponse
	decode(t, rec, &resp)
	if resp.Attendee.NumAdults != 3 || resp.Message != "RSVP updated successfully" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRSVPHandler_Modify_NotAllowed(t *testing.T) {
	stub := &stubRSVPService{
		modifyFn: func(ctx context.Context, in ports.ModifyRSVPInput) (*domain.Attendee, error) {
			return nil, domain.ErrModificationsNotAllowed
		},
	}
	handler := NewRSVPHandler(stub)

	c, _ := newContext(http.MethodPut, "/api/attendees/modify", `{"event_slug":"s","whatsapp_number":"1"}`)
	if err := handler.Modify(c); !errors.Is(err, domain.ErrModificationsNotAllowed) {
		t.Fatalf("expected ErrModificationsNotAllowed, got %v", err)
	}
}

func TestRSVPHandler_Cancel(t *testing.T) {
	var got ports.CancelRSVPInput
	stub := &stubRSVPService{
		cancelFn: func(ctx context.Context, in ports.CancelRSVPInput) error {
			got = in
			return nil
		},
	}
	handler := NewRSVPHandler(stub)

	c, rec := newContext(http.MethodPost, "/api/attendees/cancel",
		`{"event_slug":"s","whatsapp_number":"1","reason":"viagem"}`)
	if err := handler.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Reason != "viagem" || got.EventSlug != "s" {
		t.Fatalf("unexpected input: %+v", got)
	}
}

func TestRSVPHandler_Cancel_MissingKey(t *testing.T) {
	handler := NewRSVPHandler(&stubRSVPService{})

	c, _ := newContext(http.MethodPost, "/api/attendees/cancel", `{"event_slug":"s"}`)
	if code := httpCode(handler.Cancel(c)); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}
