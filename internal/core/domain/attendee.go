package domain

import (
	"errors"
	"fmt"
	"time"
)

// AttendeeStatus represents the lifecycle state of an RSVP.
type AttendeeStatus string

const (
	StatusConfirmed AttendeeStatus = "confirmed"
	StatusCancelled AttendeeStatus = "cancelled"
)

// validTransitions defines the allowed RSVP state changes. A cancelled RSVP is
// reactivated when the guest modifies it.
var validTransitions = map[AttendeeStatus][]AttendeeStatus{
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: {StatusConfirmed},
}

var (
	ErrAttendeeNotFound  = errors.New("rsvp not found")
	ErrAlreadyRSVPd      = errors.New("you have already RSVP'd to this event")
	ErrInvalidTransition = errors.New("invalid rsvp status transition")
)

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s AttendeeStatus) CanTransitionTo(next AttendeeStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Attendee is a guest's RSVP to one event. WhatsAppNumber identifies the guest
// within that event.
type Attendee struct {
	ID             string         `json:"id" bson:"_id,omitempty"`
	EventID        string         `json:"event_id" bson:"event_id"`
	WhatsAppNumber string         `json:"whatsapp_number" bson:"whatsapp_number"`
	Name           string         `json:"name" bson:"name"`
	NumAdults      int            `json:"num_adults" bson:"num_adults"`
	NumChildren    int            `json:"num_children" bson:"num_children"`
	Comments       string         `json:"comments" bson:"comments"`
	Status         AttendeeStatus `json:"status" bson:"status"`
	CreatedAt      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at" bson:"updated_at"`
}

// TransitionTo moves the RSVP to next, rejecting changes the lifecycle does
// not allow (including any status read back that it does not know).
func (a *Attendee) TransitionTo(next AttendeeStatus) error {
	if !a.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %q -> %q", ErrInvalidTransition, a.Status, next)
	}
	a.Status = next
	return nil
}

// HeadCount sums confirmed guests across a list of attendees.
type HeadCount struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

// CountConfirmed returns the number of confirmed adults and children.
func CountConfirmed(attendees []*Attendee) HeadCount {
	var hc HeadCount
	for _, a := range attendees {
		if a.Status != StatusConfirmed {
			continue
		}
		hc.Adults += a.NumAdults
		hc.Children += a.NumChildren
	}
	return hc
}
