package domain

import (
	"errors"
	"time"
)

var (
	ErrEventNotFound           = errors.New("event not found")
	ErrDuplicateSlug           = errors.New("event slug already exists")
	ErrModificationsNotAllowed = errors.New("modifications are not allowed for this event")
	ErrCancellationsNotAllowed = errors.New("cancellations are not allowed for this event")
)

// Event is an invitation page identified publicly by its slug.
//
// AddressFull usually follows "<Street>, <Number>, <Neighborhood>, <City> - <UF>, CEP <zip>, Brasil"
// but is free text; Location stays nil until geocoding succeeds.
type Event struct {
	ID                 string       `json:"id" bson:"_id,omitempty"`
	Slug               string       `json:"slug" bson:"slug"`
	HostID             string       `json:"host_id" bson:"host_id"`
	Title              string       `json:"title" bson:"title"`
	Description        string       `json:"description" bson:"description"`
	EventDate          time.Time    `json:"event_date" bson:"event_date"`
	StartTime          string       `json:"start_time" bson:"start_time"`
	AddressFull        string       `json:"address_full" bson:"address_full"`
	Location           *Coordinates `json:"location,omitempty" bson:"location,omitempty"`
	AllowModifications bool         `json:"allow_modifications" bson:"allow_modifications"`
	AllowCancellations bool         `json:"allow_cancellations" bson:"allow_cancellations"`
	CreatedAt          time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at" bson:"updated_at"`
}

// OwnedBy reports whether hostID is the event's host.
func (e *Event) OwnedBy(hostID string) bool {
	return hostID != "" && e.HostID == hostID
}
