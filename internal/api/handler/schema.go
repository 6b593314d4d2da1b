package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type signupRequest struct {
	Email          string `json:"email"           validate:"required,email"`
	Password       string `json:"password"        validate:"required,min=6"`
	Name           string `json:"name"            validate:"required"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type hostResponse struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	CreatedAt      time.Time `json:"created_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	Host  *hostResponse `json:"host,omitempty"`
}

// --- Events ---

type createEventRequest struct {
	Title              string `json:"title"               validate:"required"`
	Description        string `json:"description"`
	EventDate          string `json:"event_date"          validate:"required,datetime=2006-01-02"`
	StartTime          string `json:"start_time"          validate:"omitempty,datetime=15:04"`
	AddressFull        string `json:"address_full"`
	AllowModifications *bool  `json:"allow_modifications"`
	AllowCancellations *bool  `json:"allow_cancellations"`
}

type updateEventRequest struct {
	Title              *string `json:"title"               validate:"omitempty,min=1"`
	Description        *string `json:"description"`
	EventDate          *string `json:"event_date"          validate:"omitempty,datetime=2006-01-02"`
	StartTime          *string `json:"start_time"          validate:"omitempty,datetime=15:04"`
	AddressFull        *string `json:"address_full"`
	AllowModifications *bool   `json:"allow_modifications"`
	AllowCancellations *bool   `json:"allow_cancellations"`
}

type eventResponse struct {
	ID                 string    `json:"id"`
	Slug               string    `json:"slug"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	EventDate          string    `json:"event_date"`
	StartTime          string    `json:"start_time,omitempty"`
	AddressFull        string    `json:"address_full"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	AllowModifications bool      `json:"allow_modifications"`
	AllowCancellations bool      `json:"allow_cancellations"`
	CreatedAt          time.Time `json:"created_at"`
}

type totalsResponse struct {
	ConfirmedAdults   int `json:"confirmed_adults"`
	ConfirmedChildren int `json:"confirmed_children"`
	Responses         int `json:"responses"`
}

type guestListResponse struct {
	Event     eventResponse      `json:"event"`
	Attendees []attendeeResponse `json:"attendees"`
	Totals    totalsResponse     `json:"totals"`
}

// --- RSVPs ---

type createRSVPRequest struct {
	EventSlug      string `json:"event_slug"      validate:"required"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required"`
	Name           string `json:"name"            validate:"required"`
	NumAdults      *int   `json:"num_adults"      validate:"required,min=0"`
	NumChildren    *int   `json:"num_children"    validate:"omitempty,min=0"`
	Comments       string `json:"comments"`
}

type rsvpKeyRequest struct {
	EventSlug      string `json:"event_slug"      validate:"required"`
	WhatsAppNumber string `json:"whatsapp_number" validate:"required"`
}

type modifyRSVPRequest struct {
	rsvpKeyRequest
	Name        *string `json:"name"         validate:"omitempty,min=1"`
	NumAdults   *int    `json:"num_adults"   validate:"omitempty,min=0"`
	NumChildren *int    `json:"num_children" validate:"omitempty,min=0"`
	Comments    *string `json:"comments"`
}

type cancelRSVPRequest struct {
	rsvpKeyRequest
	Reason string `json:"reason"`
}

type createRSVPResponse struct {
	Message    string `json:"message"`
	AttendeeID string `json:"attendee_id"`
}

type attendeeResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	NumAdults      int       `json:"num_adults"`
	NumChildren    int       `json:"num_children"`
	Comments       string    `json:"comments"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type rsvpEventSummary struct {
	Title              string `json:"title"`
	EventDate          string `json:"event_date"`
	AllowModifications bool   `json:"allow_modifications"`
	AllowCancellations bool   `json:"allow_cancellations"`
}

type findRSVPResponse struct {
	Attendee attendeeResponse `json:"attendee"`
	Event    rsvpEventSummary `json:"event"`
}

type modifyRSVPResponse struct {
	Message  string           `json:"message"`
	Attendee attendeeResponse `json:"attendee"`
}
