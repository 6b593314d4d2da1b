package domain

import (
	"errors"
	"time"
)

var (
	ErrHostExists         = errors.New("email already registered")
	ErrHostNotFound       = errors.New("host not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")
	ErrInvalidInput       = errors.New("invalid input")
)

// Host is the account that owns events and receives RSVP notifications.
type Host struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	WhatsAppNumber string    `json:"whatsapp_number"`
	PasswordHash   string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
