package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/venha/invitations-api/internal/core/domain"
)

func TestHTTPErrorHandler(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"event not found", domain.ErrEventNotFound, http.StatusNotFound, "Event not found"},
		{"wrapped attendee not found", fmt.Errorf("lookup: %w", domain.ErrAttendeeNotFound), http.StatusNotFound, "RSVP not found"},
		{"already rsvpd", domain.ErrAlreadyRSVPd, http.StatusBadRequest, "You have already RSVP'd to this event"},
		{"modifications", domain.ErrModificationsNotAllowed, http.StatusForbidden, "Modifications are not allowed for this event"},
		{"cancellations", domain.ErrCancellationsNotAllowed, http.StatusForbidden, "Cancellations are not allowed for this event"},
		{"not owner", domain.ErrForbidden, http.StatusForbidden, "access forbidden"},
		{"unknown login", domain.ErrHostNotFound, http.StatusUnauthorized, "invalid credentials"},
		{"duplicate host", domain.ErrHostExists, http.StatusConflict, "email already registered"},
		{"bad status transition", fmt.Errorf("%w: %q -> %q", domain.ErrInvalidTransition, "pending", "cancelled"), http.StatusUnprocessableEntity, "invalid rsvp status transition"},
		{"echo error", echo.NewHTTPError(http.StatusTooManyRequests, "slow down"), http.StatusTooManyRequests, "slow down"},
		{"unexpected", errors.New("mongo exploded"), http.StatusInternalServerError, "internal server error"},
	}

	e := echo.New()
	h := NewHTTPErrorHandler(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			h(tt.err, c)

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			var body errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if body.Error != tt.msg {
				t.Fatalf("expected %q, got %q", tt.msg, body.Error)
			}
		})
	}
}
