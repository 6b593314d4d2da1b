package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
}

// httpCode returns the status of an *echo.HTTPError, or 0.
func httpCode(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return 0
}

// --- service stubs ---

type stubAuthService struct {
	signupFn func(ctx context.Context, in ports.SignupInput) (*domain.Host, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.Host, error)
}

func (s *stubAuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Host, error) {
	return s.signupFn(ctx, in)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.Host, error) {
	return s.loginFn(ctx, email, password)
}

type stubEventService struct {
	createFn    func(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error)
	getFn       func(ctx context.Context, slug string) (*domain.Event, error)
	listFn      func(ctx context.Context, hostID string) ([]*domain.Event, error)
	updateFn    func(ctx context.Context, in ports.UpdateEventInput) (*domain.Event, error)
	guestListFn func(ctx context.Context, hostID, slug string) (*ports.GuestList, error)
}

func (s *stubEventService) CreateEvent(ctx context.Context, in ports.CreateEventInput) (*domain.Event, error) {
	return s.createFn(ctx, in)
}

func (s *stubEventService) GetEvent(ctx context.Context, slug string) (*domain.Event, error) {
	return s.getFn(ctx, slug)
}

func (s *stubEventService) ListHostEvents(ctx context.Context, hostID string) ([]*domain.Event, error) {
	return s.listFn(ctx, hostID)
}

func (s *stubEventService) UpdateEvent(ctx context.Context, in ports.UpdateEventInput) (*domain.Event, error) {
	return s.updateFn(ctx, in)
}

func (s *stubEventService) GuestList(ctx context.Context, hostID, slug string) (*ports.GuestList, error) {
	return s.guestListFn(ctx, hostID, slug)
}

type stubRSVPService struct {
	createFn func(ctx context.Context, in ports.CreateRSVPInput) (*domain.Attendee, error)
	findFn   func(ctx context.Context, key ports.RSVPKey) (*ports.RSVPDetail, error)
	modifyFn func(ctx context.Context, in ports.ModifyRSVPInput) (*domain.Attendee, error)
	cancelFn func(ctx context.Context, in ports.CancelRSVPInput) error
}

func (s *stubRSVPService) CreateRSVP(ctx context.Context, in ports.CreateRSVPInput) (*domain.Attendee, error) {
	return s.createFn(ctx, in)
}

func (s *stubRSVPService) FindRSVP(ctx context.Context, key ports.RSVPKey) (*ports.RSVPDetail, error) {
	return s.findFn(ctx, key)
}

func (s *stubRSVPService) ModifyRSVP(ctx context.Context, in ports.ModifyRSVPInput) (*domain.Attendee, error) {
	return s.modifyFn(ctx, in)
}

func (s *stubRSVPService) CancelRSVP(ctx context.Context, in ports.CancelRSVPInput) error {
	return s.cancelFn(ctx, in)
}
