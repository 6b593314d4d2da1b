package service

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/venha/invitations-api/internal/core/domain"
	"github.com/venha/invitations-api/internal/core/ports"
)

// AuthService implements host signup and login.
type AuthService struct {
	repo      ports.HostRepository
	jwtSecret string
	tokenTTL  time.Duration
	clock     clockwork.Clock
}

func NewAuthService(repo ports.HostRepository, jwtSecret string, tokenTTL time.Duration, clock clockwork.Clock) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, clock: clock}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.Host, error) {
	email, ok := normalizeEmail(in.Email)
	if !ok || in.Password == "" || strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.WhatsAppNumber) == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now().UTC()
	host := &domain.Host{
		Email:          email,
		Name:           strings.TrimSpace(in.Name),
		WhatsAppNumber: strings.TrimSpace(in.WhatsAppNumber),
		PasswordHash:   string(hash),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, host)
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Host, error) {
	email, ok := normalizeEmail(email)
	if !ok || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	host, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(host.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(host)
	if err != nil {
		return "", nil, err
	}

	return token, host, nil
}

func (s *AuthService) generateToken(host *domain.Host) (string, error) {
	claims := jwt.MapClaims{
		"host_id": host.ID,
		"email":   host.Email,
		"exp":     s.clock.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// normalizeEmail validates a bare address and lower-cases it.
func normalizeEmail(raw string) (string, bool) {
	addr, err := mail.ParseAddress(strings.TrimSpace(raw))
	if err != nil || addr.Name != "" {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}
