package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// SignupInput carries the fields required to open a host account.
type SignupInput struct {
	Email          string
	Password       string
	Name           string
	WhatsAppNumber string
}

type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*domain.Host, error)
	Login(ctx context.Context, email, password string) (string, *domain.Host, error)
}
