package ports

import (
	"context"

	"github.com/venha/invitations-api/internal/core/domain"
)

// HostRepository defines persistence operations for host accounts.
type HostRepository interface {
	Create(ctx context.Context, host *domain.Host) (*domain.Host, error)
	FindByEmail(ctx context.Context, email string) (*domain.Host, error)
	FindByID(ctx context.Context, id string) (*domain.Host, error)
}
