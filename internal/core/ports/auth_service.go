package ports

import (
	"context"

	"github.com/99minutos/auth-system/internal/core/domain"
)

// AuthUseCase exchanges credentials for an access token. An empty token with
// a nil error means the credentials were rejected.
type AuthUseCase interface {
	Auth(ctx context.Context, email, password string) (string, error)
}

// SignUpService registers new accounts.
type SignUpService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
}
