package ports

import (
	"context"

	"github.com/99minutos/auth-system/internal/core/domain"
)

// LoadUserByEmailRepository resolves an email to its user record.
// A nil user with a nil error means no account is registered for the email.
type LoadUserByEmailRepository interface {
	LoadByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UpdateAccessTokenRepository records the last access token issued to a user.
type UpdateAccessTokenRepository interface {
	UpdateAccessToken(ctx context.Context, userID, accessToken string) error
}

// CreateUserRepository persists new accounts.
type CreateUserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
