package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-system/internal/core/domain"
	"github.com/99minutos/auth-system/internal/core/ports"
)

// SignUpService registers accounts that AuthUseCase can later authenticate.
type SignUpService struct {
	repo   ports.CreateUserRepository
	hasher ports.Hasher
	log    zerolog.Logger
}

func NewSignUpService(repo ports.CreateUserRepository, hasher ports.Hasher, log zerolog.Logger) *SignUpService {
	return &SignUpService{repo: repo, hasher: hasher, log: log}
}

func (s *SignUpService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, domain.NewMissingParamError("email")
	}
	if password == "" {
		return nil, domain.NewMissingParamError("password")
	}

	hash, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}
