package service

import (
	"context"
	"reflect"
	"strings"

	"github.com/rs/zerolog"

	"github.com/99minutos/auth-system/internal/core/domain"
	"github.com/99minutos/auth-system/internal/core/ports"
)

// AuthDependencies is the set of collaborators the auth use case drives.
// Fields may be left nil; a missing collaborator is only reported when the
// flow actually reaches it.
type AuthDependencies struct {
	LoadUserByEmailRepository   ports.LoadUserByEmailRepository
	Encrypter                   ports.Encrypter
	TokenGenerator              ports.TokenGenerator
	UpdateAccessTokenRepository ports.UpdateAccessTokenRepository
}

// AuthUseCase exchanges an email and password for an access token.
type AuthUseCase struct {
	deps AuthDependencies
	log  zerolog.Logger
}

// NewAuthUseCase returns an AuthUseCase bound to deps for its whole lifetime.
func NewAuthUseCase(deps AuthDependencies, log zerolog.Logger) *AuthUseCase {
	return &AuthUseCase{deps: deps, log: log}
}

// Auth returns the token issued for the credentials, or "" when the email is
// unknown or the password does not match. Both rejections look the same to
// the caller. Collaborator errors are returned as-is.
func (uc *AuthUseCase) Auth(ctx context.Context, email, password string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", domain.NewMissingParamError("email")
	}
	if password == "" {
		return "", domain.NewMissingParamError("password")
	}

	if isNil(uc.deps.LoadUserByEmailRepository) {
		return "", domain.NewMissingDependencyError("loadUserByEmailRepository")
	}
	user, err := uc.deps.LoadUserByEmailRepository.LoadByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if user == nil {
		uc.log.Debug().Str("reason", "unknown_email").Msg("credentials rejected")
		return "", nil
	}

	if isNil(uc.deps.Encrypter) {
		return "", domain.NewMissingDependencyError("encrypter")
	}
	valid, err := uc.deps.Encrypter.Compare(ctx, password, user.PasswordHash)
	if err != nil {
		return "", err
	}
	if !valid {
		uc.log.Debug().Str("reason", "password_mismatch").Msg("credentials rejected")
		return "", nil
	}

	if isNil(uc.deps.TokenGenerator) {
		return "", domain.NewMissingDependencyError("tokenGenerator")
	}
	accessToken, err := uc.deps.TokenGenerator.Generate(ctx, user.ID)
	if err != nil {
		return "", err
	}

	if isNil(uc.deps.UpdateAccessTokenRepository) {
		return "", domain.NewMissingDependencyError("updateAccessTokenRepository")
	}
	if err := uc.deps.UpdateAccessTokenRepository.UpdateAccessToken(ctx, user.ID, accessToken); err != nil {
		return "", err
	}

	return accessToken, nil
}

// isNil also catches an interface holding a typed nil pointer.
func isNil(dep any) bool {
	if dep == nil {
		return true
	}
	v := reflect.ValueOf(dep)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
