package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/auth-system/internal/core/domain"
)

// BcryptEncrypter hashes and compares passwords with bcrypt.
type BcryptEncrypter struct {
	cost int
}

// NewBcryptEncrypter returns an encrypter using cost for new hashes.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptEncrypter(cost int) *BcryptEncrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptEncrypter{cost: cost}
}

// Compare reports whether value matches hash. A mismatch is not an error;
// a malformed hash is.
func (e *BcryptEncrypter) Compare(_ context.Context, value, hash string) (bool, error) {
	if value == "" {
		return false, domain.NewMissingParamError("value")
	}
	if hash == "" {
		return false, domain.NewMissingParamError("hash")
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(value))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("bcrypt compare: %w", err)
	}
}

// Hash returns the bcrypt hash of value. Values longer than 72 bytes are
// rejected as an invalid password rather than silently truncated.
func (e *BcryptEncrypter) Hash(_ context.Context, value string) (string, error) {
	if value == "" {
		return "", domain.NewMissingParamError("value")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(value), e.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", domain.NewInvalidParamError("password")
	}
	if err != nil {
		return "", fmt.Errorf("bcrypt hash: %w", err)
	}
	return string(hash), nil
}
