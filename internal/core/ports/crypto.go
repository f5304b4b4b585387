package ports

import "context"

// Encrypter compares a plaintext value against a stored hash.
type Encrypter interface {
	Compare(ctx context.Context, value, hash string) (bool, error)
}

// Hasher produces the stored hash for a plaintext value.
type Hasher interface {
	Hash(ctx context.Context, value string) (string, error)
}

// TokenGenerator issues an opaque access token for a user id.
type TokenGenerator interface {
	Generate(ctx context.Context, userID string) (string, error)
}
