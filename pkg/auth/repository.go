package auth

import (
	"context"
	"errors"
)

// Common errors used by repository/use cases
var (
	ErrNotFound           = errors.New("not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
)

// UserRepository abstracts persistence concerns from the domain layer.
// Usernames are case-sensitive unique keys; Create must map the store's
// unique-key conflict to ErrUserAlreadyExists so concurrent registrations
// resolve at write time.
type UserRepository interface {
	Create(ctx context.Context, user User) error
	GetByUsername(ctx context.Context, username string) (User, error)
}
