package auth

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/dkuznetsov13/enginehealth/pkg/security/password"
)

// UseCase describes registration, login and request authentication.
type UseCase interface {
	Register(ctx context.Context, username, pass string) (User, error)
	Login(ctx context.Context, username, pass string) (string, error)
	Authenticate(ctx context.Context, token string) (User, error)
}

type authService struct {
	repo   UserRepository
	hasher password.Hasher
	tokens TokenService
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, hasher password.Hasher, tokens TokenService) UseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, username, pass string) (User, error) {
	if username == "" || pass == "" {
		return User{}, ErrInvalidCredentials
	}

	// Best-effort fast path; the users unique index is the authority when
	// two registrations race past this check.
	if _, err := s.repo.GetByUsername(ctx, username); err == nil {
		return User{}, ErrUserAlreadyExists
	}

	digest, err := s.hasher.Hash(pass)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, pass string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		// Unknown user and wrong password collapse into the same error so
		// responses cannot be used to enumerate accounts.
		return "", ErrInvalidCredentials
	}
	if !s.hasher.Verify(pass, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(ctx, user.Username)
}

func (s *authService) Authenticate(ctx context.Context, token string) (User, error) {
	subject, err := s.tokens.Validate(ctx, token)
	if err != nil {
		// The concrete validation failure stays in the logs only.
		log.Printf("auth: token rejected: %v", err)
		return User{}, ErrUnauthenticated
	}
	user, err := s.repo.GetByUsername(ctx, subject)
	if err != nil {
		// A valid token does not imply the account still exists.
		return User{}, ErrUnauthenticated
	}
	return user, nil
}
