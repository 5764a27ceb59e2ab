package auth

import "context"

// TokenService abstracts bearer-token issuance and validation (e.g. JWT).
// Issue encodes the subject with the service's configured TTL; Validate
// returns the subject or an error describing why the token is unusable.
type TokenService interface {
	Issue(ctx context.Context, subject string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}
