package password

import "golang.org/x/crypto/bcrypt"

// Hasher abstracts one-way password hashing so use cases stay
// independent of the concrete scheme.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a bcrypt-backed Hasher. Cost values outside the
// bcrypt range fall back to the library default.
func NewBcrypt(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash produces a salted digest. bcrypt rejects inputs longer than 72
// bytes with an error rather than truncating them.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify recomputes and compares in constant time.
func (h *bcryptHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
