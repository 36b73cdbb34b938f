package hasher

import (
	"golang.org/x/crypto/bcrypt"
)

// Hasher hashes passwords one way and verifies them in constant time.
type Hasher interface {
	Hash(raw string) (string, error)
	Compare(hash, raw string) error
}

type bcryptHasher struct {
	cost int
}

// NewBcrypt returns a bcrypt Hasher. Costs outside bcrypt's accepted range
// fall back to bcrypt.DefaultCost.
func NewBcrypt(cost int) Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(raw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(raw), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h *bcryptHasher) Compare(hash, raw string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(raw))
}
