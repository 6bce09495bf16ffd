package auth

import "golang.org/x/crypto/bcrypt"

// TokenVerifier checks a presented secret against its stored hash.
type TokenVerifier interface {
	Hash(secret string) (string, error)
	Compare(hash string, secret string) error
}

// BcryptVerifier verifies secrets with bcrypt.
type BcryptVerifier struct {
	cost int
}

// NewBcryptVerifier creates BcryptVerifier with provided cost.
func NewBcryptVerifier(cost int) *BcryptVerifier {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptVerifier{cost: cost}
}

// Hash returns a bcrypt hash for the provided secret.
func (v *BcryptVerifier) Hash(secret string) (string, error) {
	encoded, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// Compare checks a secret against a stored hash.
func (v *BcryptVerifier) Compare(hash string, secret string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret))
}
