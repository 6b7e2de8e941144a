package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used for seeded passwords.
const DefaultCost = 10

// Hasher turns a plaintext password into the value stored in the users table.
type Hasher func(plaintext string) (string, error)

var DefaultHasher = BcryptHasher(DefaultCost)

func BcryptHasher(cost int) Hasher {
	return func(plaintext string) (string, error) {
		hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
		if err != nil {
			return "", fmt.Errorf("hash password: %w", err)
		}
		return string(hashed), nil
	}
}

// VerifyPassword reports whether plaintext matches a bcrypt hash.
func VerifyPassword(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
