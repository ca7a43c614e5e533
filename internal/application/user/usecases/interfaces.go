package usecases

import (
	"time"

	"mentorhub/internal/domain/user"
)

// PasswordHasher hashes and verifies account passwords. Backed by bcrypt.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}

// TokenService issues the signed access tokens the API authenticates with.
type TokenService interface {
	Generate(u *user.User) (token string, expiresAt time.Time, err error)
}
