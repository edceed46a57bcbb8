package auth

import (
	"context"
	"crypto/sha256"
	"crypto/subtle"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyPassword      = errors.New("password must not be empty")
)

// Verifier decides whether a username/password pair may use the lab routes.
// Route logic only sees this interface, so the credential source can change
// without touching handlers.
type Verifier interface {
	Verify(ctx context.Context, username, password string) bool
}

// StaticVerifier accepts a single configured username/password pair.
type StaticVerifier struct {
	username [sha256.Size]byte
	password [sha256.Size]byte
}

// NewStaticVerifier builds a verifier for one credential pair
func NewStaticVerifier(username, password string) *StaticVerifier {
	return &StaticVerifier{
		username: sha256.Sum256([]byte(username)),
		password: sha256.Sum256([]byte(password)),
	}
}

// Verify compares fixed-size digests so timing does not leak input length.
func (v *StaticVerifier) Verify(_ context.Context, username, password string) bool {
	u := sha256.Sum256([]byte(username))
	p := sha256.Sum256([]byte(password))

	userOK := subtle.ConstantTimeCompare(u[:], v.username[:])
	passOK := subtle.ConstantTimeCompare(p[:], v.password[:])
	return userOK&passOK == 1
}

// BcryptVerifier accepts one username whose password is stored as a bcrypt hash.
type BcryptVerifier struct {
	username [sha256.Size]byte
	hash     []byte
}

// NewBcryptVerifier validates the hash up front so a bad value fails at startup.
func NewBcryptVerifier(username, hash string) (*BcryptVerifier, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("invalid bcrypt hash: %w", err)
	}
	return &BcryptVerifier{
		username: sha256.Sum256([]byte(username)),
		hash:     []byte(hash),
	}, nil
}

func (v *BcryptVerifier) Verify(_ context.Context, username, password string) bool {
	u := sha256.Sum256([]byte(username))
	userOK := subtle.ConstantTimeCompare(u[:], v.username[:]) == 1

	// Always run bcrypt so a wrong username costs the same as a wrong password
	passOK := bcrypt.CompareHashAndPassword(v.hash, []byte(password)) == nil
	return userOK && passOK
}

// NewVerifier returns a BcryptVerifier when a hash is given, otherwise a
// StaticVerifier for the plain password.
func NewVerifier(username, password, hash string) (Verifier, error) {
	if hash != "" {
		return NewBcryptVerifier(username, hash)
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return NewStaticVerifier(username, password), nil
}

// HashPassword creates a bcrypt hash suitable for LAB_PASSWORD_HASH
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Check returns ErrInvalidCredentials when v rejects the pair.
func Check(ctx context.Context, v Verifier, username, password string) error {
	if !v.Verify(ctx, username, password) {
		return ErrInvalidCredentials
	}
	return nil
}
