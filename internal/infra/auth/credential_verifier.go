// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"pillmate/config"
	"pillmate/internal/domain/service"
	"pillmate/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// HashScheme identifies how a stored device secret hash was produced.
type HashScheme int

const (
	// SchemeUnknown is a stored value no scheme recognises; it never verifies.
	SchemeUnknown HashScheme = iota
	// SchemeLegacySHA256 is an unsalted lowercase hex SHA-256 digest.
	SchemeLegacySHA256
	// SchemeBcrypt is a bcrypt modular-crypt string ("$2a$", "$2b$", "$2y$").
	SchemeBcrypt
)

func (s HashScheme) String() string {
	switch s {
	case SchemeLegacySHA256:
		return "legacy-sha256"
	case SchemeBcrypt:
		return "bcrypt"
	default:
		return "unknown"
	}
}

// DetectScheme derives the scheme tag of a stored hash.
func DetectScheme(storedHash string) HashScheme {
	switch {
	case strings.HasPrefix(storedHash, "$2"):
		return SchemeBcrypt
	case len(storedHash) == hex.EncodedLen(sha256.Size) && isLowerHex(storedHash):
		return SchemeLegacySHA256
	default:
		return SchemeUnknown
	}
}

// isLowerHex reports whether s is lowercase hex, the only form legacy digests were stored in.
func isLowerHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}

// credentialVerifier is a concrete implementation of the CredentialVerifier interface.
type credentialVerifier struct {
	cost int
}

// NewCredentialVerifier is the constructor for credentialVerifier.
// It returns the implementation as a service.CredentialVerifier interface.
func NewCredentialVerifier(cfg *config.Config) service.CredentialVerifier {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost != 0 {
		cost = cfg.Auth.BcryptCost
	}

	return NewCredentialVerifierWithCost(cost)
}

// NewCredentialVerifierWithCost creates a verifier hashing with the given bcrypt cost.
func NewCredentialVerifierWithCost(cost int) service.CredentialVerifier {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &credentialVerifier{cost: cost}
}

// Verify compares the presented secret using the strategy selected by the stored hash.
func (v *credentialVerifier) Verify(presentedSecret, storedHash string) service.Verification {
	switch DetectScheme(storedHash) {
	case SchemeBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(presentedSecret))
		return service.Verification{Valid: err == nil}
	case SchemeLegacySHA256:
		expected, _ := hex.DecodeString(storedHash)
		digest := sha256.Sum256([]byte(presentedSecret))
		if subtle.ConstantTimeCompare(digest[:], expected) == 1 {
			return service.Verification{Valid: true, NeedsUpgrade: true}
		}

		return service.Verification{}
	default:
		return service.Verification{}
	}
}

// Hash generates a salted bcrypt hash of the secret.
func (v *credentialVerifier) Hash(secret string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(secret), v.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt hash")
	}

	return string(bytes), nil
}
