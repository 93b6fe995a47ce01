// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// Verification is the outcome of checking a presented device secret.
type Verification struct {
	Valid        bool // The secret matches the stored hash.
	NeedsUpgrade bool // The stored hash uses the legacy scheme and should be re-hashed.
}

// CredentialVerifier checks device secrets against their stored, scheme-tagged hashes
// and produces new hashes under the current scheme.
type CredentialVerifier interface {
	// Verify compares a presented secret with a stored hash.
	Verify(presentedSecret, storedHash string) Verification

	// Hash produces a stored hash of the secret under the current scheme.
	Hash(secret string) (string, error)
}
