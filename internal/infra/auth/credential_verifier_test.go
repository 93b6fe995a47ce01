package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func legacyHash(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

func TestDetectScheme(t *testing.T) {
	bcryptHash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name   string
		stored string
		want   HashScheme
	}{
		{"bcrypt", string(bcryptHash), SchemeBcrypt},
		{"legacy lowercase", legacyHash("s3cret"), SchemeLegacySHA256},
		{"legacy uppercase", strings.ToUpper(legacyHash("s3cret")), SchemeUnknown},
		{"empty", "", SchemeUnknown},
		{"short hex", "abcdef", SchemeUnknown},
		{"plaintext", "not-a-hash-at-all", SchemeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectScheme(tt.stored))
		})
	}
}

func TestCredentialVerifier_LegacyMatchNeedsUpgrade(t *testing.T) {
	verifier := NewCredentialVerifierWithCost(bcrypt.MinCost)

	result := verifier.Verify("device-secret", legacyHash("device-secret"))
	assert.True(t, result.Valid)
	assert.True(t, result.NeedsUpgrade)
}

func TestCredentialVerifier_LegacyUppercaseDigestRejected(t *testing.T) {
	verifier := NewCredentialVerifierWithCost(bcrypt.MinCost)

	result := verifier.Verify("device-secret", strings.ToUpper(legacyHash("device-secret")))
	assert.False(t, result.Valid)
	assert.False(t, result.NeedsUpgrade)
}

func TestCredentialVerifier_ModernMatch(t *testing.T) {
	verifier := NewCredentialVerifierWithCost(bcrypt.MinCost)

	hash, err := verifier.Hash("device-secret")
	require.NoError(t, err)
	assert.Equal(t, SchemeBcrypt, DetectScheme(hash))

	result := verifier.Verify("device-secret", hash)
	assert.True(t, result.Valid)
	assert.False(t, result.NeedsUpgrade)
}

func TestCredentialVerifier_MismatchRejectedForEveryScheme(t *testing.T) {
	verifier := NewCredentialVerifierWithCost(bcrypt.MinCost)

	modern, err := verifier.Hash("device-secret")
	require.NoError(t, err)

	stored := []string{modern, legacyHash("device-secret"), "garbage", ""}
	for _, hash := range stored {
		for _, presented := range []string{"wrong", "", "device-secret "} {
			result := verifier.Verify(presented, hash)
			assert.False(t, result.Valid, "presented %q against %q", presented, hash)
			assert.False(t, result.NeedsUpgrade)
		}
	}
}

func TestCredentialVerifier_HashUsesConfiguredCost(t *testing.T) {
	customCost := 6
	verifier := NewCredentialVerifierWithCost(customCost)

	hash, err := verifier.Hash("device-secret")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestCredentialVerifier_InvalidCostFallsBackToDefault(t *testing.T) {
	verifier := NewCredentialVerifierWithCost(100).(*credentialVerifier)
	assert.Equal(t, bcrypt.DefaultCost, verifier.cost)
}
