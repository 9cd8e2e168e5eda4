package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

// Generate produces a 6-digit decimal code from a cryptographically secure
// source. Leading zeros are preserved.
func Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// Digest returns the hex-encoded SHA-256 of the code. Codes are short-lived
// and reissue-limited, so a fast hash is sufficient — only the digest is ever
// stored.
func Digest(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
