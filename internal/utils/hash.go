package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
)

// Hash returns the SHA-256 digest of data.
func Hash(data []byte) []byte {
	sum := sha256.Sum256(data)
	return sum[:]
}

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write([]byte(data))
	return hex.EncodeToString(hasher.Sum(nil))
}

// PasswordDigest returns the hex digest stored for a profile password.
//
// The secret is trimmed first. With a non-empty key the digest is an
// HMAC-SHA256; with an empty key it is a plain SHA-256, which is what
// databases created by the legacy spreadsheet tool contain.
func PasswordDigest(secret, hashKey string) string {
	secret = strings.TrimSpace(secret)
	if hashKey != "" {
		return HashString(secret, hashKey)
	}
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// EqualDigests compares two hex digests in constant time.
func EqualDigests(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
