package auth

import (
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

// prehash folds a password of any length into a fixed-size input, since
// bcrypt rejects plaintext over 72 bytes. The digest is base64-encoded to
// keep NUL bytes out of the bcrypt input.
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}

// HashPassword hashes a plaintext password with the configured cost. The salt
// is generated per call and embedded in the digest. Input length is
// unrestricted.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(prehash(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether plain matches the digest. Malformed digests
// verify as false rather than erroring, so callers cannot leak format details.
func VerifyPassword(hashed, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), prehash(plain)) == nil
}
