package secret

import (
	"crypto/rand"
	"crypto/sha512"
	"encoding/base64"
)

// Generate creates n cryptographically secure random bytes and returns their base64 representation along with their
// SHA512 hash
func Generate(n int) (string, [64]byte, error) {
	raw := make([]byte, n)
	if _, err := rand.Read(raw); err != nil {
		return "", [64]byte{}, err
	}
	return base64.StdEncoding.EncodeToString(raw), sha512.Sum512(raw), nil
}

// MustGenerate works like Generate but panics if the system's random source fails
func MustGenerate(n int) (string, [64]byte) {
	encoded, hash, err := Generate(n)
	if err != nil {
		panic(err)
	}
	return encoded, hash
}

// Hash decodes a base64 secret as returned by Generate and returns its SHA512 hash
func Hash(encoded string) ([64]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return [64]byte{}, err
	}
	return sha512.Sum512(raw), nil
}
