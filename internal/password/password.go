// Package password derives and verifies salted password hashes.
package password

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltBytes  = 16
	iterations = 1000
	keyLength  = 64
)

// Hash derives a fresh random salt and the PBKDF2-SHA512 hash of pw.
// Both are returned hex-encoded for storage.
func Hash(pw string) (salt string, hash string, err error) {
	raw := make([]byte, saltBytes)
	if _, err := rand.Read(raw); err != nil {
		return "", "", fmt.Errorf("failed to generate salt: %w", err)
	}
	salt = hex.EncodeToString(raw)
	hash = derive(pw, salt)
	return salt, hash, nil
}

// Verify recomputes the hash with the stored salt and compares in
// constant time.
func Verify(pw, salt, hash string) bool {
	return subtle.ConstantTimeCompare([]byte(derive(pw, salt)), []byte(hash)) == 1
}

func derive(pw, salt string) string {
	key := pbkdf2.Key([]byte(pw), []byte(salt), iterations, keyLength, sha512.New)
	return hex.EncodeToString(key)
}
