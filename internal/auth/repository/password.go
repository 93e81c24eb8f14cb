package repository

import (
	"crypto/sha256"
	"encoding/base64"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password using bcrypt over a SHA-256 pre-hash, so
// passwords longer than bcrypt's 72-byte input limit are not truncated.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(prehash(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), prehash(password))
	return err == nil
}

// base64 keeps the digest free of NUL bytes and within 72 bytes (44 chars).
func prehash(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(base64.StdEncoding.EncodeToString(sum[:]))
}

var (
	dummyHashOnce sync.Once
	dummyHash     string
)

// DummyHash returns a valid hash that matches no real password. Comparing
// against it keeps failed lookups as slow as failed password checks.
func DummyHash() string {
	dummyHashOnce.Do(func() {
		h, err := HashPassword("not-a-real-password")
		if err == nil {
			dummyHash = h
		}
	})
	return dummyHash
}
