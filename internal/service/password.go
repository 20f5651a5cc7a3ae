package service

import (
	"crypto/rand"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Iterations = 120000
	pbkdf2KeyLen     = 64
	saltLen          = 16
)

// HashPassword returns "<iterations>:<salt>:<hash>" using PBKDF2-HMAC-SHA512.
// The salt is 16 random bytes, hex-encoded; the hex string itself is the salt input.
func HashPassword(password string) (string, error) {
	raw := make([]byte, saltLen)
	if _, err := rand.Read(raw); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hashWithSalt(password, hex.EncodeToString(raw), pbkdf2Iterations), nil
}

func hashWithSalt(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, pbkdf2KeyLen, sha512.New)
	return fmt.Sprintf("%d:%s:%s", iterations, salt, hex.EncodeToString(key))
}

// VerifyPassword checks password against a hash produced by HashPassword.
// Malformed hashes never verify.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return false
	}
	iterations, err := strconv.Atoi(parts[0])
	if err != nil || iterations <= 0 {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil || len(want) == 0 {
		return false
	}
	got := pbkdf2.Key([]byte(password), []byte(parts[1]), iterations, len(want), sha512.New)
	return subtle.ConstantTimeCompare(got, want) == 1
}
