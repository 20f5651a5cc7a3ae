package service

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	parts := strings.Split(hash, ":")
	if len(parts) != 3 {
		t.Fatalf("expected iterations:salt:hash, got %q", hash)
	}
	if parts[0] != "120000" {
		t.Errorf("expected 120000 iterations, got %s", parts[0])
	}
	if len(parts[1]) != 32 {
		t.Errorf("expected 32 hex chars of salt, got %d", len(parts[1]))
	}
	if len(parts[2]) != 128 {
		t.Errorf("expected 64-byte key (128 hex chars), got %d", len(parts[2]))
	}
}

func TestHashPassword_SaltsDiffer(t *testing.T) {
	a, _ := HashPassword("same")
	b, _ := HashPassword("same")
	if a == b {
		t.Error("expected different hashes for the same password")
	}
}

func TestVerifyPassword(t *testing.T) {
	hash := hashWithSalt("pa55word", "deadbeefdeadbeefdeadbeefdeadbeef", 500)

	if !VerifyPassword("pa55word", hash) {
		t.Error("expected correct password to verify")
	}
	if VerifyPassword("pa55wort", hash) {
		t.Error("expected wrong password to fail")
	}
}

func TestVerifyPassword_Malformed(t *testing.T) {
	for _, stored := range []string{
		"",
		"nocolons",
		"500:salt",
		"abc:salt:00ff",
		"0:salt:00ff",
		"500::00ff",
		"500:salt:",
		"500:salt:zz",
		"500:salt:00ff:extra",
	} {
		if VerifyPassword("anything", stored) {
			t.Errorf("expected %q not to verify", stored)
		}
	}
}
