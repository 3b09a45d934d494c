package helper

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if hash == "rahasia123" {
		t.Error("hash equals the plaintext password")
	}
	if !CheckPasswordHash("rahasia123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("salah123", hash) {
		t.Error("wrong password accepted")
	}
}
