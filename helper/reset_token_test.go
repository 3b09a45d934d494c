package helper

import "testing"

func TestGenerateResetToken(t *testing.T) {
	token, hash, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}

	if len(token) != 64 {
		t.Errorf("token length = %d, want 64 hex chars", len(token))
	}
	if len(hash) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(hash))
	}
	if token == hash {
		t.Error("token and hash are identical")
	}

	if HashResetToken(token) != hash {
		t.Error("HashResetToken(token) does not match the returned hash")
	}
}

func TestGenerateResetTokenUnique(t *testing.T) {
	first, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}
	second, _, err := GenerateResetToken()
	if err != nil {
		t.Fatalf("GenerateResetToken returned error: %v", err)
	}

	if first == second {
		t.Error("two generated tokens are identical")
	}
}

func TestHashResetTokenDeterministic(t *testing.T) {
	if HashResetToken("abc") != HashResetToken("abc") {
		t.Error("hashing the same token twice gives different results")
	}
	if HashResetToken("abc") == HashResetToken("abd") {
		t.Error("different tokens hash to the same value")
	}
}
