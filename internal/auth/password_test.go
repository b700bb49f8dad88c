package auth

import "testing"

func TestHashPasswordSalted(t *testing.T) {
	first, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	second, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	if first == second {
		t.Fatal("expected different hashes for the same plaintext")
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}

	if !CheckPassword("hunter22", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("expected mismatch to fail")
	}
	if CheckPassword("hunter22", "not-a-bcrypt-hash") {
		t.Fatal("expected malformed hash to fail, not panic")
	}
	if CheckPassword("", hash) {
		t.Fatal("expected empty input to fail")
	}
}
