package util

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	password := "MyPassword123"

	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !strings.HasPrefix(hashed, "$2") {
		t.Errorf("hash %q does not look like bcrypt", hashed)
	}

	// empty password must fail
	if _, err := HashPassword("", 4); err == nil {
		t.Error("HashPassword(\"\") error = nil, want error")
	}

	// same password must produce different hashes (random salt)
	hashed2, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hashed == hashed2 {
		t.Error("two hashes of the same password are identical, want distinct salts")
	}
}

func TestHashPassword_OutOfRangeCost(t *testing.T) {
	// out-of-range cost falls back to the bcrypt default instead of failing
	hashed, err := HashPassword("secret123", 99)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if !CheckPassword("secret123", hashed) {
		t.Error("CheckPassword() = false for hash produced with fallback cost")
	}
}

func TestCheckPassword(t *testing.T) {
	password := "TestPass456"
	hashed, err := HashPassword(password, 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if !CheckPassword(password, hashed) {
		t.Error("CheckPassword() = false for the correct password")
	}
	if CheckPassword("WrongPass", hashed) {
		t.Error("CheckPassword() = true for a wrong password")
	}
	if CheckPassword("", hashed) {
		t.Error("CheckPassword() = true for an empty password")
	}
	if CheckPassword(password, "") {
		t.Error("CheckPassword() = true for an empty stored hash")
	}
	if CheckPassword(password, "not-a-bcrypt-hash") {
		t.Error("CheckPassword() = true for garbage stored hash")
	}
}
