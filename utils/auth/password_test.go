package auth

import (
	"testing"
	"time"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Abc@12")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "Abc@12" {
		t.Fatal("hash equals plaintext")
	}

	if err := VerifyPassword(hash, "Abc@12"); err != nil {
		t.Errorf("expected password to verify, got %v", err)
	}
	if err := VerifyPassword(hash, "wrong"); err == nil {
		t.Error("expected verification failure for wrong password")
	}
}

func TestDefaultStudentPassword(t *testing.T) {
	dob := time.Date(2003, time.May, 10, 0, 0, 0, 0, time.UTC)
	if got := DefaultStudentPassword(dob); got != "10052003" {
		t.Errorf("expected 10052003, got %q", got)
	}

	// Single-digit day and month are zero-padded
	dob = time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC)
	if got := DefaultStudentPassword(dob); got != "01012002" {
		t.Errorf("expected 01012002, got %q", got)
	}
}

func TestDefaultFacultyPassword(t *testing.T) {
	if got := DefaultFacultyPassword("mehta@univ.edu"); got != "mehta" {
		t.Errorf("expected mehta, got %q", got)
	}
	if got := DefaultFacultyPassword("no-at-sign"); got != "no-at-sign" {
		t.Errorf("expected full string without @, got %q", got)
	}
}
