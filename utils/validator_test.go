package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"admin@example.com", "cleaning.team@school.edu.br"}
	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Fatalf("expected %q to be valid", email)
		}
	}

	invalid := []string{"", "admin", "admin@", "@example.com", "admin@example"}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Fatalf("expected %q to be invalid", email)
		}
	}
}

func TestValidateRA(t *testing.T) {
	if !ValidateRA("RA123") || !ValidateRA("20260123456") {
		t.Fatalf("expected alphanumeric RAs to be valid")
	}
	if ValidateRA("") || ValidateRA("RA 123") || ValidateRA("RA-123") {
		t.Fatalf("expected malformed RAs to be invalid")
	}
	if ValidateRA("A123456789012345678901") {
		t.Fatalf("expected RA over 20 chars to be invalid")
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  Prédio A\x00  "); got != "Prédio A" {
		t.Fatalf("got %q", got)
	}
}
