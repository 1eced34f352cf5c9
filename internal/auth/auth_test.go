package auth

import (
	"testing"
	"time"
)

func testSessions() Sessions {
	return Sessions{
		Issuer:     "eventscore-test",
		SigningKey: "test-signing-key",
		TTL:        time.Hour,
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := testSessions()

	token, exp, err := s.Issue(42, "student")
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if token == "" {
		t.Fatal("Issue() returned empty token")
	}
	if time.Until(exp) <= 0 {
		t.Error("Issue() expiry not in the future")
	}

	claims, err := s.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.Role != "student" {
		t.Errorf("Role = %q, want %q", claims.Role, "student")
	}
	id, err := claims.UserID()
	if err != nil {
		t.Fatalf("UserID() error = %v", err)
	}
	if id != 42 {
		t.Errorf("UserID() = %d, want 42", id)
	}
}

func TestSessionParseRejects(t *testing.T) {
	s := testSessions()
	token, _, err := s.Issue(7, "admin")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		sessions Sessions
		token    string
	}{
		{"wrong key", Sessions{Issuer: s.Issuer, SigningKey: "other-key", TTL: time.Hour}, token},
		{"issuer mismatch", Sessions{Issuer: "someone-else", SigningKey: s.SigningKey, TTL: time.Hour}, token},
		{"garbage token", s, "not-a-token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.sessions.Parse(tt.token); err == nil {
				t.Error("Parse() accepted an invalid token")
			}
		})
	}
}

func TestSessionParseExpired(t *testing.T) {
	s := testSessions()
	s.TTL = -time.Minute
	token, _, err := s.Issue(7, "student")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.Parse(token); err == nil {
		t.Error("Parse() accepted an expired token")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "secret1" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !CheckPassword(hash, "secret1") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("CheckPassword() accepted a wrong password")
	}

	// Salts are randomized, so identical inputs hash differently.
	hash2, err := HashPassword("secret1", 4)
	if err != nil {
		t.Fatal(err)
	}
	if hash == hash2 {
		t.Error("two hashes of the same password are identical")
	}
}

func TestRandomPassword(t *testing.T) {
	p1, err := RandomPassword()
	if err != nil {
		t.Fatalf("RandomPassword() error = %v", err)
	}
	if len(p1) != 16 {
		t.Errorf("RandomPassword() length = %d, want 16", len(p1))
	}
	for _, c := range p1 {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("RandomPassword() contains non-hex char: %c", c)
		}
	}

	p2, _ := RandomPassword()
	if p1 == p2 {
		t.Error("RandomPassword() produced duplicate passwords (extremely unlikely)")
	}
}
