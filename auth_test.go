package main

import (
	"strings"
	"testing"
)

func TestRegisterAndLogin(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)

	id, token, err := auth.Register("alice", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id == 0 || token == "" {
		t.Fatal("register should return an account id and a token")
	}

	loginID, loginToken, err := auth.Login("alice", "hunter2", "1.2.3.4")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if loginID != id || loginToken == "" {
		t.Error("login should resolve the registered account")
	}
}

func TestRegisterValidation(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)

	if _, _, err := auth.Register("a", "hunter2"); err == nil {
		t.Error("too-short username should be rejected")
	}
	if _, _, err := auth.Register("alice", "abc"); err == nil {
		t.Error("too-short password should be rejected")
	}

	auth.Register("alice", "hunter2")
	if _, _, err := auth.Register("alice", "hunter2"); err == nil ||
		!strings.Contains(err.Error(), "taken") {
		t.Errorf("duplicate username error = %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)
	auth.Register("alice", "hunter2")

	if _, _, err := auth.Login("alice", "wrong", "1.2.3.4"); err == nil {
		t.Error("wrong password should be rejected")
	}
	if _, _, err := auth.Login("nobody", "hunter2", "1.2.3.4"); err == nil {
		t.Error("unknown account should be rejected")
	}
}

func TestValidateToken(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)
	id, token, _ := auth.Register("alice", "hunter2")

	gotID, gotUser, err := auth.ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if gotID != id || gotUser != "alice" {
		t.Errorf("claims = (%d, %s), want (%d, alice)", gotID, gotUser, id)
	}

	if _, _, err := auth.ValidateToken("not.a.token"); err == nil {
		t.Error("garbage token should be rejected")
	}
	if _, _, err := auth.ValidateToken(token + "x"); err == nil {
		t.Error("tampered token should be rejected")
	}
}

func TestSecretPersistsAcrossRestarts(t *testing.T) {
	db := openTestDB(t)
	first := NewAuth(db)
	_, token, _ := first.Register("alice", "hunter2")

	// A fresh Auth over the same database must validate old tokens
	second := NewAuth(db)
	if _, _, err := second.ValidateToken(token); err != nil {
		t.Errorf("token from before restart rejected: %v", err)
	}
}

func TestLoginRateLimit(t *testing.T) {
	db := openTestDB(t)
	auth := NewAuth(db)
	auth.Register("alice", "hunter2")

	for i := 0; i < maxLoginAttempts; i++ {
		auth.Login("alice", "wrong", "9.9.9.9")
	}
	if _, _, err := auth.Login("alice", "hunter2", "9.9.9.9"); err == nil ||
		!strings.Contains(err.Error(), "too many") {
		t.Errorf("rate limited login error = %v", err)
	}

	// A different IP is unaffected
	if _, _, err := auth.Login("alice", "hunter2", "8.8.8.8"); err != nil {
		t.Errorf("other IP should still log in: %v", err)
	}
}

func TestGenerateGuestName(t *testing.T) {
	name := GenerateGuestName()
	if !strings.HasPrefix(name, "Guest_") {
		t.Errorf("guest name = %q, want Guest_ prefix", name)
	}
	if name == GenerateGuestName() && name == GenerateGuestName() {
		t.Error("guest names should vary")
	}
}
