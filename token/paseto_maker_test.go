package token

import (
	"strings"
	"testing"
	"time"
)

const testSymmetricKey = "12345678901234567890123456789012"

func TestPasetoMakerRoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker: %v", err)
	}

	tokenStr, err := maker.CreateToken("T. Moyo", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}
	if tokenStr == "" {
		t.Fatalf("CreateToken returned an empty token")
	}

	payload, err := maker.VerifyToken(tokenStr)
	if err != nil {
		t.Fatalf("VerifyToken: %v", err)
	}
	if payload.StaffName != "T. Moyo" {
		t.Fatalf("staff name: got %q, want %q", payload.StaffName, "T. Moyo")
	}
	if !payload.ExpiredAt.After(payload.IssuedAt) {
		t.Fatalf("expiry %v is not after issue %v", payload.ExpiredAt, payload.IssuedAt)
	}
}

func TestPasetoMakerRejectsExpiredToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker: %v", err)
	}

	tokenStr, err := maker.CreateToken("T. Moyo", time.Millisecond)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	if _, err := maker.VerifyToken(tokenStr); err == nil {
		t.Fatalf("expired token was accepted")
	}
}

func TestPasetoMakerRejectsTamperedToken(t *testing.T) {
	maker, err := NewPasetoMaker(testSymmetricKey)
	if err != nil {
		t.Fatalf("NewPasetoMaker: %v", err)
	}

	tokenStr, err := maker.CreateToken("T. Moyo", time.Minute)
	if err != nil {
		t.Fatalf("CreateToken: %v", err)
	}

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	if _, err := maker.VerifyToken(tampered); err == nil {
		t.Fatalf("tampered token was accepted")
	}
}

func TestNewPasetoMakerRejectsShortKey(t *testing.T) {
	if _, err := NewPasetoMaker("too-short"); err == nil {
		t.Fatalf("short key was accepted")
	} else if !strings.Contains(err.Error(), "invalid key size") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewPayloadValidation(t *testing.T) {
	if _, err := NewPayload("", time.Minute); err == nil {
		t.Fatalf("empty staff name was accepted")
	}
	if _, err := NewPayload("T. Moyo", 0); err == nil {
		t.Fatalf("zero duration was accepted")
	}
}
