package token

import "time"

// Maker is the contract for creating and verifying session tokens, so the
// PASETO implementation can be swapped without touching callers.
type Maker interface {
	CreateToken(staffName string, duration time.Duration) (string, error)

	VerifyToken(token string) (*Payload, error)
}
