package ports

import (
	"context"
	"time"
)

// OTPStore holds short-lived phone verification codes.
// Codes expire after their TTL and are consumed on successful verification,
// so each issued code can be used at most once.
type OTPStore interface {
	// Put stores the code for the phone number, replacing any previous
	// code, with the given time-to-live.
	Put(ctx context.Context, phone string, code string, ttl time.Duration) error

	// Verify checks the code for the phone number. A match consumes the
	// stored code. Returns false for a mismatch, an expired code, or a
	// phone with no pending code.
	Verify(ctx context.Context, phone string, code string) (bool, error)
}
