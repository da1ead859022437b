package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"marketplace/internal/core/ports"
)

const (
	otpTTL    = 5 * time.Minute
	otpDigits = 6
)

// RequestOTPCommandHandler issues phone verification codes.
// The code travels over the same notification channel the rest of the
// system uses, so onboarding needs nothing beyond a phone number.
type RequestOTPCommandHandler struct {
	otpStore ports.OTPStore
	notifier ports.Notifier
}

// NewRequestOTPCommandHandler creates a handler for OTP issuance.
func NewRequestOTPCommandHandler(otpStore ports.OTPStore, notifier ports.Notifier) RequestOTPCommandHandler {
	return RequestOTPCommandHandler{
		otpStore: otpStore,
		notifier: notifier,
	}
}

// Handle processes the OTP request.
// Generates a 6-digit code, stores it with a 5 minute TTL, and sends it to
// the requesting phone. Unlike order notifications the send here is not
// best effort: a code the vendor never received is useless.
func (h *RequestOTPCommandHandler) Handle(ctx context.Context, cmd RequestOTPCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	code, err := generateOTPCode()
	if err != nil {
		return err
	}

	if err = h.otpStore.Put(ctx, cmd.Phone(), code, otpTTL); err != nil {
		return err
	}

	return h.notifier.Send(ctx, cmd.Phone(),
		fmt.Sprintf("Your verification code is %s. It expires in 5 minutes.", code))
}

func generateOTPCode() (string, error) {
	limit := big.NewInt(1)
	for range otpDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
