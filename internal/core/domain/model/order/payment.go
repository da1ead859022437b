package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// PaymentMode records how the customer intends to settle at pickup.
// It is informational only; no payment processing happens in this system,
// settlement is physical at the stall.
type PaymentMode int

const (
	// PaymentModeUnknown represents an invalid or undefined mode.
	PaymentModeUnknown PaymentMode = iota

	// PaymentModeUPI means the customer will pay via UPI at pickup.
	PaymentModeUPI

	// PaymentModeCash means the customer will pay in cash at pickup.
	PaymentModeCash
)

func getPaymentModeStrings() map[PaymentMode]string {
	return map[PaymentMode]string{
		PaymentModeUPI:  "upi",
		PaymentModeCash: "cash",
	}
}

// Validate checks if the PaymentMode is one of the defined modes.
func (m PaymentMode) Validate() error {
	if _, ok := getPaymentModeStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment mode is invalid", fmt.Errorf("%d is not a valid payment mode", m))
	}
	return nil
}

// String returns the lowercase wire name of the mode, or "Unknown" for invalid values.
func (m PaymentMode) String() string {
	if str, ok := getPaymentModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// PaymentModeFromString parses a wire name into a PaymentMode.
func PaymentModeFromString(name string) (PaymentMode, error) {
	for mode, str := range getPaymentModeStrings() {
		if str == name {
			return mode, nil
		}
	}
	return PaymentModeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment mode is invalid", fmt.Errorf("%q is not a valid payment mode name", name))
}
