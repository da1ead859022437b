package commands

import (
	"errors"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRequestOTPCommandIsNotConstructed = errors.New(
	"RequestOTPCommand must be created via NewRequestOTPCommand constructor",
)

// RequestOTPCommand asks for a phone verification code to be issued.
// Requesting again replaces any previous pending code for the phone.
type RequestOTPCommand struct { //nolint:recvcheck //using for validation
	phone string

	guard guard.ConstructorGuard
}

// NewRequestOTPCommand creates an OTP request for the given phone number.
func NewRequestOTPCommand(phone string) (RequestOTPCommand, error) {
	cmd := RequestOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPhone(phone); err != nil {
		return RequestOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestOTPCommand) Validate() error {
	return c.guard.Validate(ErrRequestOTPCommandIsNotConstructed)
}

// Phone returns the phone number the code is issued for.
func (c RequestOTPCommand) Phone() string {
	return c.phone
}

func (c *RequestOTPCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}
