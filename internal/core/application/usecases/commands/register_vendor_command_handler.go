package commands

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOTPCodeIsInvalid is returned when the presented code does not match
	// the pending code for the phone, or no code is pending.
	ErrOTPCodeIsInvalid = errors.New("verification code is invalid or expired")

	// ErrPhoneIsAlreadyRegistered is returned when another vendor already
	// holds the phone number being claimed.
	ErrPhoneIsAlreadyRegistered = errors.New("phone is already registered to a vendor")
)

// RegisterVendorCommandHandler handles vendor onboarding.
// Phone ownership is proven by the OTP code; the profile starts unverified
// and offline so it stays invisible until an admin approves it and the
// vendor opens up.
type RegisterVendorCommandHandler struct {
	uowFactory VendorUoWFactory
	otpStore   ports.OTPStore
}

// NewRegisterVendorCommandHandler creates a handler for vendor onboarding.
func NewRegisterVendorCommandHandler(
	uowFactory VendorUoWFactory,
	otpStore ports.OTPStore,
) RegisterVendorCommandHandler {
	return RegisterVendorCommandHandler{
		uowFactory: uowFactory,
		otpStore:   otpStore,
	}
}

// Handle processes the onboarding command.
// The OTP check consumes the pending code, so a failed duplicate-phone
// check afterwards means the vendor must request a fresh code to retry.
func (h *RegisterVendorCommandHandler) Handle(ctx context.Context, cmd RegisterVendorCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	ok, err := h.otpStore.Verify(ctx, cmd.Phone(), cmd.OTPCode())
	if err != nil {
		return err
	}
	if !ok {
		return ErrOTPCodeIsInvalid
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	vendorRepo := uow.VendorRepository()

	_, err = vendorRepo.GetByPhone(ctx, cmd.Phone())
	if err == nil {
		return ErrPhoneIsAlreadyRegistered
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	newVendor, err := vendor.NewVendor(
		cmd.VendorID(),
		cmd.OwnerID(),
		cmd.Name(),
		cmd.Category(),
		cmd.VendorType(),
		cmd.Phone(),
		cmd.Location(),
	)
	if err != nil {
		return err
	}

	if err = vendorRepo.Add(ctx, newVendor); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
