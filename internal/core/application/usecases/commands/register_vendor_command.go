package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterVendorCommandIsNotConstructed = errors.New(
	"RegisterVendorCommand must be created via NewRegisterVendorCommand constructor",
)

// RegisterVendorCommand onboards a new vendor profile.
// The phone must have been verified via a pending OTP code; the initial
// GPS capture is optional.
type RegisterVendorCommand struct { //nolint:recvcheck //using for validation
	vendorID   kernel.UUID
	ownerID    kernel.UUID
	name       string
	category   string
	vendorType vendor.Type
	phone      string
	otpCode    string
	location   *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRegisterVendorCommand creates an onboarding command.
func NewRegisterVendorCommand(
	vendorID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	category string,
	vendorType vendor.Type,
	phone string,
	otpCode string,
	location *kernel.GeoPoint,
) (RegisterVendorCommand, error) {
	cmd := RegisterVendorCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setVendorType(vendorType),
		cmd.setPhone(phone),
		cmd.setOTPCode(otpCode),
		cmd.setLocation(location),
	); err != nil {
		return RegisterVendorCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterVendorCommand) Validate() error {
	return c.guard.Validate(ErrRegisterVendorCommandIsNotConstructed)
}

// VendorID returns the identifier for the vendor to be created.
func (c RegisterVendorCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// OwnerID returns the identifier of the user who owns the profile.
func (c RegisterVendorCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the vendor's display name.
func (c RegisterVendorCommand) Name() string {
	return c.name
}

// Category returns the vendor's trade category.
func (c RegisterVendorCommand) Category() string {
	return c.category
}

// VendorType returns whether the vendor is a moving stall or a fixed shop.
func (c RegisterVendorCommand) VendorType() vendor.Type {
	return c.vendorType
}

// Phone returns the phone number being claimed.
func (c RegisterVendorCommand) Phone() string {
	return c.phone
}

// OTPCode returns the verification code presented for the phone.
func (c RegisterVendorCommand) OTPCode() string {
	return c.otpCode
}

// Location returns the optional initial GPS capture, or nil.
func (c RegisterVendorCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *RegisterVendorCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *RegisterVendorCommand) setOwnerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("ownerID", err)
	}
	c.ownerID = id
	return nil
}

func (c *RegisterVendorCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterVendorCommand) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	c.category = category
	return nil
}

func (c *RegisterVendorCommand) setVendorType(vendorType vendor.Type) error {
	if err := vendorType.Validate(); err != nil {
		return err
	}
	c.vendorType = vendorType
	return nil
}

func (c *RegisterVendorCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *RegisterVendorCommand) setOTPCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("otpCode")
	}
	c.otpCode = code
	return nil
}

func (c *RegisterVendorCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}

	if err := location.Validate(); err != nil {
		return err
	}
	point := *location
	c.location = &point
	return nil
}
