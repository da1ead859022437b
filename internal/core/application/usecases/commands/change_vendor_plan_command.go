package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/vendor"
	"marketplace/internal/pkg/guard"
)

var ErrChangeVendorPlanCommandIsNotConstructed = errors.New(
	"ChangeVendorPlanCommand must be created via NewChangeVendorPlanCommand constructor",
)

// ChangeVendorPlanCommand is the back-office assigning a subscription plan.
// Billing happens outside the system; this only records the tier.
type ChangeVendorPlanCommand struct { //nolint:recvcheck //using for validation
	vendorID kernel.UUID
	plan     vendor.Plan

	guard guard.ConstructorGuard
}

// NewChangeVendorPlanCommand creates a plan assignment command.
func NewChangeVendorPlanCommand(vendorID kernel.UUID, plan vendor.Plan) (ChangeVendorPlanCommand, error) {
	cmd := ChangeVendorPlanCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setVendorID(vendorID),
		cmd.setPlan(plan),
	); err != nil {
		return ChangeVendorPlanCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeVendorPlanCommand) Validate() error {
	return c.guard.Validate(ErrChangeVendorPlanCommandIsNotConstructed)
}

// VendorID returns the identifier of the vendor changing plan.
func (c ChangeVendorPlanCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// Plan returns the plan to assign.
func (c ChangeVendorPlanCommand) Plan() vendor.Plan {
	return c.plan
}

func (c *ChangeVendorPlanCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.vendorID = id
	return nil
}

func (c *ChangeVendorPlanCommand) setPlan(plan vendor.Plan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	c.plan = plan
	return nil
}
