package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrNotifyStaleVendorsCommandIsNotConstructed = errors.New(
	"NotifyStaleVendorsCommand must be created via NewNotifyStaleVendorsCommand constructor",
)

// NotifyStaleVendorsCommand triggers reminders to online vendors whose
// last location report is older than a day. Run periodically by the job
// scheduler.
type NotifyStaleVendorsCommand struct {
	guard guard.ConstructorGuard
}

// NewNotifyStaleVendorsCommand creates a parameterless reminder sweep command.
func NewNotifyStaleVendorsCommand() NotifyStaleVendorsCommand {
	return NotifyStaleVendorsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *NotifyStaleVendorsCommand) Validate() error {
	return c.guard.Validate(ErrNotifyStaleVendorsCommandIsNotConstructed)
}
