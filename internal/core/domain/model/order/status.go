package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct pickup workflow.
//
// State transitions:
//
//	Placed ──┬──> Accepted ──┬──> Preparing ──> Ready ──> Completed
//	         │               │
//	         └──> Cancelled <┘
//
// Cancellation is only reachable from Placed and Accepted: once preparation
// has begun the vendor has already sunk cost into the order. There is no
// skip-ahead; each transition must be explicit so vendor actions leave an
// audit trail. Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Placed is the initial status when a customer checks out.
	// The order is waiting for the vendor to accept or cancel it.
	Placed

	// Accepted indicates the vendor has confirmed the order.
	Accepted

	// Preparing indicates the vendor has started preparing the order.
	// From this point on cancellation is no longer allowed.
	Preparing

	// Ready indicates the order is ready for pickup.
	Ready

	// Completed indicates the order was picked up. Terminal.
	Completed

	// Cancelled indicates the order was called off before preparation. Terminal.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Placed:    "placed",
		Accepted:  "accepted",
		Preparing: "preparing",
		Ready:     "ready",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// getTransitions returns the allowed next states per status.
// Terminal states map to an empty set.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Placed:    {Accepted, Cancelled},
		Accepted:  {Preparing, Cancelled},
		Preparing: {Ready},
		Ready:     {Completed},
		Completed: {},
		Cancelled: {},
	}
}

// Validate checks if the Status value is one of the six defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "Unknown"
// for invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a wire name into a Status.
// Returns an invalid-value error for unrecognized names.
func StatusFromString(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid", fmt.Errorf("%q is not a valid status name", name))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransition reports whether moving from the current status to next
// is permitted by the transition table. Invalid statuses on either side
// always yield false; no error is signaled, matching the check-then-act
// design where illegal transitions are simply refused.
func (s Status) CanTransition(next Status) bool {
	allowed, ok := getTransitions()[s]
	if !ok {
		return false
	}
	for _, candidate := range allowed {
		if candidate == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition is permitted.
// Returns an invalid-value error naming both states otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if !s.CanTransition(next) {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), next.String()),
		)
	}

	return next, nil
}
