package order

import (
	"fmt"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Processing ──> Ready for Delivery ──> Out for Delivery
//	   │             │              (re-broadcast          │
//	   │             │               allowed)              ▼
//	   │             │                          Awaiting Confirmation
//	   ▼             ▼                                     │
//	Cancelled    Cancelled                                 ▼
//	                                                   Delivered
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the earliest status an order can hold, before the
	// pharmacy has started working on it.
	Pending

	// Processing indicates the pharmacy is preparing the order.
	// Checkout creates orders directly in this status.
	Processing

	// ReadyForDelivery indicates the order is packed and delivery
	// requests have been broadcast to delivery persons.
	ReadyForDelivery

	// OutForDelivery indicates a delivery person accepted the order
	// and is carrying it to the customer.
	OutForDelivery

	// AwaitingConfirmation indicates the delivery person handed the
	// order over and the customer has not yet confirmed receipt.
	AwaitingConfirmation

	// Delivered indicates the customer confirmed receipt.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the customer cancelled the order before it
	// left the pharmacy. This is a final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// The string forms are the exact values exchanged with clients and stored in reports.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:              "Unknown",
		Pending:              "Pending",
		Processing:           "Processing",
		ReadyForDelivery:     "Ready for Delivery",
		OutForDelivery:       "Out for Delivery",
		AwaitingConfirmation: "Awaiting Confirmation",
		Delivered:            "Delivered",
		Cancelled:            "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:              "Pending",
		Processing:           "Processing",
		ReadyForDelivery:     "Ready for Delivery",
		OutForDelivery:       "Out for Delivery",
		AwaitingConfirmation: "Awaiting Confirmation",
		Delivered:            "Delivered",
		Cancelled:            "Cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Returns an error if the string does not name a known status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// MarkReady transitions the status to ReadyForDelivery.
//
// Valid transitions:
//   - Processing -> ReadyForDelivery (first broadcast)
//   - ReadyForDelivery -> ReadyForDelivery (re-broadcast after all requests were rejected)
//
// Returns:
//   - (ReadyForDelivery, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) MarkReady() (Status, error) {
	if s != Processing && s != ReadyForDelivery {
		return 0, errs.NewTransitionIsInvalidError(s.String(), ReadyForDelivery.String())
	}
	return ReadyForDelivery, nil
}

// Accept transitions the status to OutForDelivery.
//
// Valid transitions:
//   - ReadyForDelivery -> OutForDelivery (a delivery person accepted a request)
//
// Returns:
//   - (OutForDelivery, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Accept() (Status, error) {
	if s != ReadyForDelivery {
		return 0, errs.NewTransitionIsInvalidError(s.String(), OutForDelivery.String())
	}
	return OutForDelivery, nil
}

// Complete transitions the status to AwaitingConfirmation.
//
// Valid transitions:
//   - OutForDelivery -> AwaitingConfirmation (delivery person handed the order over)
//
// Returns:
//   - (AwaitingConfirmation, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Complete() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewTransitionIsInvalidError(s.String(), AwaitingConfirmation.String())
	}
	return AwaitingConfirmation, nil
}

// Confirm transitions the status to Delivered.
//
// Valid transitions:
//   - AwaitingConfirmation -> Delivered (customer confirmed receipt)
//
// Returns:
//   - (Delivered, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Confirm() (Status, error) {
	if s != AwaitingConfirmation {
		return 0, errs.NewTransitionIsInvalidError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Processing -> Cancelled
//
// Once the order reaches ReadyForDelivery it can no longer be cancelled.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if transition is not allowed from current status
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Processing {
		return 0, errs.NewTransitionIsInvalidError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// TransitionTo is the generic status update entry point used by the staff
// endpoints. It checks that the target status is known and that the acting
// role is permitted to set it:
//
//   - admin: any valid target
//   - pharmacy: Pending, Processing, OutForDelivery
//   - delivery: OutForDelivery, Delivered
//   - customer: none (customers act through cancel/confirm operations)
//
// Returns:
//   - (target, nil) when the transition is permitted
//   - (0, validation error) for an unknown target status
//   - (0, authorization error) when the role may not set the target
func (s Status) TransitionTo(target Status, role kernel.Role) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed := map[kernel.Role][]Status{
		kernel.RolePharmacy: {Pending, Processing, OutForDelivery},
		kernel.RoleDelivery: {OutForDelivery, Delivered},
	}

	if role == kernel.RoleAdmin {
		return target, nil
	}

	for _, t := range allowed[role] {
		if t == target {
			return target, nil
		}
	}

	return 0, errs.NewActorForbiddenErrorWithCause(
		role.String(),
		"update order status",
		fmt.Errorf("role %s may not set status %s", role, target),
	)
}

// RequiresCourier reports whether orders in this status normally carry a
// delivery person assignment. Statuses before acceptance (and Cancelled)
// do not; OutForDelivery and later do. Staff overrides may leave an order
// in a late status without an assignee, so this is a classification, not
// a hard invariant.
func (s Status) RequiresCourier() bool {
	return s == OutForDelivery || s == AwaitingConfirmation || s == Delivered
}
