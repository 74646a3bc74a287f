package kernel

import (
	"fmt"

	"medpanda/internal/pkg/errs"
)

// Role identifies the kind of actor performing an operation.
// Roles arrive from the identity service with every request and drive
// the authorization rules of the order state machine.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders, cancels them and confirms receipt.
	RoleCustomer

	// RolePharmacy prepares orders and broadcasts delivery requests.
	RolePharmacy

	// RoleDelivery accepts delivery requests and completes deliveries.
	RoleDelivery

	// RoleAdmin may perform any status transition.
	RoleAdmin
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:  "unknown",
		RoleCustomer: "customer",
		RolePharmacy: "pharmacy",
		RoleDelivery: "delivery",
		RoleAdmin:    "admin",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer: "customer",
		RolePharmacy: "pharmacy",
		RoleDelivery: "delivery",
		RoleAdmin:    "admin",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns an error if the string does not name a known role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation of the role.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
