package kernel

import (
	"fmt"

	"medpanda/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned when validating a zero-value UUID that
// bypassed the constructor functions.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object used by every aggregate in the domain
// model. It wraps github.com/google/uuid so the rest of the model never deals
// with the library type directly.
//
// The zero value is invalid; obtain instances through NewUUID, UUIDFromString
// or UUIDFromBytes. UUID is immutable and safe for concurrent use.
//
// Example usage:
//
//	orderID := kernel.NewUUID()
//
//	customerID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier. This is how fresh
// aggregates get their IDs.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses the canonical textual form, e.g.
// "6ba7b810-9dad-11d1-80b4-00c04fd430c8". Braced and urn:uuid: variants are
// accepted as well. It is the entry point for IDs arriving from request paths
// and headers.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes restores a UUID from its 16-byte binary form, as stored by the
// postgres adapter. The nil UUID is rejected so restored aggregates always
// carry a usable identifier.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
// A zero value renders as the nil UUID string.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying uuid.UUID for persistence mapping. Domain code
// should not need it; the DTO mappers do.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether two identifiers refer to the same entity.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero (nil) UUID. Aggregate
// constructors call this on every incoming identifier.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
