package courier

import (
	"errors"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var (
	// ErrProfileIsNotConstructed is returned when a Profile was not created
	// through NewProfile or RestoreProfile.
	ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

	// ErrProfileNameIsRequired is returned when the courier name is empty.
	ErrProfileNameIsRequired = errs.NewValueIsRequiredError("name")
)

// Profile is a courier's marketplace record: contact details, current
// availability and the running delivery rating.
type Profile struct {
	id          kernel.UUID
	name        string
	vehicleType string
	phone       string
	isAvailable bool
	ratingTotal int
	ratingCount int

	guard guard.ConstructorGuard
}

// NewProfile creates an available courier profile with no ratings yet.
func NewProfile(id kernel.UUID, name, vehicleType, phone string) (*Profile, error) {
	p := &Profile{
		vehicleType: vehicleType,
		phone:       phone,
		isAvailable: true,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProfile reconstructs a courier profile from persistence.
func RestoreProfile(
	id kernel.UUID,
	name, vehicleType, phone string,
	isAvailable bool,
	ratingTotal, ratingCount int,
) (*Profile, error) {
	p, err := NewProfile(id, name, vehicleType, phone)
	if err != nil {
		return nil, err
	}

	if ratingCount < 0 || ratingTotal < 0 {
		return nil, errs.NewValueIsInvalidError("rating")
	}

	p.isAvailable = isAvailable
	p.ratingTotal = ratingTotal
	p.ratingCount = ratingCount
	return p, nil
}

// Validate ensures the Profile was created through a constructor.
func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

// ID returns the courier's unique identifier.
func (p *Profile) ID() kernel.UUID {
	return p.id
}

// Name returns the courier's display name.
func (p *Profile) Name() string {
	return p.name
}

// VehicleType returns the declared vehicle, e.g. "motorbike".
func (p *Profile) VehicleType() string {
	return p.vehicleType
}

// Phone returns the courier's contact number.
func (p *Profile) Phone() string {
	return p.phone
}

// IsAvailable reports whether the courier can take a new delivery.
func (p *Profile) IsAvailable() bool {
	return p.isAvailable
}

// RatingTotal returns the sum of all recorded ratings.
func (p *Profile) RatingTotal() int {
	return p.ratingTotal
}

// RatingCount returns the number of recorded ratings.
func (p *Profile) RatingCount() int {
	return p.ratingCount
}

// AverageRating returns the mean rating, or 0 when none were recorded.
func (p *Profile) AverageRating() float64 {
	if p.ratingCount == 0 {
		return 0
	}
	return float64(p.ratingTotal) / float64(p.ratingCount)
}

// MarkBusy flags the courier as occupied with an accepted delivery.
func (p *Profile) MarkBusy() {
	p.isAvailable = false
}

// MarkAvailable returns the courier to the pool of candidates.
func (p *Profile) MarkAvailable() {
	p.isAvailable = true
}

// RecordRating folds a customer rating between 1 and 5 into the aggregate.
func (p *Profile) RecordRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errs.NewValueIsOutOfRangeError("rating", rating, 1, 5)
	}
	p.ratingTotal += rating
	p.ratingCount++
	return nil
}

func (p *Profile) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Profile) setName(name string) error {
	if name == "" {
		return ErrProfileNameIsRequired
	}
	p.name = name
	return nil
}
