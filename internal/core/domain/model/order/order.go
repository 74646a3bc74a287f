package order

import (
	"errors"
	"fmt"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is constructed without line items.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")

	// ErrAddressIsRequired is returned when the delivery address is empty.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")

	// ErrPhoneIsRequired is returned when the contact phone is empty.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
)

// Order is the aggregate root of the purchase lifecycle. It carries immutable
// snapshots of the purchased lines and walks the status state machine from
// Processing (set at checkout) to Delivered or Cancelled.
//
// Order follows these invariants:
//   - All items belong to exactly one pharmacy
//   - Total always equals the sum of line totals (it is derived, never stored on the aggregate)
//   - A delivery person is only ever assigned at or past Out for Delivery; staff
//     overrides may leave a late status without an assignee
//   - Status transitions follow the rules encoded in Status
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id           kernel.UUID
	customerID   kernel.UUID
	pharmacyID   kernel.UUID
	customerName string
	phone        string
	address      string
	notes        string
	items        []Item
	status       Status
	courierID    *kernel.UUID
	createdAt    time.Time
	deliveredAt  *time.Time
	confirmedAt  *time.Time

	isConstructed bool
}

// NewOrder creates an order from checkout data. The order starts in Processing
// status with no delivery person assigned.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: the purchasing customer
//   - pharmacyID: the single pharmacy all items belong to
//   - customerName: display name snapshot taken at checkout
//   - phone: contact phone for the delivery
//   - address: free-text delivery address
//   - notes: optional delivery notes
//   - items: snapshotted cart lines, at least one
//   - now: creation timestamp
func NewOrder(
	id, customerID, pharmacyID kernel.UUID,
	customerName, phone, address, notes string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		customerName:  customerName,
		notes:         notes,
		status:        Processing,
		createdAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setPhone(phone),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without re-running
// checkout rules. A delivery person on a pre-acceptance status is rejected
// as corrupt; the reverse (a late status without an assignee) is restored
// as-is, since staff overrides can legitimately write such rows.
func RestoreOrder(
	id, customerID, pharmacyID kernel.UUID,
	customerName, phone, address, notes string,
	items []Item,
	status Status,
	courierID *kernel.UUID,
	createdAt time.Time,
	deliveredAt, confirmedAt *time.Time,
) (*Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if courierID != nil && !status.RequiresCourier() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"courierID",
			fmt.Errorf("%s is not a valid status to have a delivery person", status.String()),
		)
	}

	o := &Order{
		customerName:  customerName,
		notes:         notes,
		status:        status,
		courierID:     courierID,
		createdAt:     createdAt,
		deliveredAt:   deliveredAt,
		confirmedAt:   confirmedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setPharmacyID(pharmacyID),
		o.setPhone(phone),
		o.setAddress(address),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the purchasing customer's identifier.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// PharmacyID returns the identifier of the pharmacy fulfilling the order.
func (o *Order) PharmacyID() kernel.UUID {
	return o.pharmacyID
}

// CustomerName returns the customer display name snapshot.
func (o *Order) CustomerName() string {
	return o.customerName
}

// Phone returns the delivery contact phone.
func (o *Order) Phone() string {
	return o.phone
}

// Address returns the delivery address.
func (o *Order) Address() string {
	return o.address
}

// Notes returns the optional delivery notes.
func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the order's line snapshots.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// ItemCount returns the number of line items on the order.
func (o *Order) ItemCount() int {
	return len(o.items)
}

// Total returns the sum of all line totals.
func (o *Order) Total() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned delivery person's ID.
// Returns nil if no delivery person is assigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// CreatedAt returns the checkout timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DeliveredAt returns the hand-over timestamp, nil before completion.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// ConfirmedAt returns the customer confirmation timestamp, nil before confirmation.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// MarkReadyForDelivery moves the order to Ready for Delivery as part of a
// broadcast. Only the pharmacy that owns the order may do this; re-broadcast
// from Ready for Delivery is allowed.
func (o *Order) MarkReadyForDelivery(pharmacyID kernel.UUID) error {
	if !o.pharmacyID.IsEqual(pharmacyID) {
		return errs.NewActorForbiddenError(pharmacyID.String(), "broadcast delivery")
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Assign records the winning delivery person and moves the order to
// Out for Delivery. The storage layer performs the same transition as a
// conditional update; this method keeps the in-memory aggregate consistent
// with it.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// CompleteDelivery marks the order as handed over to the customer.
// Only the assigned delivery person may complete the delivery.
func (o *Order) CompleteDelivery(courierID kernel.UUID, now time.Time) error {
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewActorForbiddenError(courierID.String(), "complete delivery")
	}

	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &now
	return nil
}

// ConfirmDelivery records the customer's receipt confirmation.
// Only the customer who placed the order may confirm it.
func (o *Order) ConfirmDelivery(customerID kernel.UUID, now time.Time) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewActorForbiddenError(customerID.String(), "confirm delivery")
	}

	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.confirmedAt = &now
	return nil
}

// Cancel cancels the order. Only the customer who placed the order may
// cancel it, and only while it is Pending or Processing.
func (o *Order) Cancel(customerID kernel.UUID) error {
	if !o.customerID.IsEqual(customerID) {
		return errs.NewActorForbiddenError(customerID.String(), "cancel order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetStatus is the generic staff entry point through the transition table.
// Pharmacy actors must own the order, delivery actors must be the assignee,
// admins may act on any order. Any table-granted target is applied
// unconditionally; moving back before Out for Delivery clears the delivery
// person assignment so the order can be re-broadcast.
func (o *Order) SetStatus(actorID kernel.UUID, role kernel.Role, target Status) error {
	switch role {
	case kernel.RolePharmacy:
		if !o.pharmacyID.IsEqual(actorID) {
			return errs.NewActorForbiddenError(actorID.String(), "update order status")
		}
	case kernel.RoleDelivery:
		if o.courierID == nil || !o.courierID.IsEqual(actorID) {
			return errs.NewActorForbiddenError(actorID.String(), "update order status")
		}
	default:
		// customers are rejected by TransitionTo, admins pass
	}

	newStatus, err := o.status.TransitionTo(target, role)
	if err != nil {
		return err
	}

	if !newStatus.RequiresCourier() {
		o.courierID = nil
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.pharmacyID = id
	return nil
}

func (o *Order) setPhone(phone string) error {
	if phone == "" {
		return ErrPhoneIsRequired
	}
	o.phone = phone
	return nil
}

func (o *Order) setAddress(address string) error {
	if address == "" {
		return ErrAddressIsRequired
	}
	o.address = address
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
