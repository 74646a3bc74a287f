package courier

import (
	"errors"
	"time"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"
	"medpanda/internal/pkg/guard"
)

var (
	// ErrRequestIsNotConstructed is returned when a Request was not created
	// through NewRequest or RestoreRequest.
	ErrRequestIsNotConstructed = errors.New("Request must be created via NewRequest constructor")
)

// RequestStatus is the lifecycle of a delivery request. A request starts
// Pending and resolves exactly once, to Accepted or Rejected.
type RequestStatus int

const (
	// RequestStatusUnknown is the zero value and never valid.
	RequestStatusUnknown RequestStatus = iota
	// RequestPending means the courier has not responded yet.
	RequestPending
	// RequestAccepted means the courier won the broadcast.
	RequestAccepted
	// RequestRejected means the courier declined or lost the broadcast.
	RequestRejected
)

func getRequestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestStatusUnknown: "unknown",
		RequestPending:       "pending",
		RequestAccepted:      "accepted",
		RequestRejected:      "rejected",
	}
}

func getValidRequestStatusStrings() map[string]RequestStatus {
	return map[string]RequestStatus{
		"pending":  RequestPending,
		"accepted": RequestAccepted,
		"rejected": RequestRejected,
	}
}

// RequestStatusFromString parses the storage representation of a status.
func RequestStatusFromString(s string) (RequestStatus, error) {
	status, ok := getValidRequestStatusStrings()[s]
	if !ok {
		return RequestStatusUnknown, errs.NewValueIsInvalidError("requestStatus")
	}
	return status, nil
}

// Validate reports whether the status is one of the defined values.
func (s RequestStatus) Validate() error {
	if _, ok := getValidRequestStatusStrings()[s.String()]; !ok {
		return errs.NewValueIsInvalidError("requestStatus")
	}
	return nil
}

// String returns the storage representation of the status.
func (s RequestStatus) String() string {
	str, ok := getRequestStatusStrings()[s]
	if !ok {
		return "unknown"
	}
	return str
}

// OrderSummary is the snapshot of order facts shown to couriers when
// deciding on a request. It is copied at broadcast time so the offer stays
// stable even if the order row changes afterwards.
type OrderSummary struct {
	Total     kernel.Money
	ItemCount int
	Address   string
}

// Request is a single pharmacy-to-courier delivery offer.
type Request struct {
	id          kernel.UUID
	orderID     kernel.UUID
	courierID   kernel.UUID
	pharmacyID  kernel.UUID
	status      RequestStatus
	summary     OrderSummary
	requestedAt time.Time
	respondedAt *time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a pending offer for one courier.
func NewRequest(
	id, orderID, courierID, pharmacyID kernel.UUID,
	summary OrderSummary,
	requestedAt time.Time,
) (*Request, error) {
	r := &Request{
		status:      RequestPending,
		summary:     summary,
		requestedAt: requestedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setOrderID(orderID),
		r.setCourierID(courierID),
		r.setPharmacyID(pharmacyID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest reconstructs a request from persistence.
func RestoreRequest(
	id, orderID, courierID, pharmacyID kernel.UUID,
	status RequestStatus,
	summary OrderSummary,
	requestedAt time.Time,
	respondedAt *time.Time,
) (*Request, error) {
	r, err := NewRequest(id, orderID, courierID, pharmacyID, summary, requestedAt)
	if err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	r.respondedAt = respondedAt
	return r, nil
}

// Validate ensures the Request was created through a constructor.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *Request) ID() kernel.UUID {
	return r.id
}

// OrderID returns the order this request offers to deliver.
func (r *Request) OrderID() kernel.UUID {
	return r.orderID
}

// CourierID returns the courier the offer was made to.
func (r *Request) CourierID() kernel.UUID {
	return r.courierID
}

// PharmacyID returns the pharmacy that broadcast the offer.
func (r *Request) PharmacyID() kernel.UUID {
	return r.pharmacyID
}

// Status returns the request's current status.
func (r *Request) Status() RequestStatus {
	return r.status
}

// Summary returns the order snapshot taken at broadcast time.
func (r *Request) Summary() OrderSummary {
	return r.summary
}

// RequestedAt returns when the offer was broadcast.
func (r *Request) RequestedAt() time.Time {
	return r.requestedAt
}

// RespondedAt returns when the courier responded, or nil while pending.
func (r *Request) RespondedAt() *time.Time {
	return r.respondedAt
}

// IsPending reports whether the request still awaits a response.
func (r *Request) IsPending() bool {
	return r.status == RequestPending
}

// Accept resolves the request in the courier's favor. A request that was
// already resolved cannot be accepted again.
func (r *Request) Accept(now time.Time) error {
	if r.status != RequestPending {
		return errs.NewAlreadyProcessedError("deliveryRequest", r.id.String())
	}
	r.status = RequestAccepted
	r.respondedAt = &now
	return nil
}

// Reject resolves the request as declined or lost.
func (r *Request) Reject(now time.Time) error {
	if r.status != RequestPending {
		return errs.NewAlreadyProcessedError("deliveryRequest", r.id.String())
	}
	r.status = RequestRejected
	r.respondedAt = &now
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.orderID = id
	return nil
}

func (r *Request) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.courierID = id
	return nil
}

func (r *Request) setPharmacyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.pharmacyID = id
	return nil
}
