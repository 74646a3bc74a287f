package commands_test

import (
	"context"
	"time"

	"medpanda/internal/core/application/usecases/commands"
	"medpanda/internal/core/domain/model/cart"
	"medpanda/internal/core/domain/model/courier"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/medicine"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) AssignDelivery(ctx context.Context, orderID, courierID kernel.UUID) error {
	args := m.Called(ctx, orderID, courierID)
	return args.Error(0)
}

type MockMedicineRepository struct{ mock.Mock }

func (m *MockMedicineRepository) Add(ctx context.Context, med *medicine.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Update(ctx context.Context, med *medicine.Medicine) error {
	args := m.Called(ctx, med)
	return args.Error(0)
}

func (m *MockMedicineRepository) Get(ctx context.Context, id kernel.UUID) (*medicine.Medicine, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*medicine.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*medicine.Medicine, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*medicine.Medicine), args.Error(1)
}

func (m *MockMedicineRepository) ReserveStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockMedicineRepository) ReleaseStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, p *courier.Profile) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Profile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Profile), args.Error(1)
}

func (m *MockCourierRepository) GetAll(ctx context.Context) ([]*courier.Profile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*courier.Profile), args.Error(1)
}

type MockDeliveryRequestRepository struct{ mock.Mock }

func (m *MockDeliveryRequestRepository) Add(ctx context.Context, r *courier.Request) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Request), args.Error(1)
}

func (m *MockDeliveryRequestRepository) HasPending(ctx context.Context, orderID, courierID kernel.UUID) (bool, error) {
	args := m.Called(ctx, orderID, courierID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDeliveryRequestRepository) MarkAccepted(
	ctx context.Context,
	requestID, courierID kernel.UUID,
	respondedAt time.Time,
) error {
	args := m.Called(ctx, requestID, courierID, respondedAt)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) MarkRejected(
	ctx context.Context,
	requestID, courierID kernel.UUID,
	respondedAt time.Time,
) error {
	args := m.Called(ctx, requestID, courierID, respondedAt)
	return args.Error(0)
}

func (m *MockDeliveryRequestRepository) RejectSiblings(
	ctx context.Context,
	orderID, winnerID kernel.UUID,
	respondedAt time.Time,
) (int, error) {
	args := m.Called(ctx, orderID, winnerID, respondedAt)
	return args.Int(0), args.Error(1)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartRepository) Save(ctx context.Context, c *cart.Cart) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

// MockUoW satisfies every unit of work combination used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) MedicineRepository() ports.MedicineRepository {
	args := m.Called()
	return args.Get(0).(ports.MedicineRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) DeliveryRequestRepository() ports.DeliveryRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRequestRepository)
}

func (m *MockUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}
