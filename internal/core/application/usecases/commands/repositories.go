// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"medpanda/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MedicineRepoFactory provides access to the catalog repository within a transaction.
	MedicineRepoFactory interface {
		MedicineRepository() ports.MedicineRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// DeliveryRequestRepoFactory provides access to the delivery request repository within a transaction.
	DeliveryRequestRepoFactory interface {
		DeliveryRequestRepository() ports.DeliveryRequestRepository
	}

	// CartRepoFactory provides access to the cart repository within a transaction.
	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	// CartUoW manages transactions for cart staging operations.
	// The catalog repository is read to validate staged medicines.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MedicineRepoFactory
	}

	// CartUoWFactory creates new cart unit of work instances.
	CartUoWFactory interface {
		Create() CartUoW
	}

	// CheckoutUoW manages the checkout transaction: the cart is consumed,
	// stock is reserved and the order is created atomically.
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		MedicineRepoFactory
		OrderRepoFactory
	}

	// CheckoutUoWFactory creates new checkout unit of work instances.
	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FulfillmentUoW manages transactions that touch both the order and the
	// stock ledger, such as cancellation returning reserved stock.
	FulfillmentUoW interface {
		TxManager
		OrderRepoFactory
		MedicineRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// DeliveryUoW manages transactions across the delivery side: orders,
	// courier profiles and delivery requests.
	DeliveryUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
		DeliveryRequestRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}
)
