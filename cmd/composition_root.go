package cmd

import (
	"medpanda/internal/adapters/out/postgres"
	"medpanda/internal/core/application/usecases/commands"
	"medpanda/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddToCartCommandHandler() commands.AddToCartCommandHandler {
	return commands.NewAddToCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCartCommandHandler() commands.UpdateCartCommandHandler {
	return commands.NewUpdateCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateBroadcastDeliveryCommandHandler() commands.BroadcastDeliveryCommandHandler {
	return commands.NewBroadcastDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateAcceptDeliveryRequestCommandHandler() commands.AcceptDeliveryRequestCommandHandler {
	return commands.NewAcceptDeliveryRequestCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateRejectDeliveryRequestCommandHandler() commands.RejectDeliveryRequestCommandHandler {
	return commands.NewRejectDeliveryRequestCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	return commands.NewConfirmDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderStatusCommandHandler() commands.SetOrderStatusCommandHandler {
	return commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRateDeliveryCommandHandler() commands.RateDeliveryCommandHandler {
	return commands.NewRateDeliveryCommandHandler(c.deliveryUoWFactory())
}

func (c *CompositionRoot) CreateReorderCommandHandler() commands.ReorderCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReorderCommandHandler(f)
}

func (c *CompositionRoot) CreateGetCustomerOrdersQueryHandler() queries.GetCustomerOrdersQueryHandler {
	return queries.NewGetCustomerOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingRequestsQueryHandler() queries.GetPendingRequestsQueryHandler {
	return queries.NewGetPendingRequestsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetStaleBroadcastsQueryHandler() queries.GetStaleBroadcastsQueryHandler {
	return queries.NewGetStaleBroadcastsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) deliveryUoWFactory() commands.DeliveryUoWFactory {
	return FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}
