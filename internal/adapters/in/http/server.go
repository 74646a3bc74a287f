// Package http exposes the marketplace operations over a JSON API.
// The acting principal arrives in headers set by the API gateway after
// authentication; this adapter only parses them and never decides
// authorization itself.
package http

import (
	"errors"
	"net/http"
	"time"

	"medpanda/internal/core/application/usecases/commands"
	"medpanda/internal/core/application/usecases/queries"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"
	headerUserName = "X-User-Name"
)

// Error is the JSON error body returned by every endpoint.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addToCartHandler        commands.AddToCartCommandHandler
	updateCartHandler       commands.UpdateCartCommandHandler
	checkoutHandler         commands.CheckoutCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	broadcastHandler        commands.BroadcastDeliveryCommandHandler
	acceptRequestHandler    commands.AcceptDeliveryRequestCommandHandler
	rejectRequestHandler    commands.RejectDeliveryRequestCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler
	confirmDeliveryHandler  commands.ConfirmDeliveryCommandHandler
	setOrderStatusHandler   commands.SetOrderStatusCommandHandler
	rateDeliveryHandler     commands.RateDeliveryCommandHandler
	reorderHandler          commands.ReorderCommandHandler

	// Query handlers
	getCustomerOrdersHandler  queries.GetCustomerOrdersQueryHandler
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addToCartHandler commands.AddToCartCommandHandler,
	updateCartHandler commands.UpdateCartCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	broadcastHandler commands.BroadcastDeliveryCommandHandler,
	acceptRequestHandler commands.AcceptDeliveryRequestCommandHandler,
	rejectRequestHandler commands.RejectDeliveryRequestCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	rateDeliveryHandler commands.RateDeliveryCommandHandler,
	reorderHandler commands.ReorderCommandHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getPendingRequestsHandler queries.GetPendingRequestsQueryHandler,
) *Server {
	return &Server{
		addToCartHandler:          addToCartHandler,
		updateCartHandler:         updateCartHandler,
		checkoutHandler:           checkoutHandler,
		cancelOrderHandler:        cancelOrderHandler,
		broadcastHandler:          broadcastHandler,
		acceptRequestHandler:      acceptRequestHandler,
		rejectRequestHandler:      rejectRequestHandler,
		completeDeliveryHandler:   completeDeliveryHandler,
		confirmDeliveryHandler:    confirmDeliveryHandler,
		setOrderStatusHandler:     setOrderStatusHandler,
		rateDeliveryHandler:       rateDeliveryHandler,
		reorderHandler:            reorderHandler,
		getCustomerOrdersHandler:  getCustomerOrdersHandler,
		getPendingRequestsHandler: getPendingRequestsHandler,
	}
}

// RegisterRoutes attaches every endpoint to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/cart/items", s.AddToCart)
	v1.PATCH("/cart/items/:medicineID", s.UpdateCart)

	v1.POST("/orders", s.Checkout)
	v1.GET("/orders", s.GetCustomerOrders)
	v1.POST("/orders/:orderID/cancel", s.CancelOrder)
	v1.POST("/orders/:orderID/broadcast", s.BroadcastDelivery)
	v1.POST("/orders/:orderID/complete", s.CompleteDelivery)
	v1.POST("/orders/:orderID/confirm", s.ConfirmDelivery)
	v1.POST("/orders/:orderID/status", s.SetOrderStatus)
	v1.POST("/orders/:orderID/rating", s.RateDelivery)
	v1.POST("/orders/:orderID/reorder", s.Reorder)

	v1.GET("/delivery/requests", s.GetPendingRequests)
	v1.POST("/delivery/requests/:requestID/accept", s.AcceptDeliveryRequest)
	v1.POST("/delivery/requests/:requestID/reject", s.RejectDeliveryRequest)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
}

// principal is the authenticated actor extracted from gateway headers.
type principal struct {
	ID   kernel.UUID
	Role kernel.Role
	Name string
}

func (s *Server) principal(ctx echo.Context) (principal, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerUserID))
	if err != nil {
		return principal{}, err
	}

	role, err := kernel.RoleFromString(ctx.Request().Header.Get(headerUserRole))
	if err != nil {
		return principal{}, err
	}

	return principal{
		ID:   id,
		Role: role,
		Name: ctx.Request().Header.Get(headerUserName),
	}, nil
}

// AddToCart handles POST /api/v1/cart/items.
func (s *Server) AddToCart(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body struct {
		MedicineID string `json:"medicineId"`
		Quantity   int    `json:"quantity"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	medicineID, err := kernel.UUIDFromString(body.MedicineID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAddToCartCommand(actor.ID, medicineID, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.addToCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCart handles PATCH /api/v1/cart/items/:medicineID.
func (s *Server) UpdateCart(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	medicineID, err := kernel.UUIDFromString(ctx.Param("medicineID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCartCommand(actor.ID, medicineID, body.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateCartHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/orders.
func (s *Server) Checkout(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	var body struct {
		Phone       string   `json:"phone"`
		Address     string   `json:"address"`
		Notes       string   `json:"notes"`
		MedicineIDs []string `json:"medicineIds"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	medicineIDs := make([]kernel.UUID, 0, len(body.MedicineIDs))
	for _, raw := range body.MedicineIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		medicineIDs = append(medicineIDs, id)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(
		orderID, actor.ID,
		actor.Name, body.Phone, body.Address, body.Notes,
		medicineIDs,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.checkoutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"orderId": orderID.String()})
}

// GetCustomerOrders handles GET /api/v1/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetCustomerOrdersQuery(actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type orderJSON struct {
		ID         string    `json:"id"`
		Status     string    `json:"status"`
		TotalCents int64     `json:"totalCents"`
		ItemCount  int       `json:"itemCount"`
		Address    string    `json:"address"`
		CourierID  *string   `json:"courierId,omitempty"`
		CreatedAt  time.Time `json:"createdAt"`
	}

	response := make([]orderJSON, 0, len(orders))
	for _, o := range orders {
		var courierID *string
		if o.CourierID != nil {
			raw := o.CourierID.String()
			courierID = &raw
		}
		response = append(response, orderJSON{
			ID:         o.ID.String(),
			Status:     o.Status.String(),
			TotalCents: o.Total.Cents(),
			ItemCount:  o.ItemCount,
			Address:    o.Address,
			CourierID:  courierID,
			CreatedAt:  o.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/:orderID/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID, actor principal) error {
		cmd, err := commands.NewCancelOrderCommand(orderID, actor.ID)
		if err != nil {
			return err
		}
		return s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// BroadcastDelivery handles POST /api/v1/orders/:orderID/broadcast.
func (s *Server) BroadcastDelivery(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewBroadcastDeliveryCommand(orderID, actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	reached, err := s.broadcastHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"couriersNotified": reached})
}

// CompleteDelivery handles POST /api/v1/orders/:orderID/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID, actor principal) error {
		cmd, err := commands.NewCompleteDeliveryCommand(orderID, actor.ID)
		if err != nil {
			return err
		}
		return s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// ConfirmDelivery handles POST /api/v1/orders/:orderID/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	return s.handleOrderAction(ctx, func(orderID kernel.UUID, actor principal) error {
		cmd, err := commands.NewConfirmDeliveryCommand(orderID, actor.ID)
		if err != nil {
			return err
		}
		return s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// SetOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Status string `json:"status"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(orderID, actor.ID, actor.Role, status)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateDelivery handles POST /api/v1/orders/:orderID/rating.
func (s *Server) RateDelivery(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	var body struct {
		Rating int `json:"rating"`
	}
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateDeliveryCommand(orderID, actor.ID, body.Rating)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.rateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Reorder handles POST /api/v1/orders/:orderID/reorder.
func (s *Server) Reorder(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewReorderCommand(orderID, actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	staged, err := s.reorderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]int{"itemsStaged": staged})
}

// GetPendingRequests handles GET /api/v1/delivery/requests.
func (s *Server) GetPendingRequests(ctx echo.Context) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetPendingRequestsQuery(actor.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	requests, err := s.getPendingRequestsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	type requestJSON struct {
		ID          string    `json:"id"`
		OrderID     string    `json:"orderId"`
		TotalCents  int64     `json:"totalCents"`
		ItemCount   int       `json:"itemCount"`
		Address     string    `json:"address"`
		RequestedAt time.Time `json:"requestedAt"`
	}

	response := make([]requestJSON, 0, len(requests))
	for _, r := range requests {
		response = append(response, requestJSON{
			ID:          r.ID.String(),
			OrderID:     r.OrderID.String(),
			TotalCents:  r.Total.Cents(),
			ItemCount:   r.ItemCount,
			Address:     r.Address,
			RequestedAt: r.RequestedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDeliveryRequest handles POST /api/v1/delivery/requests/:requestID/accept.
func (s *Server) AcceptDeliveryRequest(ctx echo.Context) error {
	return s.handleRequestAction(ctx, func(requestID kernel.UUID, actor principal) error {
		cmd, err := commands.NewAcceptDeliveryRequestCommand(requestID, actor.ID)
		if err != nil {
			return err
		}
		return s.acceptRequestHandler.Handle(ctx.Request().Context(), cmd)
	})
}

// RejectDeliveryRequest handles POST /api/v1/delivery/requests/:requestID/reject.
func (s *Server) RejectDeliveryRequest(ctx echo.Context) error {
	return s.handleRequestAction(ctx, func(requestID kernel.UUID, actor principal) error {
		cmd, err := commands.NewRejectDeliveryRequestCommand(requestID, actor.ID)
		if err != nil {
			return err
		}
		return s.rejectRequestHandler.Handle(ctx.Request().Context(), cmd)
	})
}

func (s *Server) handleOrderAction(ctx echo.Context, action func(kernel.UUID, principal) error) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderID"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = action(orderID, actor); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleRequestAction(ctx echo.Context, action func(kernel.UUID, principal) error) error {
	actor, err := s.principal(ctx)
	if err != nil {
		return unauthorized(ctx)
	}

	requestID, err := kernel.UUIDFromString(ctx.Param("requestID"))
	if err != nil {
		return writeError(ctx, err)
	}

	if err = action(requestID, actor); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func unauthorized(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, Error{
		Code:    "unauthorized",
		Message: "Missing or invalid identity headers",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    "bad-request",
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	var (
		notFoundErr         *errs.ObjectNotFoundError
		forbiddenErr        *errs.ActorForbiddenError
		transitionErr       *errs.TransitionIsInvalidError
		alreadyProcessedErr *errs.AlreadyProcessedError
		requiredErr         *errs.ValueIsRequiredError
		invalidErr          *errs.ValueIsInvalidError
		outOfRangeErr       *errs.ValueIsOutOfRangeError
	)

	switch {
	case errors.As(err, &notFoundErr):
		return ctx.JSON(http.StatusNotFound, Error{Code: "not-found", Message: err.Error()})
	case errors.As(err, &forbiddenErr):
		return ctx.JSON(http.StatusForbidden, Error{Code: "forbidden", Message: err.Error()})
	case errors.As(err, &transitionErr):
		return ctx.JSON(http.StatusConflict, Error{Code: "invalid-transition", Message: err.Error()})
	case errors.As(err, &alreadyProcessedErr):
		return ctx.JSON(http.StatusConflict, Error{Code: "already-processed", Message: err.Error()})
	case errors.As(err, &requiredErr), errors.As(err, &invalidErr), errors.As(err, &outOfRangeErr):
		return ctx.JSON(http.StatusBadRequest, Error{Code: "validation-error", Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    "internal",
			Message: "Internal server error",
		})
	}
}
