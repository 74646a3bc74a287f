package order_test

import (
	"testing"

	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/core/domain/model/order"
	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusStrings(t *testing.T) {
	cases := map[order.Status]string{
		order.Pending:              "Pending",
		order.Processing:           "Processing",
		order.ReadyForDelivery:     "Ready for Delivery",
		order.OutForDelivery:       "Out for Delivery",
		order.AwaitingConfirmation: "Awaiting Confirmation",
		order.Delivered:            "Delivered",
		order.Cancelled:            "Cancelled",
	}

	for status, str := range cases {
		assert.Equal(t, str, status.String())

		parsed, err := order.StatusFromString(str)
		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	t.Run("unknown_string_is_rejected", func(t *testing.T) {
		_, err := order.StatusFromString("Shipped")
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_is_invalid", func(t *testing.T) {
		var s order.Status
		require.Error(t, s.Validate())
		assert.Equal(t, "Unknown", s.String())
	})
}

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Cancelled.IsTerminal())
	assert.False(t, order.Pending.IsTerminal())
	assert.False(t, order.OutForDelivery.IsTerminal())
}

func TestStatusMarkReady(t *testing.T) {
	t.Run("from_processing", func(t *testing.T) {
		newStatus, err := order.Processing.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDelivery, newStatus)
	})

	t.Run("rebroadcast_from_ready", func(t *testing.T) {
		newStatus, err := order.ReadyForDelivery.MarkReady()
		require.NoError(t, err)
		assert.Equal(t, order.ReadyForDelivery, newStatus)
	})

	t.Run("invalid_sources", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.OutForDelivery, order.AwaitingConfirmation, order.Delivered, order.Cancelled,
		} {
			_, err := s.MarkReady()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		}
	})
}

func TestStatusAccept(t *testing.T) {
	t.Run("from_ready_for_delivery", func(t *testing.T) {
		newStatus, err := order.ReadyForDelivery.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.OutForDelivery, newStatus)
	})

	t.Run("invalid_sources", func(t *testing.T) {
		for _, s := range []order.Status{
			order.Pending, order.Processing, order.OutForDelivery, order.Delivered, order.Cancelled,
		} {
			_, err := s.Accept()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		}
	})
}

func TestStatusCompleteAndConfirm(t *testing.T) {
	t.Run("complete_from_out_for_delivery", func(t *testing.T) {
		newStatus, err := order.OutForDelivery.Complete()
		require.NoError(t, err)
		assert.Equal(t, order.AwaitingConfirmation, newStatus)
	})

	t.Run("confirm_from_awaiting_confirmation", func(t *testing.T) {
		newStatus, err := order.AwaitingConfirmation.Confirm()
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, newStatus)
	})

	t.Run("confirm_requires_completion_first", func(t *testing.T) {
		_, err := order.OutForDelivery.Confirm()
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
	})

	t.Run("delivered_is_final", func(t *testing.T) {
		_, err := order.Delivered.Complete()
		require.Error(t, err)
		_, err = order.Delivered.Confirm()
		require.Error(t, err)
	})
}

func TestStatusCancel(t *testing.T) {
	t.Run("legal_from_pending_and_processing", func(t *testing.T) {
		for _, s := range []order.Status{order.Pending, order.Processing} {
			newStatus, err := s.Cancel()
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("illegal_once_broadcast_or_later", func(t *testing.T) {
		for _, s := range []order.Status{
			order.ReadyForDelivery, order.OutForDelivery, order.AwaitingConfirmation, order.Delivered, order.Cancelled,
		} {
			_, err := s.Cancel()
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrTransitionIsInvalid)
		}
	})
}

func TestStatusTransitionTo(t *testing.T) {
	t.Run("admin_may_set_any_valid_status", func(t *testing.T) {
		for _, target := range []order.Status{
			order.Pending, order.Processing, order.ReadyForDelivery,
			order.OutForDelivery, order.AwaitingConfirmation, order.Delivered, order.Cancelled,
		} {
			newStatus, err := order.Processing.TransitionTo(target, kernel.RoleAdmin)
			require.NoError(t, err)
			assert.Equal(t, target, newStatus)
		}
	})

	t.Run("pharmacy_allowed_targets", func(t *testing.T) {
		for _, target := range []order.Status{order.Pending, order.Processing, order.OutForDelivery} {
			_, err := order.Pending.TransitionTo(target, kernel.RolePharmacy)
			require.NoError(t, err)
		}
	})

	t.Run("pharmacy_forbidden_targets", func(t *testing.T) {
		for _, target := range []order.Status{order.Delivered, order.Cancelled, order.AwaitingConfirmation} {
			_, err := order.Processing.TransitionTo(target, kernel.RolePharmacy)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrActorForbidden)
		}
	})

	t.Run("delivery_allowed_targets", func(t *testing.T) {
		for _, target := range []order.Status{order.OutForDelivery, order.Delivered} {
			_, err := order.OutForDelivery.TransitionTo(target, kernel.RoleDelivery)
			require.NoError(t, err)
		}
	})

	t.Run("delivery_forbidden_targets", func(t *testing.T) {
		_, err := order.OutForDelivery.TransitionTo(order.Cancelled, kernel.RoleDelivery)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})

	t.Run("customer_has_no_generic_access", func(t *testing.T) {
		_, err := order.Processing.TransitionTo(order.Cancelled, kernel.RoleCustomer)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrActorForbidden)
	})

	t.Run("unknown_target_is_validation_error_even_for_admin", func(t *testing.T) {
		_, err := order.Processing.TransitionTo(order.Status(42), kernel.RoleAdmin)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatusRequiresCourier(t *testing.T) {
	for _, s := range []order.Status{order.Pending, order.Processing, order.ReadyForDelivery, order.Cancelled} {
		assert.False(t, s.RequiresCourier(), s.String())
	}
	for _, s := range []order.Status{order.OutForDelivery, order.AwaitingConfirmation, order.Delivered} {
		assert.True(t, s.RequiresCourier(), s.String())
	}
}
