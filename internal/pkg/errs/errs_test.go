package errs_test

import (
	"errors"
	"testing"

	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("phone")

		assert.Equal(t, "phone", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: phone", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("phone", cause)

		assert.Equal(t, "phone", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: phone (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)

		assert.Equal(t, "rating", err.ParamName)
		assert.Equal(t, 6, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 6 is rating, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("quantity", -5, 1, 100, cause)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is quantity, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("address")

		assert.Equal(t, "address", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: address", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("address", cause)

		assert.Equal(t, "address", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: address (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestActorForbiddenError(t *testing.T) {
	t.Run("NewActorForbiddenError", func(t *testing.T) {
		err := errs.NewActorForbiddenError("user-1", "cancel order")

		assert.Equal(t, "user-1", err.ActorID)
		assert.Equal(t, "cancel order", err.Action)
		require.NoError(t, err.Cause)
		assert.Equal(t, "actor is not allowed: cancel order", err.Error())
		assert.Equal(t, errs.ErrActorForbidden, err.Unwrap())
	})

	t.Run("NewActorForbiddenErrorWithCause", func(t *testing.T) {
		cause := errors.New("order belongs to another customer")
		err := errs.NewActorForbiddenErrorWithCause("user-1", "cancel order", cause)

		assert.Equal(t, "user-1", err.ActorID)
		assert.Equal(t, "cancel order", err.Action)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"actor is not allowed: actor is: user-1, action is: cancel order (cause: order belongs to another customer)",
			err.Error())
		assert.Equal(t, errs.ErrActorForbidden, err.Unwrap())
	})
}

func TestTransitionIsInvalidError(t *testing.T) {
	t.Run("NewTransitionIsInvalidError", func(t *testing.T) {
		err := errs.NewTransitionIsInvalidError("Delivered", "Cancelled")

		assert.Equal(t, "Delivered", err.From)
		assert.Equal(t, "Cancelled", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "transition is invalid: Delivered -> Cancelled", err.Error())
		assert.Equal(t, errs.ErrTransitionIsInvalid, err.Unwrap())
	})

	t.Run("NewTransitionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("order already left the pharmacy")
		err := errs.NewTransitionIsInvalidErrorWithCause("Out for Delivery", "Cancelled", cause)

		assert.Equal(t, "Out for Delivery", err.From)
		assert.Equal(t, "Cancelled", err.To)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"transition is invalid: Out for Delivery -> Cancelled (cause: order already left the pharmacy)",
			err.Error())
		assert.Equal(t, errs.ErrTransitionIsInvalid, err.Unwrap())
	})
}

func TestAlreadyProcessedError(t *testing.T) {
	t.Run("NewAlreadyProcessedError", func(t *testing.T) {
		err := errs.NewAlreadyProcessedError("deliveryRequest", "456")

		assert.Equal(t, "deliveryRequest", err.ParamName)
		assert.Equal(t, "456", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object already processed: 456", err.Error())
		assert.Equal(t, errs.ErrAlreadyProcessed, err.Unwrap())
	})

	t.Run("NewAlreadyProcessedErrorWithCause", func(t *testing.T) {
		cause := errors.New("another courier accepted first")
		err := errs.NewAlreadyProcessedErrorWithCause("deliveryRequest", "456", cause)

		assert.Equal(t, "deliveryRequest", err.ParamName)
		assert.Equal(t, "456", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object already processed: param is: deliveryRequest, ID is: 456 (cause: another courier accepted first)",
			err.Error())
		assert.Equal(t, errs.ErrAlreadyProcessed, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrActorForbidden)
		require.Error(t, errs.ErrTransitionIsInvalid)
		require.Error(t, errs.ErrAlreadyProcessed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "actor is not allowed", errs.ErrActorForbidden.Error())
		assert.Equal(t, "transition is invalid", errs.ErrTransitionIsInvalid.Error())
		assert.Equal(t, "object already processed", errs.ErrAlreadyProcessed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("orderId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("phone")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("rating", 6, 1, 5)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("address")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		actorForbiddenErr := errs.NewActorForbiddenError("user-1", "cancel order")
		require.ErrorIs(t, actorForbiddenErr, errs.ErrActorForbidden)

		transitionInvalidErr := errs.NewTransitionIsInvalidError("Delivered", "Cancelled")
		require.ErrorIs(t, transitionInvalidErr, errs.ErrTransitionIsInvalid)

		alreadyProcessedErr := errs.NewAlreadyProcessedError("deliveryRequest", "456")
		require.ErrorIs(t, alreadyProcessedErr, errs.ErrAlreadyProcessed)
	})
}
