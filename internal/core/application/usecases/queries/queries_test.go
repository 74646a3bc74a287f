package queries_test

import (
	"testing"
	"time"

	"medpanda/internal/core/application/usecases/queries"
	"medpanda/internal/core/domain/model/kernel"
	"medpanda/internal/pkg/errs"

	"github.com/stretchr/testify/require"
)

func TestGetCustomerOrdersQuery(t *testing.T) {
	t.Run("constructs_with_valid_customer", func(t *testing.T) {
		q, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("rejects_zero_customer", func(t *testing.T) {
		_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q queries.GetCustomerOrdersQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetCustomerOrdersQueryIsNotConstructed)
	})
}

func TestGetPendingRequestsQuery(t *testing.T) {
	t.Run("constructs_with_valid_courier", func(t *testing.T) {
		q, err := queries.NewGetPendingRequestsQuery(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, q.Validate())
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var q queries.GetPendingRequestsQuery
		require.ErrorIs(t, q.Validate(), queries.ErrGetPendingRequestsQueryIsNotConstructed)
	})
}

func TestGetStaleBroadcastsQuery(t *testing.T) {
	t.Run("constructs_with_positive_duration", func(t *testing.T) {
		q, err := queries.NewGetStaleBroadcastsQuery(15 * time.Minute)
		require.NoError(t, err)
		require.NoError(t, q.Validate())
		require.Equal(t, 15*time.Minute, q.OlderThan())
	})

	t.Run("rejects_non_positive_duration", func(t *testing.T) {
		_, err := queries.NewGetStaleBroadcastsQuery(0)
		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
