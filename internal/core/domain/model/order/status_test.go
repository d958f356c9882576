package order_test

import (
	"testing"

	"ruralcart/internal/core/domain/model/order"
	"ruralcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	tests := []struct {
		name    string
		status  order.Status
		wantErr bool
	}{
		{"unaccepted is valid", order.Unaccepted, false},
		{"accepted is valid", order.Accepted, false},
		{"completed is valid", order.Completed, false},
		{"delivered is valid", order.Delivered, false},
		{"unknown is invalid", order.Unknown, true},
		{"out of range is invalid", order.Status(42), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.status.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "Unaccepted", order.Unaccepted.String())
	assert.Equal(t, "Accepted", order.Accepted.String())
	assert.Equal(t, "Completed", order.Completed.String())
	assert.Equal(t, "Delivered", order.Delivered.String())
	assert.Equal(t, "Unknown", order.Status(42).String())
}

func TestStatus_Accept(t *testing.T) {
	t.Run("unaccepted_becomes_accepted", func(t *testing.T) {
		next, err := order.Unaccepted.Accept()
		require.NoError(t, err)
		assert.Equal(t, order.Accepted, next)
	})

	t.Run("non_unaccepted_conflicts", func(t *testing.T) {
		for _, status := range []order.Status{order.Accepted, order.Completed, order.Delivered, order.Unknown} {
			_, err := status.Accept()
			require.ErrorIs(t, err, errs.ErrConflict, "status %s", status)
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("necessities_terminates_in_completed", func(t *testing.T) {
		next, err := order.Accepted.Complete(order.Necessities)
		require.NoError(t, err)
		assert.Equal(t, order.Completed, next)
	})

	t.Run("agricultural_produce_terminates_in_delivered", func(t *testing.T) {
		next, err := order.Accepted.Complete(order.AgriculturalProduct)
		require.NoError(t, err)
		assert.Equal(t, order.Delivered, next)
	})

	t.Run("non_accepted_conflicts", func(t *testing.T) {
		for _, status := range []order.Status{order.Unaccepted, order.Completed, order.Delivered} {
			_, err := status.Complete(order.Necessities)
			require.ErrorIs(t, err, errs.ErrConflict, "status %s", status)
		}
	})

	t.Run("unknown_service_is_invalid", func(t *testing.T) {
		_, err := order.Accepted.Complete(order.Service("groceries"))
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Unaccepted.IsTerminal())
	assert.False(t, order.Accepted.IsTerminal())
	assert.True(t, order.Completed.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
}

func TestParseService(t *testing.T) {
	t.Run("known_services", func(t *testing.T) {
		s, err := order.ParseService("necessities")
		require.NoError(t, err)
		assert.Equal(t, order.Necessities, s)

		s, err = order.ParseService("agricultural_product")
		require.NoError(t, err)
		assert.Equal(t, order.AgriculturalProduct, s)
	})

	t.Run("unknown_service", func(t *testing.T) {
		_, err := order.ParseService("laundry")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
