package order_test

import (
	"testing"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLine(t *testing.T, quantity int) *order.Line {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), "0631234200036", quantity)
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{newTestLine(t, 5)})
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("creates_valid_line", func(t *testing.T) {
		id := kernel.NewUUID()
		line, err := order.NewLine(id, "0631234200036", 6)

		require.NoError(t, err)
		assert.True(t, line.ID().IsEqual(id))
		assert.Equal(t, "0631234200036", line.UPC())
		assert.Equal(t, 6, line.OrderQuantity())
		assert.Equal(t, 0, line.AllocatedQuantity())
		require.NoError(t, line.Validate())
	})

	t.Run("rejects_invalid_id", func(t *testing.T) {
		_, err := order.NewLine(kernel.UUID{}, "0631234200036", 6)
		require.Error(t, err)
	})

	t.Run("rejects_empty_upc", func(t *testing.T) {
		_, err := order.NewLine(kernel.NewUUID(), "", 6)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		for _, quantity := range []int{0, -1} {
			_, err := order.NewLine(kernel.NewUUID(), "0631234200036", quantity)
			require.Error(t, err)
		}
	})

	t.Run("zero_value_line_fails_validation", func(t *testing.T) {
		var line order.Line
		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestRestoreLine(t *testing.T) {
	t.Run("restores_allocated_quantity", func(t *testing.T) {
		line, err := order.RestoreLine(kernel.NewUUID(), "0631234200036", 6, 4)

		require.NoError(t, err)
		assert.Equal(t, 4, line.AllocatedQuantity())
	})

	t.Run("rejects_allocation_above_ordered", func(t *testing.T) {
		_, err := order.RestoreLine(kernel.NewUUID(), "0631234200036", 6, 7)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects_negative_allocation", func(t *testing.T) {
		_, err := order.RestoreLine(kernel.NewUUID(), "0631234200036", 6, -1)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_order_in_new_status", func(t *testing.T) {
		id := kernel.NewUUID()
		customerID := kernel.NewUUID()
		lines := []*order.Line{newTestLine(t, 3)}

		o, err := order.NewOrder(id, customerID, "tasting-room", lines)

		require.NoError(t, err)
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.CustomerID().IsEqual(customerID))
		assert.Equal(t, "tasting-room", o.CustomerRef())
		assert.Equal(t, order.New, o.Status())
		assert.Equal(t, 0, o.Version())
		assert.Len(t, o.Lines(), 1)
		require.NoError(t, o.Validate())
	})

	t.Run("allows_empty_customer_ref", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{newTestLine(t, 1)})

		require.NoError(t, err)
		assert.Empty(t, o.CustomerRef())
	})

	t.Run("rejects_missing_lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_invalid_customer_id", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, "", []*order.Line{newTestLine(t, 1)})
		require.Error(t, err)
	})

	t.Run("rejects_unconstructed_line", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{{}})
		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("zero_value_order_fails_validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("restores_status_and_version", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "ref-42",
			order.AllocationPending, 3,
			[]*order.Line{newTestLine(t, 2)},
		)

		require.NoError(t, err)
		assert.Equal(t, order.AllocationPending, o.Status())
		assert.Equal(t, 3, o.Version())
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			order.Unknown, 0,
			[]*order.Line{newTestLine(t, 2)},
		)
		require.Error(t, err)
	})

	t.Run("rejects_negative_version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			order.New, -1,
			[]*order.Line{newTestLine(t, 2)},
		)
		require.Error(t, err)
	})
}

func TestOrder_Apply(t *testing.T) {
	t.Run("advances_status_and_returns_transition", func(t *testing.T) {
		o := newTestOrder(t)

		transition, err := o.Apply(order.EventValidateOrder)

		require.NoError(t, err)
		assert.Equal(t, order.ValidationPending, o.Status())
		assert.Equal(t, order.ActionPublishValidateOrder, transition.Action)
	})

	t.Run("illegal_event_leaves_order_unchanged", func(t *testing.T) {
		o := newTestOrder(t)

		_, err := o.Apply(order.EventPickedUp)

		require.ErrorIs(t, err, errs.ErrIllegalStateTransition)
		assert.Equal(t, order.New, o.Status())
	})

	t.Run("compensation_owed_when_cancelling_allocated_order", func(t *testing.T) {
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), "",
			order.Allocated, 4,
			[]*order.Line{newTestLine(t, 2)},
		)
		require.NoError(t, err)

		transition, err := o.Apply(order.EventCancelOrder)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, order.ActionPublishDeallocateOrder, transition.Action)
	})
}

func TestOrder_RecordAllocation(t *testing.T) {
	t.Run("sets_allocated_quantity_on_matching_line", func(t *testing.T) {
		line := newTestLine(t, 5)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{line})
		require.NoError(t, err)

		require.NoError(t, o.RecordAllocation(line.ID(), 5))
		assert.Equal(t, 5, line.AllocatedQuantity())
	})

	t.Run("unknown_line_id_is_a_noop", func(t *testing.T) {
		line := newTestLine(t, 5)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{line})
		require.NoError(t, err)

		require.NoError(t, o.RecordAllocation(kernel.NewUUID(), 3))
		assert.Equal(t, 0, line.AllocatedQuantity())
	})

	t.Run("rejects_allocation_above_ordered_quantity", func(t *testing.T) {
		line := newTestLine(t, 5)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{line})
		require.NoError(t, err)

		err = o.RecordAllocation(line.ID(), 6)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Equal(t, 0, line.AllocatedQuantity())
	})

	t.Run("reapplying_same_quantity_is_idempotent", func(t *testing.T) {
		line := newTestLine(t, 5)
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "", []*order.Line{line})
		require.NoError(t, err)

		require.NoError(t, o.RecordAllocation(line.ID(), 4))
		require.NoError(t, o.RecordAllocation(line.ID(), 4))
		assert.Equal(t, 4, line.AllocatedQuantity())
	})
}
