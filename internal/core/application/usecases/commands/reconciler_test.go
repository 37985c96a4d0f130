package commands_test

import (
	"testing"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func TestAllocationReconciler_CopiesReportedQuantities(t *testing.T) {
	lineA := kernel.NewUUID()
	lineB := kernel.NewUUID()
	aggregate := twoLineOrder(t, lineA, lineB)

	reconciler := commands.NewAllocationReconciler()
	err := reconciler.Reconcile(aggregate, []commands.AllocatedLine{
		{LineID: lineA, AllocatedQuantity: 6},
		{LineID: lineB, AllocatedQuantity: 4},
	})
	require.NoError(t, err)
	require.Equal(t, 6, aggregate.Line(lineA).AllocatedQuantity())
	require.Equal(t, 4, aggregate.Line(lineB).AllocatedQuantity())
}

func TestAllocationReconciler_UnmentionedLinesKeepTheirQuantity(t *testing.T) {
	lineA := kernel.NewUUID()
	lineB := kernel.NewUUID()
	aggregate := twoLineOrder(t, lineA, lineB)

	reconciler := commands.NewAllocationReconciler()
	require.NoError(t, reconciler.Reconcile(aggregate, []commands.AllocatedLine{
		{LineID: lineA, AllocatedQuantity: 6},
	}))
	require.Equal(t, 6, aggregate.Line(lineA).AllocatedQuantity())
	require.Equal(t, 0, aggregate.Line(lineB).AllocatedQuantity())
}

func TestAllocationReconciler_UnknownLineIsSkipped(t *testing.T) {
	lineA := kernel.NewUUID()
	lineB := kernel.NewUUID()
	aggregate := twoLineOrder(t, lineA, lineB)

	reconciler := commands.NewAllocationReconciler()
	err := reconciler.Reconcile(aggregate, []commands.AllocatedLine{
		{LineID: kernel.NewUUID(), AllocatedQuantity: 3},
		{LineID: lineA, AllocatedQuantity: 6},
	})
	require.NoError(t, err)
	require.Equal(t, 6, aggregate.Line(lineA).AllocatedQuantity())
}

func TestAllocationReconciler_IsIdempotent(t *testing.T) {
	lineA := kernel.NewUUID()
	lineB := kernel.NewUUID()
	aggregate := twoLineOrder(t, lineA, lineB)

	report := []commands.AllocatedLine{
		{LineID: lineA, AllocatedQuantity: 5},
		{LineID: lineB, AllocatedQuantity: 8},
	}

	reconciler := commands.NewAllocationReconciler()
	require.NoError(t, reconciler.Reconcile(aggregate, report))
	require.NoError(t, reconciler.Reconcile(aggregate, report))
	require.Equal(t, 5, aggregate.Line(lineA).AllocatedQuantity())
	require.Equal(t, 8, aggregate.Line(lineB).AllocatedQuantity())
}

func TestAllocationReconciler_RejectsOverAllocation(t *testing.T) {
	lineA := kernel.NewUUID()
	lineB := kernel.NewUUID()
	aggregate := twoLineOrder(t, lineA, lineB)

	reconciler := commands.NewAllocationReconciler()
	err := reconciler.Reconcile(aggregate, []commands.AllocatedLine{
		{LineID: lineA, AllocatedQuantity: 100},
	})
	require.Error(t, err)
}

func twoLineOrder(t *testing.T, lineA, lineB kernel.UUID) *order.Order {
	t.Helper()

	first, err := order.RestoreLine(lineA, "0631234200036", 6, 0)
	require.NoError(t, err)
	second, err := order.RestoreLine(lineB, "0631234300019", 12, 0)
	require.NoError(t, err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "test-ref",
		order.AllocationPending, 1, []*order.Line{first, second},
	)
	require.NoError(t, err)
	return aggregate
}
