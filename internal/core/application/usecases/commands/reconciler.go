package commands

import (
	"log/slog"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

// AllocatedLine reports the quantity the inventory service allocated for
// one order line.
type AllocatedLine struct {
	LineID            kernel.UUID
	AllocatedQuantity int
}

// AllocationReconciler copies reported allocated quantities onto the
// matching lines of an order aggregate. Reconciliation is a pure quantity
// copy: lines the report does not mention keep their previous quantity,
// reported lines with no counterpart on the order are skipped, and
// re-running the same report is a no-op. Status changes are the state
// machine's business, never the reconciler's.
type AllocationReconciler struct {
	log *slog.Logger
}

// NewAllocationReconciler creates a reconciler for allocation results.
func NewAllocationReconciler() AllocationReconciler {
	return AllocationReconciler{
		log: slog.Default().With("component", "allocation-reconciler"),
	}
}

// Reconcile records each reported quantity on the aggregate. A reported
// quantity outside the line's ordered range aborts with the range error;
// partial allocation (quantity below the ordered amount) is legitimate.
func (r AllocationReconciler) Reconcile(aggregate *order.Order, lines []AllocatedLine) error {
	for _, line := range lines {
		if aggregate.Line(line.LineID) == nil {
			r.log.Warn("allocation result references unknown line",
				"orderID", aggregate.ID().String(),
				"lineID", line.LineID.String(),
			)
			continue
		}

		if err := aggregate.RecordAllocation(line.LineID, line.AllocatedQuantity); err != nil {
			return err
		}
	}

	return nil
}
