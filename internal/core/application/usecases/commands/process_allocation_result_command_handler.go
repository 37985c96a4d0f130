package commands

import (
	"context"

	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
)

// ProcessAllocationResultCommandHandler advances an order when the
// inventory service reports an allocation outcome. The reported quantities
// are folded into the same transaction as the status change, so a lost
// optimistic race never leaves quantities from a stale read behind.
type ProcessAllocationResultCommandHandler struct {
	saga       sagaEngine
	reconciler AllocationReconciler
}

// NewProcessAllocationResultCommandHandler creates a handler for allocation
// results. Requires an OrderUoWFactory for transactional persistence and a
// CommandPublisher for failure notifications.
func NewProcessAllocationResultCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.CommandPublisher,
) ProcessAllocationResultCommandHandler {
	return ProcessAllocationResultCommandHandler{
		saga:       newSagaEngine(uowFactory, publisher),
		reconciler: NewAllocationReconciler(),
	}
}

// Handle applies the allocation outcome. A failed attempt carries no
// quantities and only moves the status; success and partial allocation
// reconcile quantities first, then fire the matching event.
func (h *ProcessAllocationResultCommandHandler) Handle(ctx context.Context, cmd ProcessAllocationResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.AllocationError() {
		return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventAllocationFailed, nil)
	}

	event := order.EventAllocationSuccess
	if cmd.PendingInventory() {
		event = order.EventAllocationNoInventory
	}

	return h.saga.applyEvent(ctx, cmd.OrderID(), event, func(aggregate *order.Order) error {
		return h.reconciler.Reconcile(aggregate, cmd.Lines())
	})
}
