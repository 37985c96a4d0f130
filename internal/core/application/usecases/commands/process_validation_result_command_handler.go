package commands

import (
	"context"

	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
)

// ProcessValidationResultCommandHandler advances an order when its
// validation verdict arrives. A pass chains straight into the allocation
// leg; a failure parks the order in its failed terminal status.
type ProcessValidationResultCommandHandler struct {
	saga sagaEngine
}

// NewProcessValidationResultCommandHandler creates a handler for validation
// results. Requires an OrderUoWFactory for transactional persistence and a
// CommandPublisher for the outbound allocation request.
func NewProcessValidationResultCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.CommandPublisher,
) ProcessValidationResultCommandHandler {
	return ProcessValidationResultCommandHandler{
		saga: newSagaEngine(uowFactory, publisher),
	}
}

// Handle applies the validation verdict. The allocation event is chained as
// its own saga step against a re-read of the order: if a concurrent cancel
// landed between the two steps the chained event is rejected as illegal in
// the new status and quietly dropped.
func (h *ProcessValidationResultCommandHandler) Handle(ctx context.Context, cmd ProcessValidationResultCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Passed() {
		return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventValidationFailed, nil)
	}

	if err := h.saga.applyEvent(ctx, cmd.OrderID(), order.EventValidationPassed, nil); err != nil {
		return err
	}

	return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventAllocateOrder, nil)
}
