package commands

import (
	"context"

	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
)

// CancelOrderCommandHandler cancels an in-flight order. Cancellation is
// legal from every non-terminal status; when inventory is already held the
// transition compensates by asking the inventory service to deallocate.
type CancelOrderCommandHandler struct {
	saga sagaEngine
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.CommandPublisher,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		saga: newSagaEngine(uowFactory, publisher),
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventCancelOrder, nil)
}
