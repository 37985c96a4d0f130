package commands

import (
	"context"

	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
)

// PickUpOrderCommandHandler marks an allocated order as collected.
// Pickup is only legal from the allocated status; anything else is a
// rejected no-op.
type PickUpOrderCommandHandler struct {
	saga sagaEngine
}

// NewPickUpOrderCommandHandler creates a handler for order pickup.
func NewPickUpOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.CommandPublisher,
) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		saga: newSagaEngine(uowFactory, publisher),
	}
}

// Handle processes the pickup command.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventPickedUp, nil)
}
