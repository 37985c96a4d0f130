package commands

import (
	"context"

	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
)

// SubmitOrderCommandHandler handles the business logic for placing orders.
// Persists the new order and kicks off the validation leg of the saga.
//
// Example:
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, publisher)
//	cmd, _ := NewSubmitOrderCommand(orderID, customerID, "web-1234", lines)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order submission failed: %w", err)
//	}
//	// Order is persisted and the validation service has been asked to check it
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	saga       sagaEngine
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
// Requires an OrderUoWFactory for transactional persistence and a
// CommandPublisher for the outbound validation request.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.CommandPublisher,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
		saga:       newSagaEngine(uowFactory, publisher),
	}
}

// Handle processes the order submission command. The order is persisted in
// its initial status first, in its own transaction, then the validation
// event runs through the saga so the outbound request and the status change
// commit together.
func (h *SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	lines := make([]*order.Line, 0, len(cmd.Lines()))
	for _, spec := range cmd.Lines() {
		line, err := order.NewLine(spec.LineID, spec.UPC, spec.Quantity)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.CustomerRef(), lines)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.saga.applyEvent(ctx, cmd.OrderID(), order.EventValidateOrder, nil)
}
