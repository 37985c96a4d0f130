package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand represents a customer collecting an allocated order.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command to mark an order as picked up.
// Returns an error if the order ID is invalid.
func NewPickUpOrderCommand(orderID kernel.UUID) (PickUpOrderCommand, error) {
	pickUpCommand := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := pickUpCommand.setOrderID(orderID); err != nil {
		return PickUpOrderCommand{}, err
	}

	return pickUpCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPickUpOrderCommandIsNotConstructed if validation fails.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c PickUpOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *PickUpOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
