package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var ErrProcessValidationResultCommandIsNotConstructed = errors.New(
	"ProcessValidationResultCommand must be created via NewProcessValidationResultCommand constructor",
)

// ProcessValidationResultCommand carries the verdict of the remote
// validation service for one order.
type ProcessValidationResultCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	passed  bool

	guard guard.ConstructorGuard
}

// NewProcessValidationResultCommand creates a command from a validation
// result message. Returns an error if the order ID is invalid.
func NewProcessValidationResultCommand(orderID kernel.UUID, passed bool) (ProcessValidationResultCommand, error) {
	resultCommand := ProcessValidationResultCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := resultCommand.setOrderID(orderID); err != nil {
		return ProcessValidationResultCommand{}, err
	}

	resultCommand.passed = passed
	return resultCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessValidationResultCommandIsNotConstructed if validation fails.
func (c ProcessValidationResultCommand) Validate() error {
	return c.guard.Validate(ErrProcessValidationResultCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ProcessValidationResultCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Passed reports whether the order passed validation.
func (c ProcessValidationResultCommand) Passed() bool {
	return c.passed
}

func (c *ProcessValidationResultCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
