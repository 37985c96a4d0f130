package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var (
	ErrProcessAllocationResultCommandIsNotConstructed = errors.New(
		"ProcessAllocationResultCommand must be created via NewProcessAllocationResultCommand constructor",
	)
	ErrAllocatedQuantityIsInvalid = errors.New("allocated quantity must not be negative")
)

// ProcessAllocationResultCommand carries the outcome of an allocation
// attempt by the remote inventory service: the per-line allocated
// quantities plus two flags. AllocationError means the attempt failed
// outright; PendingInventory means stock covered the order only partially.
type ProcessAllocationResultCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	lines            []AllocatedLine
	allocationError  bool
	pendingInventory bool

	guard guard.ConstructorGuard
}

// NewProcessAllocationResultCommand creates a command from an allocation
// result message. Returns an error if the order ID, a line ID, or a
// reported quantity is invalid. An empty line list is legal; a failed
// attempt reports no quantities.
func NewProcessAllocationResultCommand(
	orderID kernel.UUID,
	lines []AllocatedLine,
	allocationError bool,
	pendingInventory bool,
) (ProcessAllocationResultCommand, error) {
	resultCommand := ProcessAllocationResultCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		resultCommand.setOrderID(orderID),
		resultCommand.setLines(lines),
	); err != nil {
		return ProcessAllocationResultCommand{}, err
	}

	resultCommand.allocationError = allocationError
	resultCommand.pendingInventory = pendingInventory
	return resultCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessAllocationResultCommandIsNotConstructed if validation fails.
func (c ProcessAllocationResultCommand) Validate() error {
	return c.guard.Validate(ErrProcessAllocationResultCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c ProcessAllocationResultCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Lines returns the per-line allocated quantities.
func (c ProcessAllocationResultCommand) Lines() []AllocatedLine {
	return c.lines
}

// AllocationError reports whether the allocation attempt failed.
func (c ProcessAllocationResultCommand) AllocationError() bool {
	return c.allocationError
}

// PendingInventory reports whether stock only partially covered the order.
func (c ProcessAllocationResultCommand) PendingInventory() bool {
	return c.pendingInventory
}

func (c *ProcessAllocationResultCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ProcessAllocationResultCommand) setLines(lines []AllocatedLine) error {
	for _, line := range lines {
		if err := line.LineID.Validate(); err != nil {
			return err
		}
		if line.AllocatedQuantity < 0 {
			return ErrAllocatedQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
