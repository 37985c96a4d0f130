package commands

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/guard"
)

var (
	ErrSubmitOrderCommandIsNotConstructed = errors.New(
		"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
	)
	ErrLinesAreRequired  = errors.New("at least one order line is required")
	ErrUPCIsRequired     = errors.New("upc is required")
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// LineSpec describes one requested order line.
type LineSpec struct {
	LineID   kernel.UUID
	UPC      string
	Quantity int
}

// SubmitOrderCommand represents a request to place a new beer order.
// Encapsulates the customer reference and the requested lines.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewSubmitOrderCommand(orderID, customerID, "web-1234", lines)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewSubmitOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
//	fmt.Printf("Order %s submitted and sent for validation", orderID)
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	customerID  kernel.UUID
	customerRef string
	lines       []LineSpec

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to place a new beer order.
// Validates that both IDs are valid, at least one line is present, and
// every line carries a UPC and a positive quantity. The customer reference
// is optional. Returns an error if any validation fails.
func NewSubmitOrderCommand(
	orderID kernel.UUID,
	customerID kernel.UUID,
	customerRef string,
	lines []LineSpec,
) (SubmitOrderCommand, error) {
	submitCommand := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		submitCommand.setOrderID(orderID),
		submitCommand.setCustomerID(customerID),
		submitCommand.setLines(lines),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	submitCommand.customerRef = customerRef
	return submitCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSubmitOrderCommandIsNotConstructed if validation fails.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the ordering customer.
func (c SubmitOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CustomerRef returns the customer's free-form order reference.
func (c SubmitOrderCommand) CustomerRef() string {
	return c.customerRef
}

// Lines returns the requested order lines.
func (c SubmitOrderCommand) Lines() []LineSpec {
	return c.lines
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SubmitOrderCommand) setLines(lines []LineSpec) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}

	for _, line := range lines {
		if err := line.LineID.Validate(); err != nil {
			return err
		}
		if line.UPC == "" {
			return ErrUPCIsRequired
		}
		if line.Quantity <= 0 {
			return ErrQuantityIsInvalid
		}
	}

	c.lines = lines
	return nil
}
