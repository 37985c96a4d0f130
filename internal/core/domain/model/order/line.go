package order

import (
	"errors"
	"fmt"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
)

var (
	// ErrLineIsNotConstructed is returned when a Line instance was not created
	// through the NewLine factory method.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line represents one requested beer within an order: a product code (UPC),
// the quantity ordered, and the quantity the inventory collaborator has
// allocated so far.
//
// Line follows these invariants:
//   - Must have a valid unique identifier and a non-empty UPC
//   - Ordered quantity must be positive
//   - Allocated quantity starts at zero and never exceeds the ordered quantity
//
// Lines are created together with their Order; the allocated quantity is
// mutated only through Order.RecordAllocation, everything else is read-only
// after construction.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// upc is the product code used to look up beer metadata
	upc string

	// orderQuantity is the number of units requested (always positive)
	orderQuantity int

	// allocatedQuantity is the number of units the inventory collaborator
	// has reserved for this line so far
	allocatedQuantity int

	// isConstructed ensures the line was created via NewLine or RestoreLine
	isConstructed bool
}

// NewLine creates a new order line with a zero allocated quantity.
// Returns a validation error if the id is invalid, the UPC is empty, or the
// ordered quantity is not positive.
func NewLine(id kernel.UUID, upc string, orderQuantity int) (*Line, error) {
	line := &Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setID(id),
		line.setUPC(upc),
		line.setOrderQuantity(orderQuantity),
	); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a line from persistence, including its allocated
// quantity. It applies the same validation as NewLine plus the allocation
// bounds check, so corrupt rows are rejected on read.
func RestoreLine(id kernel.UUID, upc string, orderQuantity, allocatedQuantity int) (*Line, error) {
	line, err := NewLine(id, upc, orderQuantity)
	if err != nil {
		return nil, err
	}

	if err = line.setAllocatedQuantity(allocatedQuantity); err != nil {
		return nil, err
	}

	return line, nil
}

// Validate ensures the Line instance was properly constructed.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}

	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// UPC returns the product code of the requested beer.
func (l *Line) UPC() string {
	return l.upc
}

// OrderQuantity returns the number of units requested.
func (l *Line) OrderQuantity() int {
	return l.orderQuantity
}

// AllocatedQuantity returns the number of units allocated so far.
func (l *Line) AllocatedQuantity() int {
	return l.allocatedQuantity
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setUPC(upc string) error {
	if upc == "" {
		return errs.NewValueIsRequiredError("upc")
	}
	l.upc = upc
	return nil
}

func (l *Line) setOrderQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderQuantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.orderQuantity = quantity
	return nil
}

func (l *Line) setAllocatedQuantity(quantity int) error {
	if quantity < 0 || quantity > l.orderQuantity {
		return errs.NewValueIsOutOfRangeError("allocatedQuantity", quantity, 0, l.orderQuantity)
	}
	l.allocatedQuantity = quantity
	return nil
}
