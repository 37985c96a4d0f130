package order

import (
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a beer order in the system. It is the aggregate root that
// tracks one customer's requested lines through the fulfillment saga:
// validation, inventory allocation, pickup, and cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Must carry at least one line; the Order owns its lines
//   - Status is always one of the defined states and changes only through
//     Apply, which consults the state machine — never by direct mutation
//   - Version is an optimistic-concurrency counter maintained by the store;
//     a save whose version no longer matches the persisted row is rejected
//
// The Order struct uses private fields to ensure encapsulation and maintains
// its invariants through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the placing customer
	customerID kernel.UUID

	// customerRef is an optional caller-supplied correlation reference
	customerRef string

	// status is the current state in the fulfillment lifecycle
	status Status

	// version is the optimistic-concurrency revision of the persisted record
	version int

	// lines are the requested beers; the order owns them
	lines []*Line

	// isConstructed ensures the order was created via NewOrder or RestoreOrder
	isConstructed bool
}

// NewOrder creates a new Order in the New status with version zero.
// This is the only way to create a valid order for submission; the
// orchestrator assigns a fresh identity and forces the initial status here
// regardless of what the caller supplied.
//
// Returns a validation error if any identifier is invalid or no lines are
// given. The customer reference may be empty.
func NewOrder(id kernel.UUID, customerID kernel.UUID, customerRef string, lines []*Line) (*Order, error) {
	order := &Order{
		customerRef:   customerRef,
		status:        New,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence with its stored status
// and version. Used by the repository layer when rehydrating aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	customerRef string,
	status Status,
	version int,
	lines []*Line,
) (*Order, error) {
	order, err := NewOrder(id, customerID, customerRef, lines)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version is negative")
	}

	order.status = status
	order.version = version
	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the placing customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CustomerRef returns the caller-supplied correlation reference.
// It is empty when the caller did not supply one.
func (o *Order) CustomerRef() string {
	return o.customerRef
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic-concurrency revision of the order.
func (o *Order) Version() int {
	return o.version
}

// Lines returns the order's lines. Callers must not mutate the returned
// entities except through Order methods.
func (o *Order) Lines() []*Line {
	return o.lines
}

// Line returns the line with the given id, or nil if the order has no such line.
func (o *Order) Line(id kernel.UUID) *Line {
	for _, line := range o.lines {
		if line.ID().IsEqual(id) {
			return line
		}
	}
	return nil
}

// Apply advances the order by one event. It rehydrates a transient state
// machine from the current status, fires the event, and on a legal
// transition adopts the target status and returns the transition taken —
// including the outbound action owed by the caller.
//
// On an illegal (status, event) pair the order is left unchanged and an
// IllegalStateTransitionError is returned. Late and duplicate result events
// land here under at-least-once delivery, so callers treat that error as a
// warning, not a failure.
func (o *Order) Apply(event Event) (Transition, error) {
	machine := NewMachine(o.status)
	transition, err := machine.Fire(event)
	if err != nil {
		return Transition{}, err
	}

	o.status = machine.Current()
	return transition, nil
}

// RecordAllocation sets the allocated quantity of the line with the given id.
// Lines not mentioned by an allocation result are left unchanged, so a line
// id with no match is a no-op rather than an error; the inventory
// collaborator may report lines incrementally. Overwriting with the same
// quantity is idempotent by construction.
//
// Returns a range error if the quantity is negative or exceeds the line's
// ordered quantity.
func (o *Order) RecordAllocation(lineID kernel.UUID, quantity int) error {
	line := o.Line(lineID)
	if line == nil {
		return nil
	}

	return line.setAllocatedQuantity(quantity)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []*Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = lines
	return nil
}
