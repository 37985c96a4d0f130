package order

import "beerorders/internal/pkg/errs"

// Action identifies the side effect a transition owes to the outside world.
// The state machine itself never performs the side effect; it only names it,
// and the orchestrator dispatches the matching outbound command. This keeps
// the transition table pure and directly testable.
type Action int

const (
	// ActionNone means the transition has no outbound side effect.
	ActionNone Action = iota

	// ActionPublishValidateOrder dispatches a validate request to the
	// validation collaborator.
	ActionPublishValidateOrder

	// ActionPublishAllocateOrder dispatches an allocate request to the
	// inventory collaborator.
	ActionPublishAllocateOrder

	// ActionPublishDeallocateOrder dispatches a deallocate request releasing
	// inventory held by an order that is being cancelled. This is the saga's
	// compensating action.
	ActionPublishDeallocateOrder

	// ActionNotifyValidationFailed publishes a validation failure notice.
	ActionNotifyValidationFailed

	// ActionNotifyAllocationFailed publishes an allocation failure notice.
	ActionNotifyAllocationFailed
)

// Transition describes one legal (status, event) pair: the status the order
// moves to and the action owed when the transition is taken.
type Transition struct {
	From   Status
	Event  Event
	To     Status
	Action Action
}

// transitions is the complete transition table for the order lifecycle.
// Any (status, event) pair not present here is illegal and is rejected.
//
// Cancellation is accepted from every non-terminal status. The compensating
// deallocate fires only when the order already holds inventory: fully
// (Allocated) or partially (PendingInventory) — a partial allocation still
// reserves stock at the inventory collaborator, so it must be released too.
var transitions = map[Status]map[Event]Transition{
	New: {
		EventValidateOrder: {From: New, Event: EventValidateOrder, To: ValidationPending, Action: ActionPublishValidateOrder},
		EventCancelOrder:   {From: New, Event: EventCancelOrder, To: Cancelled, Action: ActionNone},
	},
	ValidationPending: {
		EventValidationPassed: {From: ValidationPending, Event: EventValidationPassed, To: Validated, Action: ActionNone},
		EventValidationFailed: {From: ValidationPending, Event: EventValidationFailed, To: ValidationException, Action: ActionNotifyValidationFailed},
		EventCancelOrder:      {From: ValidationPending, Event: EventCancelOrder, To: Cancelled, Action: ActionNone},
	},
	Validated: {
		EventAllocateOrder: {From: Validated, Event: EventAllocateOrder, To: AllocationPending, Action: ActionPublishAllocateOrder},
		EventCancelOrder:   {From: Validated, Event: EventCancelOrder, To: Cancelled, Action: ActionNone},
	},
	AllocationPending: {
		EventAllocationSuccess:     {From: AllocationPending, Event: EventAllocationSuccess, To: Allocated, Action: ActionNone},
		EventAllocationNoInventory: {From: AllocationPending, Event: EventAllocationNoInventory, To: PendingInventory, Action: ActionNone},
		EventAllocationFailed:      {From: AllocationPending, Event: EventAllocationFailed, To: AllocationException, Action: ActionNotifyAllocationFailed},
		EventCancelOrder:           {From: AllocationPending, Event: EventCancelOrder, To: Cancelled, Action: ActionNone},
	},
	Allocated: {
		EventPickedUp:    {From: Allocated, Event: EventPickedUp, To: PickedUp, Action: ActionNone},
		EventCancelOrder: {From: Allocated, Event: EventCancelOrder, To: Cancelled, Action: ActionPublishDeallocateOrder},
	},
	PendingInventory: {
		EventCancelOrder: {From: PendingInventory, Event: EventCancelOrder, To: Cancelled, Action: ActionPublishDeallocateOrder},
	},
}

// Next looks up the transition for the given status and event.
// It returns false when the pair is illegal, leaving rejection handling to
// the caller; the table itself never advances anything.
func Next(from Status, event Event) (Transition, bool) {
	t, ok := transitions[from][event]
	return t, ok
}

// Machine is a transient state machine instance seeded with an order's
// persisted status. It is rehydrated from storage before every event and
// discarded afterwards; the persisted status is the single source of truth,
// so no Machine value outlives a single event application.
type Machine struct {
	current Status
}

// NewMachine creates a machine seeded with the given status.
func NewMachine(current Status) Machine {
	return Machine{current: current}
}

// Current returns the machine's current status.
func (m *Machine) Current() Status {
	return m.current
}

// Fire applies one event. On a legal transition the machine advances to the
// target status and returns the transition taken. On an illegal pair the
// machine stays where it is and an IllegalStateTransitionError is returned;
// this is an expected condition under at-least-once delivery and callers
// normally log it rather than propagate it.
func (m *Machine) Fire(event Event) (Transition, error) {
	t, ok := Next(m.current, event)
	if !ok {
		return Transition{}, errs.NewIllegalStateTransitionError(m.current.String(), event.String())
	}

	m.current = t.To
	return t, nil
}
