package order

// Event represents a domain event that may advance an order through the
// fulfillment workflow. Events originate from synchronous callers (submit,
// pickup, cancel) or from asynchronous result messages delivered by the
// remote validation and allocation collaborators.
type Event int

const (
	// EventUnknown represents an invalid or undefined event.
	EventUnknown Event = iota

	// EventValidateOrder starts validation of a newly submitted order.
	EventValidateOrder

	// EventValidationPassed reports that the validation collaborator accepted the order.
	EventValidationPassed

	// EventValidationFailed reports that the validation collaborator rejected the order.
	EventValidationFailed

	// EventAllocateOrder starts inventory allocation for a validated order.
	EventAllocateOrder

	// EventAllocationSuccess reports that all lines were fully allocated.
	EventAllocationSuccess

	// EventAllocationNoInventory reports a partial allocation awaiting stock.
	EventAllocationNoInventory

	// EventAllocationFailed reports that allocation failed with an error.
	EventAllocationFailed

	// EventPickedUp reports that the customer collected the order.
	EventPickedUp

	// EventCancelOrder cancels the order, compensating any allocation already held.
	EventCancelOrder
)

// getEventStrings returns a map of Event values to their string representations.
func getEventStrings() map[Event]string {
	return map[Event]string{
		EventUnknown:               "Unknown",
		EventValidateOrder:         "ValidateOrder",
		EventValidationPassed:      "ValidationPassed",
		EventValidationFailed:      "ValidationFailed",
		EventAllocateOrder:         "AllocateOrder",
		EventAllocationSuccess:     "AllocationSuccess",
		EventAllocationNoInventory: "AllocationNoInventory",
		EventAllocationFailed:      "AllocationFailed",
		EventPickedUp:              "PickedUp",
		EventCancelOrder:           "CancelOrder",
	}
}

// String returns the human-readable name of the event.
// It implements the fmt.Stringer interface and is safe to call on any
// Event value, including invalid ones.
func (e Event) String() string {
	if str, ok := getEventStrings()[e]; ok {
		return str
	}
	return "Unknown"
}
