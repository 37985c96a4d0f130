package order

import (
	"fmt"

	"beerorders/internal/pkg/errs"
)

// Status represents the lifecycle state of a beer order as it moves through
// the fulfillment workflow: validation, inventory allocation, pickup.
//
// Status transitions only occur through the state machine (see Next and
// Machine); no other code mutates an order's status directly. The set of
// legal transitions is defined by the transition table in statemachine.go.
//
// Status is a value object that validates state values and provides string
// representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned when an order is first submitted.
	New

	// ValidationPending indicates a validate request has been dispatched and
	// the order is waiting for the validation result.
	ValidationPending

	// Validated indicates the remote collaborator confirmed the order is valid.
	Validated

	// ValidationException indicates validation failed. Terminal.
	ValidationException

	// AllocationPending indicates an allocate request has been dispatched and
	// the order is waiting for the allocation result.
	AllocationPending

	// Allocated indicates inventory was fully allocated against all lines.
	Allocated

	// AllocationException indicates allocation failed with an error. Terminal.
	AllocationException

	// PendingInventory indicates allocation partially succeeded; some lines
	// are waiting for stock to become available.
	PendingInventory

	// PickedUp indicates the customer collected the order. Terminal.
	PickedUp

	// Cancelled indicates the order was cancelled. Terminal.
	Cancelled

	// Delivered indicates the order left the taproom with a delivery run.
	// No transition in this service targets it; the value is kept for
	// storage and wire compatibility with the wider fulfillment flow and
	// is treated as terminal if ever observed.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:             "Unknown",
		New:                 "New",
		ValidationPending:   "ValidationPending",
		Validated:           "Validated",
		ValidationException: "ValidationException",
		AllocationPending:   "AllocationPending",
		Allocated:           "Allocated",
		AllocationException: "AllocationException",
		PendingInventory:    "PendingInventory",
		PickedUp:            "PickedUp",
		Cancelled:           "Cancelled",
		Delivered:           "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	strings := getStatusStrings()
	delete(strings, Unknown)
	return strings
}

// Validate checks if the Status value is one of the defined order states.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status admits no further automatic
// transition. Cancel requests and late result events arriving for an order
// in a terminal status are rejected by the state machine.
func (s Status) IsTerminal() bool {
	switch s {
	case ValidationException, AllocationException, PickedUp, Cancelled, Delivered:
		return true
	default:
		return false
	}
}
