// Package order provides domain entities and business logic for beer order
// fulfillment. It implements the Order aggregate root together with the
// finite-state machine that drives the fulfillment saga.
//
// The package includes:
//   - Order: The aggregate root owning identity, customer reference, version, and lines
//   - Line: A requested beer with ordered and allocated quantities
//   - Status and Event: The lifecycle states and the events that move between them
//   - The transition table and a transient Machine that interprets it
//
// Key business rules:
//   - Orders are created in the New status and advance exactly once per accepted event
//   - Any (status, event) pair absent from the transition table is rejected, never
//     silently applied — late and duplicate events are expected under at-least-once delivery
//   - Allocated quantities never exceed ordered quantities
//   - Cancellation from a state holding inventory owes a compensating deallocation
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
