// Package kafka implements the outbound command publisher over Kafka.
// Messages are JSON-encoded and keyed by order ID so all messages for one
// order land on the same partition, preserving per-order ordering.
package kafka

import (
	"beerorders/internal/core/domain/model/order"
)

// OrderMessage is the wire representation of an order shared by the
// validate, allocate and deallocate commands.
type OrderMessage struct {
	ID          string             `json:"id"`
	CustomerRef string             `json:"customerRef,omitempty"`
	Lines       []OrderLineMessage `json:"lines"`
}

// OrderLineMessage is the wire representation of one order line.
type OrderLineMessage struct {
	ID                string `json:"id"`
	UPC               string `json:"upc"`
	OrderQuantity     int    `json:"orderQuantity"`
	QuantityAllocated int    `json:"quantityAllocated"`
}

// ValidateOrderRequest asks the validation service to check an order.
type ValidateOrderRequest struct {
	Order OrderMessage `json:"beerOrder"`
}

// AllocateOrderRequest asks the inventory service to allocate an order.
type AllocateOrderRequest struct {
	Order OrderMessage `json:"beerOrder"`
}

// DeallocateOrderRequest asks the inventory service to release an order's
// allocated inventory.
type DeallocateOrderRequest struct {
	Order OrderMessage `json:"beerOrder"`
}

// ValidationFailedNotification announces that an order failed validation.
type ValidationFailedNotification struct {
	OrderID string `json:"orderId"`
}

// AllocationFailedNotification announces that an order could not be allocated.
type AllocationFailedNotification struct {
	OrderID string `json:"orderId"`
}

func toOrderMessage(aggregate *order.Order) OrderMessage {
	msg := OrderMessage{
		ID:          aggregate.ID().String(),
		CustomerRef: aggregate.CustomerRef(),
		Lines:       make([]OrderLineMessage, 0, len(aggregate.Lines())),
	}

	for _, line := range aggregate.Lines() {
		msg.Lines = append(msg.Lines, OrderLineMessage{
			ID:                line.ID().String(),
			UPC:               line.UPC(),
			OrderQuantity:     line.OrderQuantity(),
			QuantityAllocated: line.AllocatedQuantity(),
		})
	}

	return msg
}
