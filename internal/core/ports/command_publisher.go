package ports

import (
	"context"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
)

// CommandPublisher sends commands and failure notifications to the
// remote validation and allocation collaborators. Implementations must
// not assume exactly-once delivery; every message carries the order ID
// so consumers can correlate replies.
type CommandPublisher interface {
	// PublishValidateOrder asks the validation service to check the order.
	PublishValidateOrder(ctx context.Context, aggregate *order.Order) error

	// PublishAllocateOrder asks the inventory service to allocate the
	// order's lines.
	PublishAllocateOrder(ctx context.Context, aggregate *order.Order) error

	// PublishDeallocateOrder compensates a cancelled order by returning
	// its allocated inventory.
	PublishDeallocateOrder(ctx context.Context, aggregate *order.Order) error

	// PublishValidationFailed notifies interested parties that an order
	// failed validation.
	PublishValidationFailed(ctx context.Context, orderID kernel.UUID) error

	// PublishAllocationFailed notifies interested parties that an order
	// could not be allocated.
	PublishAllocationFailed(ctx context.Context, orderID kernel.UUID) error
}
