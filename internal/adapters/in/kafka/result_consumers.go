package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/segmentio/kafka-go"
)

// NewValidationResultConsumer consumes validation verdicts and feeds them
// to the validation result handler. Malformed messages are committed and
// dropped; only handler failures hold the offset back.
func NewValidationResultConsumer(
	reader *kafka.Reader,
	handler commands.ProcessValidationResultCommandHandler,
) *Consumer {
	return newConsumer(reader, func(ctx context.Context, msg kafka.Message) error {
		var result ValidationResult
		if err := json.Unmarshal(msg.Value, &result); err != nil {
			// poison message, do not block the partition on it
			return nil
		}

		orderID, err := kernel.UUIDFromString(result.OrderID)
		if err != nil {
			return nil
		}

		cmd, err := commands.NewProcessValidationResultCommand(orderID, result.IsValid)
		if err != nil {
			return fmt.Errorf("build validation result command: %w", err)
		}

		return handler.Handle(ctx, cmd)
	}, "validation-result-consumer")
}

// NewAllocationResultConsumer consumes allocation outcomes and feeds them
// to the allocation result handler.
func NewAllocationResultConsumer(
	reader *kafka.Reader,
	handler commands.ProcessAllocationResultCommandHandler,
) *Consumer {
	return newConsumer(reader, func(ctx context.Context, msg kafka.Message) error {
		var result AllocationResult
		if err := json.Unmarshal(msg.Value, &result); err != nil {
			return nil
		}

		orderID, err := kernel.UUIDFromString(result.Order.ID)
		if err != nil {
			return nil
		}

		lines := make([]commands.AllocatedLine, 0, len(result.Order.Lines))
		for _, line := range result.Order.Lines {
			lineID, idErr := kernel.UUIDFromString(line.ID)
			if idErr != nil {
				continue
			}
			lines = append(lines, commands.AllocatedLine{
				LineID:            lineID,
				AllocatedQuantity: line.QuantityAllocated,
			})
		}

		cmd, err := commands.NewProcessAllocationResultCommand(
			orderID, lines, result.AllocationError, result.PendingInventory,
		)
		if err != nil {
			return fmt.Errorf("build allocation result command: %w", err)
		}

		return handler.Handle(ctx, cmd)
	}, "allocation-result-consumer")
}
