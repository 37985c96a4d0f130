package kafka

import (
	"context"
	"encoding/json"
	"errors"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/pkg/mq"

	"github.com/segmentio/kafka-go"
)

// Topics names the destination topic for each outbound message kind.
type Topics struct {
	ValidateOrder    string
	AllocateOrder    string
	DeallocateOrder  string
	ValidationFailed string
	AllocationFailed string
}

// CommandPublisher implements ports.CommandPublisher over Kafka, one writer
// per topic. Trace context is injected into message headers.
type CommandPublisher struct {
	validateWriter         *kafka.Writer
	allocateWriter         *kafka.Writer
	deallocateWriter       *kafka.Writer
	validationFailedWriter *kafka.Writer
	allocationFailedWriter *kafka.Writer
}

// NewCommandPublisher creates a publisher with a writer per topic on the
// given brokers. The caller owns the publisher and must Close it.
func NewCommandPublisher(brokers []string, topics Topics) *CommandPublisher {
	newWriter := func(topic string) *kafka.Writer {
		return &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		}
	}

	return &CommandPublisher{
		validateWriter:         newWriter(topics.ValidateOrder),
		allocateWriter:         newWriter(topics.AllocateOrder),
		deallocateWriter:       newWriter(topics.DeallocateOrder),
		validationFailedWriter: newWriter(topics.ValidationFailed),
		allocationFailedWriter: newWriter(topics.AllocationFailed),
	}
}

// PublishValidateOrder sends the order to the validation request topic.
func (p *CommandPublisher) PublishValidateOrder(ctx context.Context, aggregate *order.Order) error {
	return p.publishOrder(ctx, p.validateWriter, ValidateOrderRequest{Order: toOrderMessage(aggregate)}, aggregate)
}

// PublishAllocateOrder sends the order to the allocation request topic.
func (p *CommandPublisher) PublishAllocateOrder(ctx context.Context, aggregate *order.Order) error {
	return p.publishOrder(ctx, p.allocateWriter, AllocateOrderRequest{Order: toOrderMessage(aggregate)}, aggregate)
}

// PublishDeallocateOrder sends the order to the deallocation request topic.
func (p *CommandPublisher) PublishDeallocateOrder(ctx context.Context, aggregate *order.Order) error {
	return p.publishOrder(ctx, p.deallocateWriter, DeallocateOrderRequest{Order: toOrderMessage(aggregate)}, aggregate)
}

// PublishValidationFailed announces a failed validation.
func (p *CommandPublisher) PublishValidationFailed(ctx context.Context, orderID kernel.UUID) error {
	payload, err := json.Marshal(ValidationFailedNotification{OrderID: orderID.String()})
	if err != nil {
		return err
	}
	return mq.ProduceMessage(ctx, p.validationFailedWriter, []byte(orderID.String()), payload)
}

// PublishAllocationFailed announces a failed allocation.
func (p *CommandPublisher) PublishAllocationFailed(ctx context.Context, orderID kernel.UUID) error {
	payload, err := json.Marshal(AllocationFailedNotification{OrderID: orderID.String()})
	if err != nil {
		return err
	}
	return mq.ProduceMessage(ctx, p.allocationFailedWriter, []byte(orderID.String()), payload)
}

// Close releases all writers.
func (p *CommandPublisher) Close() error {
	return errors.Join(
		p.validateWriter.Close(),
		p.allocateWriter.Close(),
		p.deallocateWriter.Close(),
		p.validationFailedWriter.Close(),
		p.allocationFailedWriter.Close(),
	)
}

func (p *CommandPublisher) publishOrder(
	ctx context.Context,
	writer *kafka.Writer,
	message any,
	aggregate *order.Order,
) error {
	payload, err := json.Marshal(message)
	if err != nil {
		return err
	}

	return mq.ProduceMessage(ctx, writer, []byte(aggregate.ID().String()), payload)
}
