// Package kafka implements the inbound result consumers. Each consumer
// runs a fetch/handle/commit loop: the offset only advances after the
// handler returns, so a crash mid-handling redelivers the message. The
// saga layer absorbs the resulting duplicates.
package kafka

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"beerorders/internal/pkg/mq"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// messageHandler processes one fetched message. A returned error leaves
// the message uncommitted for redelivery.
type messageHandler func(ctx context.Context, msg kafka.Message) error

// Consumer drives one Kafka reader against a message handler.
type Consumer struct {
	reader  *kafka.Reader
	handler messageHandler
	log     *slog.Logger

	wg      sync.WaitGroup
	stopped atomic.Bool
}

func newConsumer(reader *kafka.Reader, handler messageHandler, component string) *Consumer {
	return &Consumer{
		reader:  reader,
		handler: handler,
		log:     slog.Default().With("component", component, "topic", reader.Config().Topic),
	}
}

// Start launches the consume loop in its own goroutine.
func (c *Consumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.log.Info("consumer started")

		for {
			if c.stopped.Load() {
				return
			}

			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || c.stopped.Load() {
					c.log.Info("consumer shutting down")
					return
				}
				c.log.Error("fetch failed, retrying", "error", err)
				time.Sleep(time.Second)
				continue
			}

			msgCtx := mq.ExtractTraceContext(ctx, msg)
			msgCtx, span := otel.Tracer("consumer").Start(
				msgCtx,
				c.reader.Config().Topic+" receive",
				trace.WithSpanKind(trace.SpanKindConsumer),
			)
			err = c.handler(msgCtx, msg)
			if err != nil {
				span.SetStatus(codes.Error, err.Error())
			}
			span.End()
			if err != nil {
				// leave the offset where it is so the message is redelivered
				c.log.Error("message handling failed", "error", err)
				continue
			}

			if err = c.reader.CommitMessages(ctx, msg); err != nil {
				c.log.Error("commit failed", "error", err)
			}
		}
	}()
}

// Stop closes the reader and waits for the loop to drain.
func (c *Consumer) Stop() {
	c.stopped.Store(true)
	_ = c.reader.Close()
	c.wg.Wait()
	c.log.Info("consumer stopped")
}
