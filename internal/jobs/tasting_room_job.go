package jobs

import (
	"context"
	"log/slog"
	"math/rand"

	"beerorders/internal/core/application/usecases/commands"
	"beerorders/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// tastingRoomUPCs are the beers on tap in the tasting room.
var tastingRoomUPCs = []string{
	"0631234200036",
	"0631234300019",
	"0083783375213",
}

const maxTastingRoomQuantity = 6

// TastingRoomJob periodically places a small synthetic order, keeping a
// steady trickle of work flowing through the fulfillment pipeline.
type TastingRoomJob struct {
	handler    commands.SubmitOrderCommandHandler
	customerID kernel.UUID
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTastingRoomJob creates a job that submits tasting room orders.
// All orders are placed on behalf of the given customer.
func NewTastingRoomJob(
	handler commands.SubmitOrderCommandHandler,
	customerID kernel.UUID,
	logger *slog.Logger,
) *TastingRoomJob {
	return &TastingRoomJob{
		handler:    handler,
		customerID: customerID,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tasting_room_job"),
	}
}

// Start begins placing a tasting room order every two seconds.
func (j *TastingRoomJob) Start() error {
	_, err := j.cron.AddFunc("*/2 * * * * *", func() {
		ctx := context.Background()

		orderID := kernel.NewUUID()
		lines := []commands.LineSpec{{
			LineID:   kernel.NewUUID(),
			UPC:      tastingRoomUPCs[rand.Intn(len(tastingRoomUPCs))],
			Quantity: rand.Intn(maxTastingRoomQuantity) + 1,
		}}

		cmd, err := commands.NewSubmitOrderCommand(orderID, j.customerID, "tasting-room", lines)
		if err != nil {
			j.logger.ErrorContext(ctx, "Failed to build tasting room order", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Tasting room order failed", "error", err, "orderId", orderID.String())
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tasting room job started (placing an order every two seconds)")
	return nil
}

// Stop stops the tasting room job.
func (j *TastingRoomJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tasting room job stopped")
}
