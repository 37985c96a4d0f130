package commands

import (
	"context"
	"errors"
	"log/slog"

	"beerorders/internal/core/domain/model/kernel"
	"beerorders/internal/core/domain/model/order"
	"beerorders/internal/core/ports"
	"beerorders/internal/pkg/errs"
)

// maxApplyAttempts bounds the optimistic-lock retry loop. Each retry
// re-reads the aggregate and re-applies the event against fresh state.
const maxApplyAttempts = 3

// sagaEngine is the shared load/apply/persist core behind every order
// lifecycle handler. It loads the aggregate inside a unit of work, applies
// exactly one event through the state machine, dispatches the outbound
// action the transition owes, and persists under optimistic locking.
//
// Delivery is at-least-once, so two error classes are absorbed rather than
// surfaced: an unknown order ID (result for a purged order) and an illegal
// (status, event) pair (duplicate or late result). Both are logged and
// counted, and the engine reports success so the message can be acked.
// Publish failures are surfaced before commit, leaving the triggering
// event unconsumed for redelivery.
type sagaEngine struct {
	uowFactory OrderUoWFactory
	publisher  ports.CommandPublisher
	log        *slog.Logger
}

func newSagaEngine(uowFactory OrderUoWFactory, publisher ports.CommandPublisher) sagaEngine {
	return sagaEngine{
		uowFactory: uowFactory,
		publisher:  publisher,
		log:        slog.Default().With("component", "order-saga"),
	}
}

// applyEvent applies one event to the order with the given ID. The optional
// mutate callback runs on the freshly loaded aggregate before the event
// fires, inside the same transaction, so callers can fold side data (such
// as allocated quantities) into the same optimistic write. On a version
// conflict the whole load/mutate/apply cycle is retried up to
// maxApplyAttempts times; the last conflict is surfaced if they all lose.
func (e sagaEngine) applyEvent(
	ctx context.Context,
	orderID kernel.UUID,
	event order.Event,
	mutate func(*order.Order) error,
) error {
	var lastErr error
	for attempt := 1; attempt <= maxApplyAttempts; attempt++ {
		err := e.applyEventOnce(ctx, orderID, event, mutate)
		if err == nil {
			return nil
		}
		if !errors.Is(err, errs.ErrVersionConflict) {
			eventsTotal.WithLabelValues(event.String(), "error").Inc()
			return err
		}

		lastErr = err
		eventsTotal.WithLabelValues(event.String(), "conflict").Inc()
		e.log.Info("optimistic conflict, retrying",
			"orderID", orderID.String(),
			"event", event.String(),
			"attempt", attempt,
		)
	}

	return lastErr
}

func (e sagaEngine) applyEventOnce(
	ctx context.Context,
	orderID kernel.UUID,
	event order.Event,
	mutate func(*order.Order) error,
) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			eventsTotal.WithLabelValues(event.String(), "not_found").Inc()
			e.log.Warn("order not found, dropping event",
				"orderID", orderID.String(),
				"event", event.String(),
			)
			return nil
		}
		return err
	}

	if mutate != nil {
		if err = mutate(aggregate); err != nil {
			return err
		}
	}

	transition, err := aggregate.Apply(event)
	if err != nil {
		if errors.Is(err, errs.ErrIllegalStateTransition) {
			eventsTotal.WithLabelValues(event.String(), "rejected").Inc()
			e.log.Warn("event not valid in current status",
				"orderID", orderID.String(),
				"event", event.String(),
				"status", aggregate.Status().String(),
			)
			return nil
		}
		return err
	}

	if err = e.dispatch(ctx, transition, aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	eventsTotal.WithLabelValues(event.String(), "applied").Inc()
	return nil
}

// dispatch performs the outbound action a transition owes. Running before
// commit means a dead broker aborts the transaction and the triggering
// event is redelivered; the duplicate publish on a later commit failure is
// tolerated by the remote collaborators.
func (e sagaEngine) dispatch(ctx context.Context, transition order.Transition, aggregate *order.Order) error {
	switch transition.Action {
	case order.ActionPublishValidateOrder:
		return e.publisher.PublishValidateOrder(ctx, aggregate)
	case order.ActionPublishAllocateOrder:
		return e.publisher.PublishAllocateOrder(ctx, aggregate)
	case order.ActionPublishDeallocateOrder:
		return e.publisher.PublishDeallocateOrder(ctx, aggregate)
	case order.ActionNotifyValidationFailed:
		return e.publisher.PublishValidationFailed(ctx, aggregate.ID())
	case order.ActionNotifyAllocationFailed:
		return e.publisher.PublishAllocationFailed(ctx, aggregate.ID())
	case order.ActionNone:
		return nil
	default:
		return nil
	}
}
