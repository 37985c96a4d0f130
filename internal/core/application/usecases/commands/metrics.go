package commands

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// eventsTotal counts every lifecycle event handed to the saga, labelled by
// event name and outcome. Outcomes: applied, rejected (illegal in current
// status), not_found (unknown order), conflict (optimistic retry), error.
var eventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "beerorders",
		Subsystem: "saga",
		Name:      "events_total",
		Help:      "Order lifecycle events processed by the saga.",
	},
	[]string{"event", "outcome"},
)
