package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BookingsCreated The total number of booking units created (counter)
	BookingsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "created_total",
			Help:      "The total number of booking units created",
		},
		[]string{"kind"}, // reservation, rental
	)

	// BookingsRejected total number of rejected booking attempts (counter)
	BookingsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "rejected_total",
			Help:      "The total number of rejected booking attempts",
		},
		[]string{"reason"}, // conflict, busy, invalid
	)

	// ReceiptsIssued total number of receipts issued at checkout (counter)
	ReceiptsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "bookings",
			Name:      "receipts_issued_total",
			Help:      "The total number of receipts issued at checkout",
		},
	)
)
