package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resortfront",
			Name:      "logins_total",
			Help:      "Count of login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	upstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resortfront",
			Name:      "upstream_requests_total",
			Help:      "Count of calls to the booking API by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	bookingCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "resortfront",
			Name:      "bookings_created_total",
			Help:      "Count of bookings submitted through the portal.",
		},
	)

	bookingDecision = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "resortfront",
			Name:      "booking_decisions_total",
			Help:      "Count of administrator decisions over pending bookings.",
		},
		[]string{"decision"},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(logins, upstreamRequests, bookingCreated, bookingDecision)
	})
}

func IncLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}

func IncUpstreamRequest(op, outcome string) {
	upstreamRequests.WithLabelValues(op, outcome).Inc()
}

func IncBookingCreated() {
	bookingCreated.Inc()
}

func IncBookingDecision(decision string) {
	bookingDecision.WithLabelValues(decision).Inc()
}
