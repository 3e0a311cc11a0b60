package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Rejection reasons for the rejected-operations counter.
const (
	ReasonNotFound      = "not_found"
	ReasonDuplicate     = "duplicate"
	ReasonFull          = "full"
	ReasonNotRegistered = "not_registered"
)

var (
	signupsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of successful activity signups.",
	})
	unregistrationsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "unregistrations_total",
		Help:      "Number of successful activity unregistrations.",
	})
	rejectionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_api",
		Subsystem: "registry",
		Name:      "rejected_operations_total",
		Help:      "Number of signup/unregister requests rejected by registry rules.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(signupsTotal, unregistrationsTotal, rejectionsTotal)
}

// RecordSignup increments the successful-signup counter.
func RecordSignup() {
	signupsTotal.Inc()
}

// RecordUnregistration increments the successful-unregistration counter.
func RecordUnregistration() {
	unregistrationsTotal.Inc()
}

// RecordRejection increments the rejection counter for the given reason.
func RecordRejection(reason string) {
	rejectionsTotal.WithLabelValues(reason).Inc()
}
