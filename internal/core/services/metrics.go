package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Labels are bounded: operation names and "ok"/"error". Never a contact name or ID.
var (
	contactsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "phonebook_contacts",
		Help: "Current number of contacts in the phonebook.",
	})

	contactOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phonebook_contact_operations_total",
		Help: "Total number of contact operations, by operation and result.",
	}, []string{"operation", "result"})
)

func observe(operation string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	contactOperations.WithLabelValues(operation, result).Inc()
}
