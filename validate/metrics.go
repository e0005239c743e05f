package validate

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

//nolint:gochecknoglobals
var (
	// validationsTotal counts calls to Validate.
	//
	// Labels:
	//   - can_validate_type: "true" if the value implements HasValidate or
	//     HasValidateWithContext and was validated, "false" if it was skipped.
	//   - has_error: "true" if validation returned an error.
	//
	// Dashboards:
	//   - rate(collection_validation_calls_total[5m])
	//   - sum(rate(collection_validation_calls_total{has_error="true"}[5m])) / sum(rate(collection_validation_calls_total[5m]))
	validationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "collection_validation_calls_total",
		Help: "The total number of calls to Validate",
	}, []string{"can_validate_type", "has_error"})

	// validationTime tracks how long deep validation takes, in milliseconds.
	// Validating a collection is linear in its size, so the buckets start
	// well below a millisecond.
	//
	// Labels:
	//   - type: the Go type validated, e.g. "typedseq.Sequence[int]".
	//   - has_error: "true" if validation returned an error.
	validationTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "collection_validation_time_millis",
		Help: "The time it takes to validate a collection, in milliseconds",
		Buckets: []float64{
			0.01, 0.05, 0.1, 0.5, 1, 5, 10, 50, 100, 500, 1000,
		},
	}, []string{"type", "has_error"})
)

// init creates every validationsTotal series up front so that rate() has a
// baseline before the first call.
func init() {
	validationsTotal.WithLabelValues("true", "true").Add(0)
	validationsTotal.WithLabelValues("true", "false").Add(0)
	validationsTotal.WithLabelValues("false", "false").Add(0)
}
