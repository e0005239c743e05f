package typedmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for rejectionsTotal.
const (
	opMake     = "make"
	opOf       = "of"
	opFromMap  = "from_map"
	opSet      = "set"
	opDelete   = "delete"
	opHas      = "has"
	opValidate = "validate"

	partKey   = "key"
	partValue = "value"
)

// rejectionsTotal counts keys and values refused by a typed map's guards.
//
// Labels:
//   - operation: make, of, from_map, set, delete, has or validate.
//   - part: "key" or "value", whichever guard refused.
var rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "typed_map_rejections_total",
	Help: "The total number of keys and values rejected by typed map guards",
}, []string{"operation", "part"})

func init() {
	for _, op := range []string{opMake, opOf, opFromMap, opSet, opValidate} {
		rejectionsTotal.WithLabelValues(op, partKey).Add(0)
		rejectionsTotal.WithLabelValues(op, partValue).Add(0)
	}

	rejectionsTotal.WithLabelValues(opDelete, partKey).Add(0)
	rejectionsTotal.WithLabelValues(opHas, partKey).Add(0)
}
