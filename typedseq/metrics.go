package typedseq

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Operation label values for rejectionsTotal.
const (
	opMake     = "make"
	opOf       = "of"
	opAppend   = "append"
	opPrepend  = "prepend"
	opConcat   = "concat"
	opMap      = "map"
	opValidate = "validate"
)

// rejectionsTotal counts elements refused by a typed sequence's guard.
//
// Labels:
//   - operation: the operation that was refused (make, of, append, prepend,
//     concat, map, validate). A non-zero "validate" rate means sequences are
//     being corrupted after construction.
var rejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "typed_sequence_rejections_total",
	Help: "The total number of elements rejected by typed sequence guards",
}, []string{"operation"})

func init() {
	for _, op := range []string{opMake, opOf, opAppend, opPrepend, opConcat, opMap, opValidate} {
		rejectionsTotal.WithLabelValues(op).Add(0)
	}
}
