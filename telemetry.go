package phone_forward

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	opAdd        = "add"
	opRemove     = "remove"
	opGet        = "get"
	opReverse    = "reverse"
	opGetReverse = "get_reverse"
	opLookup     = "lookup"
	opWalk       = "walk"
	opClear      = "clear"
)

var (
	// operationsTotal counts facade operations by result
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "phfwd_operations_total",
		Help: "Total phone forward operations by operation and result",
	}, []string{"op", "result"})

	reverseResults = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "phfwd_reverse_results",
		Help:    "Numbers returned by reverse queries",
		Buckets: []float64{1, 2, 5, 10, 50, 100, 1000},
	}, []string{"op"})
)

var tracer = otel.Tracer("github.com/camelinx/phone_forward")

func startSpan(ctx context.Context, op string, num string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "phone_forward."+op,
		trace.WithAttributes(attribute.String("phfwd.number", num)),
	)
}

// finishOp records the outcome of an operation on its span and counters
// and ends the span.
func finishOp(span trace.Span, op string, res OpResult, err error) {
	operationsTotal.WithLabelValues(op, res.String()).Inc()

	span.SetAttributes(attribute.String("phfwd.result", res.String()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func finishQuery(span trace.Span, op string, pn *PhoneNumbers, err error) {
	res := Match
	switch {
	case err != nil:
		res = Error
	case pn.IsEmpty():
		res = NoMatch
	}

	if op == opReverse || op == opGetReverse {
		reverseResults.WithLabelValues(op).Observe(float64(pn.Len()))
	}

	span.SetAttributes(attribute.Int("phfwd.results", pn.Len()))
	finishOp(span, op, res, err)
}
