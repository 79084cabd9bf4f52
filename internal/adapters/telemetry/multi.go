package telemetry

import (
	"context"

	"go.trai.ch/tabu/internal/core/ports"
)

// MultiTracer starts every span on each of its tracers.
type MultiTracer []ports.Tracer

// NewMultiTracer returns the single tracer when only one is given and a MultiTracer otherwise.
func NewMultiTracer(tracers ...ports.Tracer) ports.Tracer {
	if len(tracers) == 1 {
		return tracers[0]
	}
	return MultiTracer(tracers)
}

// Start starts the span on every tracer, threading ctx through them in order.
func (m MultiTracer) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	spans := make(multiSpan, 0, len(m))
	for _, t := range m {
		var span ports.Span
		ctx, span = t.Start(ctx, name, opts...)
		spans = append(spans, span)
	}
	return ctx, spans
}

// Event records the event on every tracer.
func (m MultiTracer) Event(ctx context.Context, name string, attrs map[string]any) {
	for _, t := range m {
		t.Event(ctx, name, attrs)
	}
}

type multiSpan []ports.Span

func (s multiSpan) End() {
	for i := len(s) - 1; i >= 0; i-- {
		s[i].End()
	}
}

func (s multiSpan) RecordError(err error) {
	for _, span := range s {
		span.RecordError(err)
	}
}

func (s multiSpan) SetAttribute(key string, value any) {
	for _, span := range s {
		span.SetAttribute(key, value)
	}
}
