package telemetry

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// SpanLog is a span processor that writes every ended span as one JSON line.
type SpanLog struct {
	mu  sync.Mutex
	enc *json.Encoder
}

var _ sdktrace.SpanProcessor = (*SpanLog)(nil)

// NewSpanLog creates a SpanLog writing to w.
func NewSpanLog(w io.Writer) *SpanLog {
	return &SpanLog{enc: json.NewEncoder(w)}
}

type spanRecord struct {
	Name       string         `json:"name"`
	TraceID    string         `json:"trace_id"`
	SpanID     string         `json:"span_id"`
	ParentID   string         `json:"parent_id,omitempty"`
	Duration   time.Duration  `json:"duration"`
	Status     string         `json:"status,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
	Events     []eventRecord  `json:"events,omitempty"`
}

type eventRecord struct {
	Name       string         `json:"name"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// OnStart does nothing.
func (l *SpanLog) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd writes the span. Write errors are dropped; tracing never fails a run.
func (l *SpanLog) OnEnd(s sdktrace.ReadOnlySpan) {
	rec := spanRecord{
		Name:       s.Name(),
		TraceID:    s.SpanContext().TraceID().String(),
		SpanID:     s.SpanContext().SpanID().String(),
		Duration:   s.EndTime().Sub(s.StartTime()),
		Attributes: attributeMap(s.Attributes()),
	}
	if s.Parent().IsValid() {
		rec.ParentID = s.Parent().SpanID().String()
	}
	if desc := s.Status().Description; desc != "" {
		rec.Status = desc
	}
	for _, e := range s.Events() {
		rec.Events = append(rec.Events, eventRecord{Name: e.Name, Attributes: attributeMap(e.Attributes)})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.enc.Encode(rec)
}

// Shutdown does nothing.
func (l *SpanLog) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (l *SpanLog) ForceFlush(context.Context) error { return nil }
