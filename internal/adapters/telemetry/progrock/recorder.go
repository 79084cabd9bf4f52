// Package progrock records solver spans as progrock vertices.
package progrock

import (
	"context"
	"fmt"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/tabu/internal/core/ports"
	"go.trai.ch/zerr"
)

type vertexKey struct{}

// Recorder implements ports.Tracer on top of a progrock recorder.
// Each span becomes a vertex whose inputs point at the enclosing span.
type Recorder struct {
	mu  sync.Mutex
	w   progrock.Writer
	rec *progrock.Recorder
	seq int
}

// NewRecorder creates a Recorder writing status updates to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// NewJournal creates a Recorder writing one JSON status update per line to path.
func NewJournal(path string) (*Recorder, error) {
	w, err := progrock.CreateJournal(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create progress journal"), "path", path)
	}
	return NewRecorder(w), nil
}

// Start records a new vertex named name.
func (r *Recorder) Start(ctx context.Context, name string, opts ...ports.SpanOption) (context.Context, ports.Span) {
	var cfg ports.SpanConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	r.mu.Lock()
	r.seq++
	id := digest.FromString(fmt.Sprintf("%s/%d", name, r.seq))
	var vopts []progrock.VertexOpt
	if parent, ok := ctx.Value(vertexKey{}).(*Vertex); ok {
		vopts = append(vopts, progrock.WithInputs(parent.id))
	}
	v := &Vertex{
		mu:     &r.mu,
		id:     id,
		vertex: r.rec.Vertex(id, name, vopts...),
	}
	for _, line := range formatAttributes(cfg.Attributes) {
		v.logLocked(line)
	}
	r.mu.Unlock()

	return context.WithValue(ctx, vertexKey{}, v), v
}

// Event writes name and attrs to the log of the vertex carried by ctx.
func (r *Recorder) Event(ctx context.Context, name string, attrs map[string]any) {
	v, ok := ctx.Value(vertexKey{}).(*Vertex)
	if !ok {
		return
	}
	line := name
	for _, attr := range formatAttributes(attrs) {
		line += " " + attr
	}
	v.log(line)
}

// Close completes the root group and closes the writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rec.Complete()
	return r.rec.Close()
}
