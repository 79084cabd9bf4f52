package progrock

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

// Vertex implements ports.Span wrapping *progrock.VertexRecorder.
type Vertex struct {
	mu     *sync.Mutex
	id     digest.Digest
	vertex *progrock.VertexRecorder
}

// End marks the vertex as completed.
func (v *Vertex) End() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.vertex.Complete()
}

// RecordError marks the vertex as failed. A cancelled context marks it canceled.
func (v *Vertex) RecordError(err error) {
	if err == nil {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.vertex.Error(err)
}

// SetAttribute writes key=value to the vertex log.
func (v *Vertex) SetAttribute(key string, value any) {
	v.log(fmt.Sprintf("%s=%v", key, value))
}

func (v *Vertex) log(line string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.logLocked(line)
}

func (v *Vertex) logLocked(line string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), line)
}

func formatAttributes(attrs map[string]any) []string {
	lines := make([]string, 0, len(attrs))
	for _, k := range slices.Sorted(maps.Keys(attrs)) {
		lines = append(lines, fmt.Sprintf("%s=%v", k, attrs[k]))
	}
	return lines
}
