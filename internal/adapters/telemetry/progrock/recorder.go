// Package progrock provides the Progrock implementation of the progress
// adapter.
package progrock

import (
	"io"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.panid.dev/panid/internal/core/ports"
)

// Recorder implements ports.Progress using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Begin starts recording a new vertex named after the unit of work.
func (r *Recorder) Begin(name string) ports.ProgressTask {
	d := digest.FromString(name)
	return &Task{vertex: r.rec.Vertex(d, name)}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// Task implements ports.ProgressTask wrapping *progrock.VertexRecorder.
type Task struct {
	vertex *progrock.VertexRecorder
}

// Write streams status output to the vertex.
func (t *Task) Write(p []byte) (int, error) {
	return t.vertex.Stdout().Write(p)
}

// Done marks the vertex as finished, recording err when non-nil.
func (t *Task) Done(err error) {
	t.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (t *Task) Cached() {
	t.vertex.Cached()
}

var _ io.Writer = (*Task)(nil)
