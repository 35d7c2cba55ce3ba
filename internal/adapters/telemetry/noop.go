// Package telemetry provides progress reporting adapters.
package telemetry

import "go.panid.dev/panid/internal/core/ports"

// NoOpProgress is a no-op implementation of ports.Progress.
type NoOpProgress struct{}

// NewNoOpProgress creates a new NoOpProgress.
func NewNoOpProgress() *NoOpProgress {
	return &NoOpProgress{}
}

// Begin returns a no-op task.
func (p *NoOpProgress) Begin(_ string) ports.ProgressTask {
	return &NoOpTask{}
}

// Close does nothing.
func (p *NoOpProgress) Close() error {
	return nil
}

// NoOpTask is a no-op implementation of ports.ProgressTask.
type NoOpTask struct{}

// Write does nothing and reports the full length as written.
func (t *NoOpTask) Write(p []byte) (int, error) {
	return len(p), nil
}

// Done does nothing.
func (t *NoOpTask) Done(_ error) {}

// Cached does nothing.
func (t *NoOpTask) Cached() {}
