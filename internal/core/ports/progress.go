package ports

import "io"

// Progress reports long-running work, such as mapping table downloads.
type Progress interface {
	// Begin starts a new unit of work with the given display name.
	Begin(name string) ProgressTask

	// Close flushes and closes the recording session.
	Close() error
}

// ProgressTask is a single unit of in-progress work. Writes stream
// status output for the task.
type ProgressTask interface {
	io.Writer

	// Done marks the task finished, recording err when non-nil.
	Done(err error)

	// Cached marks the task as served from cache.
	Cached()
}
