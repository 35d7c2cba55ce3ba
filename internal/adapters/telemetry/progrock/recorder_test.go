package progrock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vito/progrock"
	prog "go.panid.dev/panid/internal/adapters/telemetry/progrock"
)

func TestRecorder_TaskLifecycle(t *testing.T) {
	t.Parallel()

	rec := prog.NewRecorder(progrock.NewTape())

	task := rec.Begin("biomart ensg+hgnc_symbol")
	n, err := task.Write([]byte("downloaded 42 bytes\n"))
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	task.Done(nil)

	cached := rec.Begin("biomart ensg+hgnc_id")
	cached.Cached()
	cached.Done(nil)

	require.NoError(t, rec.Close())
}
