package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_Types(t *testing.T) {
	t.Setenv("PANID_CACHE_DIR", t.TempDir())
	t.Setenv("PANID_CONFIG", filepath.Join(t.TempDir(), "panid.yaml"))

	assert.Equal(t, 0, run([]string{"types"}))
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Setenv("PANID_CACHE_DIR", t.TempDir())
	t.Setenv("PANID_CONFIG", filepath.Join(t.TempDir(), "panid.yaml"))

	assert.Equal(t, 1, run([]string{"frobnicate"}))
}
