package health

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readStatus(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestPublishWritesStatusFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_status")
	p := NewPublisher(path)

	p.Publish(true)
	assert.Equal(t, "healthy", readStatus(t, path))
	assert.True(t, p.Healthy())

	p.Publish(false)
	assert.Equal(t, "unhealthy", readStatus(t, path))
	assert.False(t, p.Healthy())
}

func TestPublishLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "health_status")
	p := NewPublisher(path)

	p.Publish(true)
	p.Publish(false)
	p.Publish(true)

	// whole-file overwrite, no history
	assert.Equal(t, "healthy", readStatus(t, path))
}

func TestPublishUnwritablePathDoesNotPanic(t *testing.T) {
	p := NewPublisher(filepath.Join(t.TempDir(), "missing-dir", "health_status"))

	p.Publish(true)
	assert.True(t, p.Healthy(), "snapshot updates even when the file write fails")
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "healthy", StatusText(true))
	assert.Equal(t, "unhealthy", StatusText(false))
}
