package status

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

func TestFileWriter_TruncateThenAppend(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".messages.txt")
	w := NewFileWriter(path)

	require.NoError(t, w.Truncate("Linked mr_box_plugin into activated plugins directory."))
	require.NoError(t, w.Append("Configured to load mr_box_plugin by default."))

	assert.Equal(t,
		"Linked mr_box_plugin into activated plugins directory.\n"+
			"Configured to load mr_box_plugin by default.\n",
		readStatus(t, path))
}

// A later invocation's first write replaces whatever the previous invocation
// left behind.
func TestFileWriter_TruncateDiscardsPreviousInvocation(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".messages.txt")
	w := NewFileWriter(path)

	require.NoError(t, w.Truncate("Linked mr_box_plugin into activated plugins directory."))
	require.NoError(t, w.Append("Configured to load mr_box_plugin by default."))

	require.NoError(t, w.Truncate("Unlinked mr_box_plugin from activated plugins directory."))
	require.NoError(t, w.Append("Disable loading of mr_box_plugin in MicroDrop."))

	assert.Equal(t,
		"Unlinked mr_box_plugin from activated plugins directory.\n"+
			"Disable loading of mr_box_plugin in MicroDrop.\n",
		readStatus(t, path))
}

func TestFileWriter_AppendWithoutTruncateCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".messages.txt")
	w := NewFileWriter(path)

	require.NoError(t, w.Append("Configured to load mr_box_plugin by default."))
	assert.Equal(t, "Configured to load mr_box_plugin by default.\n", readStatus(t, path))
}

func TestFileWriter_MissingDirectoryFails(t *testing.T) {
	w := NewFileWriter(filepath.Join(t.TempDir(), "no-such-dir", ".messages.txt"))
	assert.Error(t, w.Truncate("Linked mr_box_plugin into activated plugins directory."))
}
