package logsink

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job_log.txt")

	sink := New(path)
	sink.now = func() time.Time {
		return time.Date(2025, 6, 1, 8, 30, 15, 0, time.UTC)
	}

	require.NoError(t, sink.Append("CRM is alive"))
	require.NoError(t, sink.Appendf("Updated Product: %s, New Stock: %d", "Laptop", 13))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "[2025-06-01 08:30:15] CRM is alive\n" +
		"[2025-06-01 08:30:15] Updated Product: Laptop, New Stock: 13\n"
	assert.Equal(t, want, string(data))
}

func TestAppendIsAppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.txt")

	sink := New(path)
	require.NoError(t, sink.Append("one"))

	again := New(path)
	require.NoError(t, again.Append("two"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "one")
	assert.Contains(t, string(data), "two")
}
