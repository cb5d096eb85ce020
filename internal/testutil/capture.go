package testutil

import (
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// CaptureStdout runs fn with os.Stdout redirected to a pipe and
// returns everything fn wrote to it.
func CaptureStdout(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stdout, fn)
}

// CaptureStderr runs fn with os.Stderr redirected to a pipe and
// returns everything fn wrote to it.
func CaptureStderr(t *testing.T, fn func()) string {
	t.Helper()
	return captureFile(t, &os.Stderr, fn)
}

func captureFile(t *testing.T, target **os.File, fn func()) string {
	t.Helper()

	old := *target
	reader, writer, err := os.Pipe()
	require.NoError(t, err)

	*target = writer
	defer func() {
		*target = old
	}()

	fn()

	require.NoError(t, writer.Close())
	out, err := io.ReadAll(reader)
	require.NoError(t, err)
	require.NoError(t, reader.Close())

	return string(out)
}
