package main

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbar/internal/testutil"
)

func TestRootCommand_RequiresJobsArgument(t *testing.T) {
	cmd := buildRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(nil)

	err := cmd.Execute()
	assert.Error(t, err)
}

func TestRootCommand_RejectsNonIntegerJobs(t *testing.T) {
	cmd := buildRootCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"abc"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job count")
}

func TestRootCommand_RejectsNegativeJobs(t *testing.T) {
	cmd := buildRootCommand()
	cmd.SetIn(strings.NewReader(""))
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	err := runBar(cmd, []string{"-5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid job count")
}

func TestRootCommand_HelpFlagMarksMalformedInvocation(t *testing.T) {
	prev := helpRequested
	helpRequested = false
	t.Cleanup(func() { helpRequested = prev })

	var errOut bytes.Buffer
	cmd := buildRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"-h"})

	require.NoError(t, cmd.Execute())
	assert.True(t, helpRequested, "help must be flagged so main exits 1")
	assert.Contains(t, errOut.String(), "Usage:")
}

func TestRootCommand_RunsToCompletion(t *testing.T) {
	var out, errOut bytes.Buffer

	cmd := buildRootCommand()
	cmd.SetIn(strings.NewReader("one\ntwo\nthree\n"))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"3"})

	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "] 100%\n")
	assert.Contains(t, out.String(), "Execution time: ")
	assert.True(t, strings.HasPrefix(errOut.String(), "3\n"), "job count echoed to stderr")
}

func TestRootCommand_WritesBarToStdoutByDefault(t *testing.T) {
	out := testutil.CaptureStdout(t, func() {
		cmd := buildRootCommand()
		cmd.SetIn(strings.NewReader("x\n"))
		cmd.SetErr(io.Discard)
		cmd.SetArgs([]string{"1"})
		require.NoError(t, cmd.Execute())
	})

	assert.Contains(t, out, "] 100%\n")
}

func TestRun_InterruptCompletesAndExitsCleanly(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	sig := make(chan os.Signal, 1)
	sig <- os.Interrupt

	var out, errOut bytes.Buffer
	err := run(5, pr, &out, &errOut, sig)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "] 100%\n")
	assert.Equal(t, 1, strings.Count(out.String(), "Execution time"))
}

func TestRun_InterruptUnblocksScannerGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()

	sig := make(chan os.Signal, 1)
	sig <- os.Interrupt

	var out, errOut bytes.Buffer
	input := strings.Repeat("line\n", 1000)
	err := run(1000, strings.NewReader(input), &out, &errOut, sig)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, time.Second, 10*time.Millisecond, "scanner goroutine must exit once run returns")
}

func TestRun_ZeroJobsConsumesInputWithoutFailing(t *testing.T) {
	var out, errOut bytes.Buffer

	err := run(0, strings.NewReader("a\nb\n"), &out, &errOut, make(chan os.Signal))

	require.NoError(t, err)
	assert.Contains(t, out.String(), "] 100%\n")
}
