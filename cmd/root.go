package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"pbar/pkg/progress"
)

// helpRequested records that the help page was served. A bare -h is a
// malformed invocation for a pipe filter, so main exits nonzero for it
// just like for a missing job count.
var helpRequested bool

func buildRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pbar <jobs>",
		Short: "Render a single-line progress bar for piped work",
		Long: `pbar renders a self-overwriting progress bar on stdout.

It takes the expected number of jobs as its only argument, then reads
newline-delimited input from stdin, advancing the bar one unit per
line until the input ends. An interrupt (Ctrl-C) completes the bar and
exits cleanly, so a partially finished pipeline still gets its summary.

The job count is echoed to stderr so the bar itself stays alone on
stdout.

Examples:
  # Copy files with a live bar sized by a pre-count
  find . -type f -exec cp {} /tmp/media/ \; | pbar $(find . -type f | wc -l)

  # Ten units of scripted work
  for i in $(seq 10); do do-work "$i" && echo; done | pbar 10`,
		Args: cobra.ExactArgs(1),
		RunE: runBar,
	}

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		helpRequested = true
		fmt.Fprintln(c.ErrOrStderr(), c.Long)
		fmt.Fprintln(c.ErrOrStderr(), c.UsageString())
	})

	return cmd
}

func runBar(cmd *cobra.Command, args []string) error {
	jobs, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || jobs < 0 {
		return fmt.Errorf("invalid job count %q: expected a non-negative integer", args[0])
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	return run(jobs, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), sigCh)
}

// run wraps the stdin line stream with a progress bar. The bar is
// cosmetic: read errors end the stream but the exit accounting still
// runs, and an interrupt completes the bar instead of aborting it.
func run(jobs int64, in io.Reader, out, errOut io.Writer, interrupt <-chan os.Signal) error {
	fmt.Fprintln(errOut, jobs)

	bar, err := progress.New(jobs, progress.WithWriter(out))
	if err != nil {
		return err
	}

	lineCh := make(chan struct{})
	scanErr := make(chan error, 1)
	done := make(chan struct{})
	defer close(done)

	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lineCh <- struct{}{}:
			case <-done:
				return
			}
		}
		scanErr <- scanner.Err()
		close(lineCh)
	}()

	return bar.Run(func() error {
		for {
			select {
			case <-interrupt:
				bar.Complete()
				return nil
			case _, ok := <-lineCh:
				if !ok {
					return <-scanErr
				}
				bar.Add1()
			}
		}
	})
}
