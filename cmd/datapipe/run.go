package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"datapipe/internal/pipe"
)

func newRunCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:     "run",
		Short:   "Print simulated events until Enter or Ctrl+C",
		Example: "  datapipe run --interval-ms 500 --source tank.level",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			st := pipe.New(pipe.Config{
				SourceName: cfg.SourceName,
				Interval:   cfg.Interval(),
				Logger:     &log,
			})
			return runConsole(cmd.Context(), st, cmd.InOrStdin(), cmd.OutOrStdout(), cfg.ShutdownTimeout())
		},
	}
}

// runConsole subscribes a printing observer, waits for a line on in or ctx
// cancellation, then stops the stream and waits for its terminal call.
func runConsole(ctx context.Context, st *pipe.Stream, in io.Reader, out io.Writer, timeout time.Duration) error {
	obs, err := pipe.NewTypedObserver(
		func(e pipe.Typed[pipe.Float]) {
			fmt.Fprintf(out, "Event: Action=%s, Point=%s, Value=%s, Status=%s, Timestamp=%s\n",
				e.Action, e.SourceName, e.Value, e.Status, e.Timestamp.Format(time.RFC3339))
		},
		func(err error) { fmt.Fprintf(out, "Error: %v\n", err) },
		func() { fmt.Fprintln(out, "Simulation completed.") },
	)
	if err != nil {
		return err
	}
	if err := st.Subscribe(obs); err != nil {
		return err
	}
	fmt.Fprintln(out, "Press Enter to stop the simulation...")

	enter := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(in).ReadString('\n')
		close(enter)
	}()
	select {
	case <-enter:
	case <-ctx.Done():
	}

	st.Stop()
	wctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return st.Wait(wctx)
}
