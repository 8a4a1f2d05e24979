package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"datapipe/internal/config"
	"datapipe/internal/host"
	"datapipe/internal/httpapi"
	"datapipe/internal/pipe"
)

func newServeCmd(opts *options) *cobra.Command {
	var autostart bool
	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the pipe as a service with an HTTP control surface",
		Example: "  datapipe serve --addr :8080 --cors-origins http://localhost:5173",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, log, ln, autostart)
		},
	}
	cmd.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (defaults DATAPIPE_ADDR or :8080)")
	cmd.Flags().StringVar(&opts.corsOrigins, "cors-origins", "", "Comma-separated allowed CORS origins (enables CORS)")
	cmd.Flags().BoolVar(&autostart, "autostart", true, "Start the pipe immediately")
	return cmd
}

// serve runs the host and HTTP server until ctx is done or either fails.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger, ln net.Listener, autostart bool) error {
	st := pipe.New(pipe.Config{
		SourceName: cfg.SourceName,
		Interval:   cfg.Interval(),
		Logger:     &log,
	})
	eventLog := log.With().Str("component", "observer").Logger()
	svc, err := host.New(host.Config{
		Stream:      st,
		NewObserver: func() pipe.Observer { return host.NewLogObserver(eventLog, nil) },
		Cleanup:     func() { log.Info().Msg("cleanup complete") },
		Interval:    cfg.Interval(),
		Logger:      &log,
	})
	if err != nil {
		return err
	}

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel("info")
	httpapi.SetBaseContext(ctx)
	httpapi.SetStopTimeout(cfg.ShutdownTimeout())
	httpapi.SetCORSOptions(cfg.CORSEnabled, cfg.CORSOrigins,
		[]string{http.MethodGet, http.MethodPost, http.MethodOptions},
		[]string{"Content-Type", "X-Log-Level"})

	if autostart {
		if err := svc.Start(ctx); err != nil {
			return err
		}
	}

	srv := &http.Server{
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", ln.Addr().String()).Msg("datapipe listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			log.Warn().Err(err).Msg("graceful shutdown error")
		}
		return svc.Stop(sctx)
	})
	return g.Wait()
}
