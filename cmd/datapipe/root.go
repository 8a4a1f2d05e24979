package main

import (
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"datapipe/internal/config"
)

// options collects persistent flags; they override file and env values.
type options struct {
	configPath  string
	logLevel    string
	logFormat   string
	addr        string
	sourceName  string
	intervalMS  int
	corsOrigins string
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	return newRootCmdWith(&options{}, stdin, stdout, stderr)
}

// newRootCmdWith constructs the command tree bound to opts.
func newRootCmdWith(opts *options, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "datapipe",
		Short:         "Simulated data pipe with a cancellable push-based event stream",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", os.Getenv("DATAPIPE_CONFIG"), "Config file (.yaml, .yml, .json, .toml)")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error (defaults DATAPIPE_LOG_LEVEL or info)")
	pf.StringVar(&opts.logFormat, "log-format", "", "Log format: console|json")
	pf.StringVar(&opts.sourceName, "source", "", "Point name stamped on every event")
	pf.IntVar(&opts.intervalMS, "interval-ms", 0, "Delay between events in milliseconds (default 1000)")

	root.AddCommand(newRunCmd(opts), newServeCmd(opts))
	return root
}

// resolveConfig merges defaults, the config file, DATAPIPE_* env vars and
// explicitly set flags, in increasing precedence.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	var cfg config.Config
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if v := os.Getenv("DATAPIPE_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("DATAPIPE_SOURCE"); v != "" {
		cfg.SourceName = v
	}
	if v := os.Getenv("DATAPIPE_INTERVAL_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.IntervalMS = n
		}
	}
	if v := os.Getenv("DATAPIPE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("DATAPIPE_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("source") {
		cfg.SourceName = opts.sourceName
	}
	if flags.Changed("interval-ms") {
		cfg.IntervalMS = opts.intervalMS
	}
	if flags.Lookup("addr") != nil && flags.Changed("addr") {
		cfg.Addr = opts.addr
	}
	if flags.Lookup("cors-origins") != nil && flags.Changed("cors-origins") {
		cfg.CORSOrigins = splitCSV(opts.corsOrigins)
		cfg.CORSEnabled = len(cfg.CORSOrigins) > 0
	}

	cfg.ApplyDefaults()
	return cfg, nil
}
