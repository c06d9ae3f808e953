package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/runlet/internal/cliconfig"
	"github.com/bft-labs/runlet/internal/heartbeat"
	runletlog "github.com/bft-labs/runlet/pkg/log"
	"github.com/bft-labs/runlet/pkg/sched"
	"github.com/bft-labs/runlet/pkg/watch"
)

const helpDescription = `
Run a heartbeat worker under runlet's task lifecycle.

The worker is started non-blocking, stopped cooperatively on SIGINT/SIGTERM,
and can be restarted in place when its config file changes (--watch-config).
Configure via file, env (RUNLET_*), or flags; flags win over env, env over file.
`

var exampleUsage = strings.TrimSpace(`
  runlet --interval 500ms
  runlet --config $HOME/.runlet/config.toml --watch-config
  runlet --beats 10 --log-level debug
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:     "runlet",
		Short:   "Run a heartbeat worker under runlet's task lifecycle",
		Long:    strings.TrimSpace(helpDescription),
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.runlet/config.toml),
			// then env, then flag overrides via the changed map.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			zlog := cliconfig.BuildLogger(cfg)
			logger := runletlog.NewZerologAdapterWithLogger(zlog)

			zlog.Info().
				Dur("interval", cfg.Interval).
				Int("beats", cfg.Beats).
				Bool("watch_config", cfg.WatchConfig).
				Msg("configuration")

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scheduler := sched.New(sched.WithLogger(logger))

			hb, err := heartbeat.New(scheduler, heartbeat.Config{
				Interval: cfg.Interval,
				Beats:    cfg.Beats,
			}, logger)
			if err != nil {
				return fmt.Errorf("create heartbeat: %w", err)
			}

			if cfg.WatchConfig && cfgFile != "" && cliconfig.FileExists(cfgFile) {
				// The watcher owns start/stop while running, so drive the
				// worker with a plain start and wait for the signal instead
				// of RunBlocking.
				w := watch.New(watch.Config{
					Path:        cfgFile,
					WaitTimeout: cfg.ShutdownTimeout,
				}, hb, logger)
				if err := w.Start(ctx); err != nil {
					return fmt.Errorf("start config watcher: %w", err)
				}
				defer w.Stop()

				if err := hb.Start(); err != nil {
					return fmt.Errorf("start heartbeat: %w", err)
				}
				<-ctx.Done()
			} else {
				if err := hb.RunBlocking(ctx); err != nil && !errors.Is(err, context.Canceled) {
					return fmt.Errorf("run heartbeat: %w", err)
				}
			}

			// Graceful shutdown; redundant after RunBlocking, which already
			// stopped and waited.
			hb.Stop()
			if err := hb.WaitWithTimeout(cfg.ShutdownTimeout); err != nil {
				zlog.Warn().Err(err).Msg("worker did not unwind in time")
				return err
			}

			zlog.Info().Int64("beats_emitted", hb.Count()).Msg("shutdown complete")
			return nil
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.runlet/config.toml)")
	root.Flags().DurationVar(&cfg.Interval, "interval", cfg.Interval, "delay between heartbeats")
	root.Flags().IntVar(&cfg.Beats, "beats", cfg.Beats, "stop after this many beats (0 = run until interrupted)")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Pretty, "pretty", cfg.Pretty, "human-readable console output instead of JSON")
	root.Flags().BoolVar(&cfg.WatchConfig, "watch-config", cfg.WatchConfig, "restart the worker when the config file changes")
	root.Flags().DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "maximum time to wait for the worker to unwind")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "runlet:", err)
		os.Exit(1)
	}
}
