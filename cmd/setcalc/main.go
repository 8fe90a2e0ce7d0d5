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

	"github.com/bft-labs/setcalc/internal/app"
	"github.com/bft-labs/setcalc/internal/cliconfig"
	plog "github.com/bft-labs/setcalc/pkg/log"
)

const helpDescription = `
Interactive calculator over six sets (SETA..SETF) of integers 0-127.

Commands:
  read_set NAME m1,m2,...,-1    replace NAME with the listed members
  turnOn NAME,n                 add member n to NAME
  print_set NAME                print the members of NAME
  union_set A,B,R               R = A | B
  intersect_set A,B,R           R = A & B
  sub_set A,B,R                 R = A \ B
  symdiff_set A,B,R             R = A ^ B
  stop                          end the session

Commands are read from SCRIPT when given, otherwise from stdin with a prompt.
`

var exampleUsage = strings.TrimSpace(`
  setcalc
  setcalc commands.txt
  setcalc --watch --log-level debug commands.txt
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

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:           "setcalc [SCRIPT]",
		Short:         "Evaluate set algebra commands over six 128-member sets",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				cfg.Script = args[0]
			}

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			// SETCALC_* override the file; flags win over both.
			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			logger.Debug("configuration", plog.Any("config", cfg))

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.New(cfg, os.Stdout, logger).Run(ctx, os.Stdin)
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.setcalc/config.toml)")
	root.Flags().StringVar(&cfg.Prompt, "prompt", cfg.Prompt, "prompt shown before each command in interactive mode")
	root.Flags().BoolVar(&cfg.Echo, "echo", cfg.Echo, "echo each script line before executing it")
	root.Flags().IntVar(&cfg.MaxLineLength, "max-line-length", cfg.MaxLineLength, "longest accepted input line; longer lines are truncated")
	root.Flags().IntVar(&cfg.MaxTokens, "max-tokens", cfg.MaxTokens, "tokens kept per line; extra tokens are dropped")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error, disabled)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-run SCRIPT whenever it changes")
	root.Flags().DurationVar(&cfg.WatchDebounce, "debounce", cfg.WatchDebounce, "quiet period before re-running a changed script")
	if err := root.Flags().MarkHidden("max-tokens"); err != nil {
		log.Info().Err(err).Msg("failed to hide max-tokens flag")
	}

	if err := root.Execute(); err != nil {
		if errors.Is(err, app.ErrNoStop) {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(1)
		}
		if errors.Is(err, context.Canceled) {
			log.Info().Msg("interrupted")
			os.Exit(130)
		}
		log.Error().Err(err).Msg("setcalc")
		os.Exit(1)
	}
}
