// Package main is the entry point for the pagelinks command.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gompdf/pagelinks/internal/config"
	"github.com/gompdf/pagelinks/internal/logging"
	cli "github.com/urfave/cli/v3"
)

var version = "dev"

// state is shared by the subcommands of one invocation
type state struct {
	cfg      *config.Config
	closeLog func() error
}

func newApp() *cli.Command {
	st := &state{cfg: config.DefaultConfig()}

	return &cli.Command{
		Name:    "pagelinks",
		Usage:   "Compute and render page-link controls",
		Version: version,
		Flags:   globalFlags(),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, st.setup(cmd)
		},
		After: func(_ context.Context, _ *cli.Command) error {
			if st.closeLog == nil {
				return nil
			}
			return st.closeLog()
		},
		Commands: []*cli.Command{
			infoCommand(st),
			layoutCommand(st),
			htmlCommand(st),
			pdfCommand(st),
		},
	}
}

// setup loads the configuration file and installs the logger. Flags take
// precedence over the environment, which takes precedence over the file.
func (st *state) setup(cmd *cli.Command) error {
	cfg, err := config.Load(cmd.String("config-file"))
	if err != nil {
		return err
	}
	if cmd.Bool("debug") {
		cfg.Debug = true
	}
	st.cfg = cfg

	flagLog := logging.Config{
		Level:  cmd.String("log-level"),
		Format: cmd.String("log-format"),
		File:   cmd.String("log-file"),
	}
	if cfg.Debug && flagLog.Level == "" {
		flagLog.Level = "debug"
	}
	logCfg := logging.DefaultConfig().Merge(cfg.Logging).WithEnv().Merge(flagLog)

	closeLog, err := logging.Init(logCfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	st.closeLog = closeLog
	return nil
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
