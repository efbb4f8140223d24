package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gridmark/gridmark/internal/commands"
	"github.com/gridmark/gridmark/internal/core/config"
	"github.com/gridmark/gridmark/internal/core/eventbus"
	"github.com/gridmark/gridmark/internal/core/logging"
	"github.com/gridmark/gridmark/internal/editor"
	"github.com/gridmark/gridmark/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		busCancel context.CancelFunc
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "gridmark",
		Usage:     "Edit markdown tables as a grid",
		UsageText: "gridmark [global options] command [command options]",
		Description: `Gridmark opens markdown pipe tables in an interactive grid editor.

Edits flow back into the source file as normalized markdown, and external
changes to the file are merged into the open grid. The fmt, ls, and new
commands handle tables without opening the editor.

Run 'gridmark <file>' as a shorthand for 'gridmark edit <file>'.`,
		Version: build(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("GRIDMARK_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("GRIDMARK_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("GRIDMARK_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			// Always log to a file; stdout belongs to the TUI.
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			bus := eventbus.New(64)
			eventbus.RegisterDebugLogger(bus, logging.Component("bus"))
			eventbus.NewNotificationRouter(bus).Register()

			busCtx, cancel := context.WithCancel(context.Background())
			busCancel = cancel
			go bus.Run(busCtx)

			flags.Bus = bus
			flags.Editor = editor.NewService(cfg, bus)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// Flush pending write-backs before the bus stops
			if flags.Editor != nil {
				flags.Editor.CloseAll()
			}
			if flags.Bus != nil {
				flags.Bus.Close()
			}
			if busCancel != nil {
				busCancel()
			}
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	editCmd := commands.NewEditCmd(flags)

	app = editCmd.Register(app)
	app = commands.NewFmtCmd(flags).Register(app)
	app = commands.NewLsCmd(flags).Register(app)
	app = commands.NewNewCmd(flags).Register(app)

	// 'gridmark <file>' opens the editor directly
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() == 0 {
			return cli.ShowSubcommandHelp(c)
		}
		return editCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
