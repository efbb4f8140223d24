package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gridmark/gridmark/internal/editor"
)

type FmtCmd struct {
	flags *Flags

	// flags
	dryRun bool
}

// NewFmtCmd creates a new fmt command
func NewFmtCmd(flags *Flags) *FmtCmd {
	return &FmtCmd{flags: flags}
}

// Register adds the fmt command to the application
func (cmd *FmtCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "fmt",
		Usage:     "Normalize markdown tables in place",
		UsageText: "gridmark fmt [--dry-run] [file|glob ...]",
		Description: `Rewrites every pipe table so columns are padded to equal width. Files
keep their surrounding text untouched; only table spans are rewritten.

Arguments may be files or doublestar globs like '**/*.md'. Without
arguments, the configured format.patterns are used.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "dry-run",
				Usage:       "report files that would change without writing",
				Destination: &cmd.dryRun,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *FmtCmd) run(_ context.Context, c *cli.Command) error {
	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		patterns = cmd.flags.Config.Format.Patterns
	}

	files, err := editor.Glob(".", patterns)
	if err != nil {
		return fmt.Errorf("resolve patterns: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(c.Root().Writer, "No files matched.")
		return nil
	}

	out := c.Root().Writer
	changed := 0
	for _, path := range files {
		var n int
		if cmd.dryRun {
			n, err = editor.CountUnformatted(path)
		} else {
			n, err = editor.FormatFile(path)
		}
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping file")
			continue
		}
		if n > 0 {
			changed++
			fmt.Fprintf(out, "%s: %d table(s)\n", path, n)
		}
	}

	if changed == 0 {
		fmt.Fprintln(out, "All tables already formatted.")
	}
	return nil
}
