package commands

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/gridmark/gridmark/internal/editor"
	"github.com/gridmark/gridmark/internal/tui"
)

type EditCmd struct {
	flags *Flags

	// flags
	line int
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Open a markdown table in the grid editor",
		UsageText: "gridmark edit [--line N] <file>",
		Description: `Opens the table at the given line of a markdown file in an interactive
grid editor. Without --line, the first table in the file is opened.

Edits are written back into the source file after a short debounce, and
external changes to the file are merged into the open grid.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "line",
				Aliases:     []string{"l"},
				Usage:       "1-based line number inside the table to open",
				Destination: &cmd.line,
			},
		},
		Action: cmd.run,
	})

	return app
}

// Run executes the editor. Exported for use as default command.
func (cmd *EditCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *EditCmd) run(_ context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("missing file argument. Run 'gridmark edit --help' for usage")
	}

	// internally spans are 0-based
	line := cmd.line - 1
	if cmd.line <= 0 {
		line = -1
	}

	handle, err := cmd.flags.Editor.Open(path, line)
	if err != nil {
		if errors.Is(err, editor.ErrNoTable) {
			fmt.Fprintln(c.Root().Writer, "No table found at this location.")
			return nil
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer cmd.flags.Editor.Close(handle.Doc.Path())

	m := tui.NewModel(tui.Options{
		Handle: handle,
		Bus:    cmd.flags.Bus,
		Theme:  cmd.flags.Config.Theme,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	log.Debug().Str("path", handle.Doc.Path()).Msg("editor closed")
	return nil
}
