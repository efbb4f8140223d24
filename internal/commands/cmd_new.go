package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"github.com/gridmark/gridmark/internal/core/table"
)

type NewCmd struct {
	flags *Flags

	// flags
	columns string
	rows    int
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Append a new table to a markdown file",
		UsageText: "gridmark new [options] <file>",
		Description: `Appends an empty pipe table to the given file, creating the file when it
does not exist.

When --columns is omitted, an interactive form prompts for the header
and row count.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "columns",
				Aliases:     []string{"c"},
				Usage:       "comma-separated header cells, e.g. 'Task,Owner,Done'",
				Destination: &cmd.columns,
			},
			&cli.IntFlag{
				Name:        "rows",
				Aliases:     []string{"r"},
				Usage:       "number of empty data rows",
				Value:       1,
				Destination: &cmd.rows,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(_ context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("missing file argument. Run 'gridmark new --help' for usage")
	}

	if cmd.columns == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
	}

	header := splitColumns(cmd.columns)
	if len(header) == 0 {
		return fmt.Errorf("at least one column is required")
	}
	if cmd.rows < 1 {
		cmd.rows = 1
	}

	g := make(table.Grid, 0, cmd.rows+1)
	g = append(g, header)
	for i := 0; i < cmd.rows; i++ {
		g = append(g, make([]string, len(header)))
	}

	markdown := table.Encode(g)
	if err := appendTable(path, markdown); err != nil {
		return fmt.Errorf("append table: %w", err)
	}

	fmt.Fprintf(c.Root().Writer, "Added %dx%d table to %s\n", g.Rows(), g.Cols(), path)
	return nil
}

func (cmd *NewCmd) runForm() error {
	rowsStr := strconv.Itoa(cmd.rows)

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Columns").
				Description("Comma-separated header cells").
				Validate(validateColumns).
				Value(&cmd.columns),
			huh.NewInput().
				Title("Rows").
				Description("Number of empty data rows").
				Validate(validateRows).
				Value(&rowsStr),
		),
	).Run()
	if err != nil {
		return err
	}

	cmd.rows, _ = strconv.Atoi(rowsStr)
	return nil
}

func validateColumns(s string) error {
	if len(splitColumns(s)) == 0 {
		return fmt.Errorf("at least one column is required")
	}
	return nil
}

func validateRows(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return fmt.Errorf("enter a number of at least 1")
	}
	return nil
}

func splitColumns(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if cell := strings.TrimSpace(part); cell != "" {
			out = append(out, cell)
		}
	}
	return out
}

// appendTable writes markdown to the end of path, separated from existing
// content by a blank line. The file is created when missing.
func appendTable(path, markdown string) error {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	var b strings.Builder
	b.Write(existing)
	if len(existing) > 0 {
		if !strings.HasSuffix(string(existing), "\n") {
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	b.WriteString(markdown)

	return os.WriteFile(path, []byte(b.String()), 0o644)
}
