package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/gridmark/gridmark/internal/editor"
)

type LsCmd struct {
	flags *Flags
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List tables in markdown files",
		UsageText: "gridmark ls [file|glob ...]",
		Description: `Displays every pipe table found in the given files with its line range,
dimensions, and header. Arguments may be files or doublestar globs;
without arguments, the configured format.patterns are used.`,
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(_ context.Context, c *cli.Command) error {
	patterns := c.Args().Slice()
	if len(patterns) == 0 {
		patterns = cmd.flags.Config.Format.Patterns
	}

	files, err := editor.Glob(".", patterns)
	if err != nil {
		return fmt.Errorf("resolve patterns: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "No files matched")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "FILE\tLINES\tSIZE\tHEADER")

	found := 0
	for _, path := range files {
		infos, err := editor.ListTables(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", path, err)
			continue
		}
		for _, info := range infos {
			found++
			_, _ = fmt.Fprintf(w, "%s\t%d-%d\t%dx%d\t%s\n",
				path,
				info.Span.StartLine+1, info.Span.EndLine+1,
				info.Rows, info.Columns,
				headerLabel(info.Header))
		}
	}
	_ = w.Flush()

	if found == 0 {
		fmt.Fprintln(os.Stderr, "No tables found")
	}
	return nil
}

// headerLabel joins header cells, truncated to fit the terminal.
func headerLabel(header []string) string {
	s := strings.Join(header, " | ")

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	// Leave room for the other columns.
	max := width / 2
	if max < 20 {
		max = 20
	}
	if runes := []rune(s); len(runes) > max {
		return string(runes[:max-1]) + "…"
	}
	return s
}
