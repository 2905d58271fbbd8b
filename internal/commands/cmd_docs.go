package commands

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

//go:embed guide.md
var guide string

type DocsCmd struct {
	flags *Flags
}

// NewDocsCmd creates a new docs command.
func NewDocsCmd(flags *Flags) *DocsCmd {
	return &DocsCmd{flags: flags}
}

// Register adds the docs command to the application.
func (cmd *DocsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "docs",
		Usage:     "Show the user guide",
		UsageText: "tumble docs",
		Action:    cmd.run,
	})
	return app
}

func (cmd *DocsCmd) run(_ context.Context, _ *cli.Command) error {
	width := 80
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	wrapWidth := min(width, 100)

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(guide)
	if err != nil {
		return fmt.Errorf("render guide: %w", err)
	}
	fmt.Print(out)
	return nil
}
