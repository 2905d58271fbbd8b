package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/okardan/tumble/internal/core/config"
	"github.com/okardan/tumble/internal/core/styles"
)

type InitCmd struct {
	flags *Flags

	// flags
	yes   bool
	force bool
}

// NewInitCmd creates a new init command.
func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

// Register adds the init command to the application.
func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Write a config file with an interactive wizard",
		UsageText: "tumble init [options]",
		Description: `Sets up tumble for first-time use.

The wizard picks a theme and optionally wires up a roll sound, then writes
the config file. Use --yes to accept defaults without prompts, --force to
overwrite an existing config (a backup is created).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(_ context.Context, _ *cli.Command) error {
	path := cmd.flags.ConfigPath

	if _, err := os.Stat(path); err == nil && !cmd.force {
		if cmd.yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", path)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(path + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(styles.WarnStyle.Render("Init cancelled"))
			return nil
		}
	}

	cfg := config.DefaultConfig()

	if !cmd.yes {
		soundEnabled := false
		var soundFile string

		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions(styles.ThemeNames()...)...).
				Value(&cfg.TUI.Theme),
			huh.NewConfirm().
				Title("Play a sound when rolling?").
				Value(&soundEnabled),
			huh.NewInput().
				Title("Sound file").
				Description("Path to a sound asset; leave empty for silent rolls").
				Placeholder("~/sounds/dice.wav").
				Value(&soundFile),
		))
		if err := form.Run(); err != nil {
			return err
		}

		cfg.Sound.Enabled = &soundEnabled
		cfg.Sound.File = expandHome(soundFile)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := os.Stat(path); err == nil {
		backup, err := backupConfig(path)
		if err != nil {
			return fmt.Errorf("backup config: %w", err)
		}
		fmt.Println(styles.SuccessStyle.Render("Backed up config to: " + backup))
	}

	if err := writeConfig(cfg, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	fmt.Println(styles.SuccessStyle.Render("Wrote config to: " + path))
	return nil
}

// backupConfig moves the existing config aside with a timestamp suffix.
func backupConfig(path string) (string, error) {
	backup := fmt.Sprintf("%s.bak-%s", path, time.Now().Format("20060102-150405"))
	if err := os.Rename(path, backup); err != nil {
		return "", err
	}
	return backup, nil
}

func writeConfig(cfg config.Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func expandHome(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
