package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/okardan/tumble/internal/core/roll"
)

type RollCmd struct {
	flags *Flags

	// flags
	count      int
	seed       int
	jsonOutput bool
}

// NewRollCmd creates a new roll command.
func NewRollCmd(flags *Flags) *RollCmd {
	return &RollCmd{flags: flags}
}

// Register adds the roll command to the application.
func (cmd *RollCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "roll",
		Usage:     "Roll the die without the animation",
		UsageText: "tumble roll [--count n] [--seed n] [--json]",
		Description: `Rolls one or more dice straight to stdout, skipping the TUI.

Useful for scripts; use --json for line-delimited JSON output.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "count",
				Aliases:     []string{"n"},
				Usage:       "number of dice to roll",
				Value:       1,
				Destination: &cmd.count,
			},
			&cli.IntFlag{
				Name:        "seed",
				Usage:       "seed the roll for reproducible output (0 = random)",
				Destination: &cmd.seed,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RollCmd) run(_ context.Context, _ *cli.Command) error {
	if cmd.count < 1 {
		return fmt.Errorf("count must be at least 1, got %d", cmd.count)
	}

	seed := int64(cmd.seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	faces := sample(cmd.count, roll.RandomSource(rand.New(rand.NewSource(seed))))

	if cmd.jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		for _, f := range faces {
			if err := enc.Encode(rollResult{Face: int(f)}); err != nil {
				return fmt.Errorf("encode roll: %w", err)
			}
		}
		return nil
	}

	for _, f := range faces {
		fmt.Println(int(f))
	}
	return nil
}

type rollResult struct {
	Face int `json:"face"`
}

// sample draws n faces from src.
func sample(n int, src roll.Source) []roll.Face {
	faces := make([]roll.Face, n)
	for i := range faces {
		faces[i] = src()
	}
	return faces
}
