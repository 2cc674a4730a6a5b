// Package cli wires the hass2csv command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/jkaflik/hass2csv/internal/resample"
)

const name = "hass2csv"

// ErrUsage is returned when the command is invoked with the wrong arguments.
var ErrUsage = errors.New("usage: " + name + " <input_file> <output_file>")

// NewCommand returns the root command. Confirmation and help text go to out.
func NewCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:            name,
		Usage:           "Process sensor data into minute-level granularity",
		ArgsUsage:       "<input_file> <output_file>",
		HideHelpCommand: true,
		Writer:          out,
		Description: `Resample a Home Assistant history export onto a one-minute grid.

The input is a CSV with at least the entity_id, state and last_changed columns.
Every other column is treated as an entity attribute. The output holds one row
per minute between the earliest and latest entity reading, one column per
entity and one per {entity_id}_{attribute}, each cell carrying the latest value
known at that minute.

# Examples

  hass2csv history.csv history_minutely.csv`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("%w: expected 2 arguments, got %d", ErrUsage, cmd.Args().Len())
			}

			input, output := cmd.Args().Get(0), cmd.Args().Get(1)

			if _, err := resample.Convert(ctx, input, output); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.Writer, "Processed data saved to %s\n", output)
			return err
		},
	}
}

// Run executes the command with the given arguments, args[0] being the program name.
func Run(ctx context.Context, out io.Writer, args []string) error {
	return NewCommand(out).Run(ctx, args)
}
