package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/footgen/pkg/emit"
	"github.com/matzehuels/footgen/pkg/footprint/vhdci"
	"github.com/matzehuels/footgen/pkg/pipeline"
)

func (c *CLI) vhdciCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "vhdci",
		Short: "Write the 68-pin VHDCI connector footprint",
		Long: `Write the 68-pin VHDCI connector footprint.

The document goes to stdout unless --output names a file.`,
		Example: `  footgen vhdci > VHDCI.kicad_mod
  footgen vhdci -o VHDCI.kicad_mod`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runVHDCI(cmd.Context(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")

	return cmd
}

func (c *CLI) runVHDCI(ctx context.Context, output string) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	w, closeFn, err := emit.OpenOutput(output, c.Out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeFn(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	runner := pipeline.NewRunner(logger)
	res, err := runner.Connector(ctx, emit.NewStream(w), vhdci.Default)
	if err != nil {
		return err
	}

	prog.done("Generated " + res.Names[0])
	if output != "" && output != "-" {
		printSuccess(c.Err, "Wrote %s", res.Names[0])
		printFile(c.Err, output)
		printStats(c.Err, formatBytes(res.Stats.Bytes), res.Stats.Duration.Round(time.Microsecond).String())
	}
	return nil
}
