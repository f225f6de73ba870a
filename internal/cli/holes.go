package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/footgen/pkg/emit"
	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
	"github.com/matzehuels/footgen/pkg/pipeline"
)

// holesOpts holds the merged flag and config-file settings for `holes`.
type holesOpts struct {
	dir        string
	jobs       int
	tedit      string
	configPath string
	pick       bool
}

func (c *CLI) holesCommand() *cobra.Command {
	opts := holesOpts{dir: DefaultOutputDir, jobs: pipeline.DefaultJobs}

	cmd := &cobra.Command{
		Use:   "holes",
		Short: "Write the mounting-hole footprint library",
		Long: `Write one .kicad_mod file per mounting-hole table entry.

The built-in table covers plain drills from 2.5 to 6.5 mm, ISO 273 metric
clearance holes (M2 to M8) and the DIN965, ISO14580 and ISO7380 screw heads,
each with and without an annular ring. Entries from --config are appended.`,
		Example: `  footgen holes
  footgen holes -d lib/MountingHole.pretty -j 8
  footgen holes --config footgen.toml --tedit 5478A913
  footgen holes --pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			mergeHolesConfig(cmd, &opts, cfg)
			return c.runHoles(cmd.Context(), cfg.holeTable(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dir, "dir", "d", opts.dir, "output directory")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", opts.jobs, fmt.Sprintf("concurrent writes (1-%d)", pipeline.MaxJobs))
	cmd.Flags().StringVar(&opts.tedit, "tedit", "", "fixed edit timestamp in hex (default: now)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "TOML config file")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose entries interactively")

	return cmd
}

// mergeHolesConfig fills options from the config file unless the matching
// flag was set explicitly.
func mergeHolesConfig(cmd *cobra.Command, opts *holesOpts, cfg *fileConfig) {
	flags := cmd.Flags()
	if cfg.OutputDir != "" && !flags.Changed("dir") {
		opts.dir = cfg.OutputDir
	}
	if cfg.Jobs != 0 && !flags.Changed("jobs") {
		opts.jobs = cfg.Jobs
	}
	if cfg.Tedit != "" && !flags.Changed("tedit") {
		opts.tedit = cfg.Tedit
	}
}

func (c *CLI) runHoles(ctx context.Context, table []mountinghole.Config, opts holesOpts) error {
	logger := loggerFromContext(ctx)

	popts := pipeline.Options{Jobs: opts.jobs, Logger: logger}
	if opts.tedit != "" {
		v, err := parseTedit(opts.tedit)
		if err != nil {
			return err
		}
		popts.Timestamp = time.Unix(int64(v), 0)
	}

	// Reject a bad table before the picker or any directory is created.
	if err := pipeline.ValidateTable(table); err != nil {
		return err
	}

	if opts.pick {
		chosen, err := pickHoles(c.In, c.Err, table)
		if err != nil {
			return err
		}
		if len(chosen) == 0 {
			printWarning(c.Err, "Nothing selected")
			return nil
		}
		table = chosen
	}

	prog := newProgress(logger)
	sink, err := emit.NewDir(opts.dir)
	if err != nil {
		return err
	}

	res, err := pipeline.NewRunner(logger).MountingHoles(ctx, sink, table, popts)
	if err != nil {
		printError(c.Err, "Generation failed")
		return err
	}

	prog.done(fmt.Sprintf("Generated %d footprints", res.Stats.Footprints))
	printSuccess(c.Err, "Wrote %s footprints", StyleNumber.Render(fmt.Sprint(res.Stats.Footprints)))
	printFile(c.Err, filepath.Clean(sink.Path))
	printStats(c.Err,
		fmt.Sprintf("%d footprints", res.Stats.Footprints),
		formatBytes(res.Stats.Bytes),
		fmt.Sprintf("%d jobs", popts.Jobs),
	)
	return nil
}
