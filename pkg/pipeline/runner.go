package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/footgen/pkg/emit"
	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
	"github.com/matzehuels/footgen/pkg/footprint/vhdci"
	"github.com/matzehuels/footgen/pkg/kicad"
	"github.com/matzehuels/footgen/pkg/observability"
)

// Family names reported to observability hooks.
const (
	FamilyConnector    = "vhdci"
	FamilyMountingHole = "mountinghole"
)

// Runner executes generator pipelines. It holds no per-run state, so one
// Runner can serve several runs.
type Runner struct {
	Logger *log.Logger
	Now    func() time.Time
}

// NewRunner creates a runner logging to logger (log.Default when nil).
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger, Now: time.Now}
}

// Connector generates the connector footprint described by g and emits it
// as a single document.
func (r *Runner) Connector(ctx context.Context, sink emit.Sink, g vhdci.Geometry) (res *Result, err error) {
	start := r.Now()
	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, FamilyConnector, 1)
	defer func() {
		var n, size int
		if res != nil {
			n, size = res.Stats.Footprints, res.Stats.Bytes
		}
		hooks.OnFootprintComplete(ctx, g.Name, size, time.Since(start), err)
		hooks.OnRunComplete(ctx, FamilyConnector, n, size, time.Since(start), err)
	}()

	fp, err := g.Footprint()
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	r.Logger.Debug("computed layout", "name", fp.Name, "pins", g.Pins)

	data, err := kicad.Render(fp, vhdci.RenderOptions()...)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := sink.Emit(ctx, fp.Name, data); err != nil {
		return nil, err
	}

	return &Result{
		Names: []string{fp.Name},
		Stats: Stats{Footprints: 1, Bytes: len(data), Duration: time.Since(start)},
	}, nil
}

// MountingHoles generates one footprint per table entry and emits each as
// <identifier>.kicad_mod. The table is validated up front; generation then
// runs on opts.Jobs workers and stops at the first error.
func (r *Runner) MountingHoles(ctx context.Context, sink emit.Sink, table []mountinghole.Config, opts Options) (res *Result, err error) {
	start := r.Now()
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	opts.SetDefaults(start)
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := ValidateTable(table); err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	hooks.OnRunStart(ctx, FamilyMountingHole, len(table))
	defer func() {
		var n, size int
		if res != nil {
			n, size = res.Stats.Footprints, res.Stats.Bytes
		}
		hooks.OnRunComplete(ctx, FamilyMountingHole, n, size, time.Since(start), err)
	}()

	logger := opts.Logger
	tedit := Tedit(opts.Timestamp)
	logger.Debug("generating mounting holes", "entries", len(table), "jobs", opts.Jobs, "tedit", fmt.Sprintf("%X", tedit))

	names := make([]string, len(table))
	sizes := make([]int, len(table))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, c := range table {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			begin := time.Now()
			name, n, err := r.mountingHole(gctx, sink, c, tedit, logger)
			hooks.OnFootprintComplete(gctx, mountinghole.Name(c), n, time.Since(begin), err)
			if err != nil {
				return err
			}
			names[i], sizes[i] = name, n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &Result{Names: names}
	for _, n := range sizes {
		result.Stats.Bytes += n
	}
	result.Stats.Footprints = len(names)
	result.Stats.Duration = time.Since(start)
	return result, nil
}

func (r *Runner) mountingHole(ctx context.Context, sink emit.Sink, c mountinghole.Config, tedit uint32, logger *log.Logger) (string, int, error) {
	logger.Debug("mounting hole",
		"drill", c.Drill,
		"pad", optional(c.Pad),
		"screw", c.ScrewDiameter())

	fp, err := mountinghole.Build(c, tedit)
	if err != nil {
		return "", 0, fmt.Errorf("layout: %w", err)
	}
	data, err := kicad.Render(fp)
	if err != nil {
		return "", 0, fmt.Errorf("render: %w", err)
	}
	if err := sink.Emit(ctx, mountinghole.FileName(c), data); err != nil {
		return "", 0, err
	}
	return fp.Name, len(data), nil
}

// ValidateTable checks every entry and the uniqueness of the derived
// identifiers.
func ValidateTable(table []mountinghole.Config) error {
	for i, c := range table {
		if err := c.Validate(); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, mountinghole.Name(c), err)
		}
	}
	return mountinghole.CheckUnique(table)
}

func optional(v *float64) any {
	if v == nil {
		return "none"
	}
	return *v
}
