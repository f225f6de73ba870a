// Package pipeline wires the footprint generators end to end.
//
// Each generator runs the same forward-only pipeline:
//
//  1. Table: the parameter sets to generate
//  2. Layout: geometry for one parameter set
//  3. Render: KiCad s-expression text
//  4. Emit: hand the document to an [emit.Sink]
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//
//	// Connector to stdout
//	_, err := runner.Connector(ctx, emit.NewStream(os.Stdout), vhdci.Default)
//
//	// Mounting holes, one file each
//	sink, _ := emit.NewDir("MountingHole.pretty")
//	result, err := runner.MountingHoles(ctx, sink, mountinghole.BuildTable(), pipeline.Options{Jobs: 4})
//
// The whole table is validated before the first file is written, so a bad
// entry or an identifier collision never leaves a half-written library.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/footgen/pkg/errors"
)

// DefaultJobs is the default number of concurrent file writes.
const DefaultJobs = 1

// MaxJobs bounds Options.Jobs.
const MaxJobs = 64

// Options configures a mounting-hole run.
type Options struct {
	// Jobs is the number of footprints generated concurrently.
	Jobs int

	// Timestamp is stamped into every document as the tedit value.
	// Zero means the time the run starts.
	Timestamp time.Time

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Result describes one pipeline run.
type Result struct {
	// Names lists the generated footprints in table order.
	Names []string

	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Footprints int
	Bytes      int
	Duration   time.Duration
}

// SetDefaults fills in zero-valued fields.
func (o *Options) SetDefaults(now time.Time) {
	if o.Jobs == 0 {
		o.Jobs = DefaultJobs
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = now
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks option ranges.
func (o *Options) Validate() error {
	if o.Jobs < 1 || o.Jobs > MaxJobs {
		return errors.New(errors.ErrCodeInvalidInput, "jobs must be between 1 and %d, got %d", MaxJobs, o.Jobs)
	}
	if o.Timestamp.Unix() < 0 || o.Timestamp.Unix() > int64(^uint32(0)) {
		return errors.New(errors.ErrCodeInvalidInput, "timestamp %s does not fit a 32-bit tedit", o.Timestamp)
	}
	return nil
}

// Tedit returns t as a KiCad edit timestamp.
func Tedit(t time.Time) uint32 {
	return uint32(t.Unix())
}
