// Package cli implements the footgen command-line interface.
//
// The CLI is built with cobra and logs through charmbracelet/log. Footprint
// documents go to the CLI's output writer; status lines and logs go to its
// error writer, so `footgen vhdci > VHDCI.kicad_mod` captures only the
// footprint.
//
// # Commands
//
//   - vhdci: write the 68-pin VHDCI connector footprint
//   - holes: write the mounting-hole library, one file per table entry
//   - list: show the mounting-hole table
//   - completion: generate shell completion scripts
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footgen/pkg/buildinfo"
)

// appName is the binary name used in help text and completion scripts.
const appName = "footgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives generated documents and listings.
	Out io.Writer
	// Err receives logs and status lines.
	Err io.Writer
	// In feeds the interactive picker.
	In io.Reader
}

// New creates a CLI writing documents to out and status to errw.
func New(out, errw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(errw, level),
		Out:    out,
		Err:    errw,
		In:     os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   appName,
		Short: "footgen generates KiCad footprints from parametric tables",
		Long: `footgen generates KiCad footprint files (.kicad_mod) from built-in parameter tables.

It knows two footprint families: the 68-pin VHDCI connector and a library of
mounting holes covering plain drills, ISO metric clearance holes and common
screw-head standards.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
			c.Logger.Debug(buildinfo.Banner())
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)
	root.SetErr(c.Err)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.vhdciCommand())
	root.AddCommand(c.holesCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}
