package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
	"github.com/matzehuels/footgen/pkg/pipeline"
)

func (c *CLI) listCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the mounting-hole table",
		Long: `Show every mounting-hole entry that "footgen holes" would write, with its
drill, pad, screw-head and courtyard diameters in millimetres.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			holes := cfg.holeTable()
			if err := pipeline.ValidateTable(holes); err != nil {
				return err
			}
			renderHoleTable(c.Out, holes)
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")

	return cmd
}

// renderHoleTable writes the table with one row per entry.
func renderHoleTable(w io.Writer, holes []mountinghole.Config) {
	rows := make([][]string, len(holes))
	for i, h := range holes {
		pad := "—"
		if h.HasPad() {
			pad = mm(*h.Pad)
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			mountinghole.Name(h),
			mm(h.Drill),
			pad,
			mm(h.ScrewDiameter()),
			mm(mountinghole.CourtyardDiameter(h)),
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Footprint", "Drill", "Pad", "Screw", "Courtyard").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 0 {
				return StyleDim
			}
			return lipgloss.NewStyle()
		})

	fmt.Fprintln(w, t.Render())
	fmt.Fprintln(w, StyleDim.Render(fmt.Sprintf("  %d entries", len(holes))))
}

func mm(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
