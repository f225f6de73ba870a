package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/footgen/pkg/errors"
	"github.com/matzehuels/footgen/pkg/footprint/mountinghole"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// HoleListModel - Interactive mounting-hole selection
// =============================================================================

// HoleListModel is the bubbletea model for choosing which table entries to
// generate. Space toggles an entry, a toggles all, enter confirms.
type HoleListModel struct {
	Holes     []mountinghole.Config
	Marked    []bool
	Cursor    int
	Height    int
	Offset    int
	Confirmed bool
}

// NewHoleListModel creates a picker with every entry unmarked.
func NewHoleListModel(holes []mountinghole.Config) HoleListModel {
	return HoleListModel{
		Holes:  holes,
		Marked: make([]bool, len(holes)),
		Height: 15,
	}
}

// Selection returns the marked entries in table order. Nothing is returned
// unless the user confirmed.
func (m HoleListModel) Selection() []mountinghole.Config {
	if !m.Confirmed {
		return nil
	}
	var out []mountinghole.Config
	for i, h := range m.Holes {
		if m.Marked[i] {
			out = append(out, h)
		}
	}
	return out
}

func (m HoleListModel) Init() tea.Cmd {
	return nil
}

func (m HoleListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Holes)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case " ", "x":
			if len(m.Holes) > 0 {
				m.Marked = toggled(m.Marked, m.Cursor)
			}
		case "a":
			m.Marked = allMarked(m.Marked)
		case "enter":
			m.Confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

// toggled returns a copy of marks with index i flipped. Models are values,
// so the slice is copied rather than shared with earlier states.
func toggled(marks []bool, i int) []bool {
	out := append([]bool(nil), marks...)
	out[i] = !out[i]
	return out
}

// allMarked marks everything, or clears everything when all were marked.
func allMarked(marks []bool) []bool {
	all := true
	for _, v := range marks {
		all = all && v
	}
	out := make([]bool, len(marks))
	for i := range out {
		out[i] = !all
	}
	return out
}

func (m HoleListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Mounting Holes"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ␣ toggle  a all  ⏎ generate  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Holes))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.Marked[i] {
			mark = "[x]"
		}
		rows = append(rows, []string{cursor + mark, mountinghole.Name(m.Holes[i])})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Footprint").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.Holes) {
				return lipgloss.NewStyle()
			}
			base := lipgloss.NewStyle()
			if m.Marked[idx] {
				base = base.Foreground(colorGreen)
			}
			if idx == m.Cursor {
				return base.Bold(true)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.Cursor+1, len(m.Holes), countMarked(m.Marked))))

	return b.String()
}

func countMarked(marks []bool) int {
	n := 0
	for _, v := range marks {
		if v {
			n++
		}
	}
	return n
}

// pickHoles runs the interactive picker and returns the chosen entries.
// A cancelled picker returns an empty selection.
func pickHoles(in io.Reader, out io.Writer, holes []mountinghole.Config) ([]mountinghole.Config, error) {
	p := tea.NewProgram(NewHoleListModel(holes), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "run picker")
	}
	return final.(HoleListModel).Selection(), nil
}
