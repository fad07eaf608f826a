package cmd

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// table renders aligned columns. Widths are measured with lipgloss so that
// styled cells line up.
type table struct {
	headers []string
	rows    [][]string
}

// tableStyle colors a table. The zero value renders plain text.
type tableStyle struct {
	header lipgloss.Style
	cell   func(col int, value string) lipgloss.Style
}

const columnGap = "  "

func (t *table) add(row ...string) { t.rows = append(t.rows, row) }

func (t *table) render(w io.Writer, style tableStyle) error {
	widths := make([]int, len(t.headers))

	for _, row := range append([][]string{t.headers}, t.rows...) {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var sb strings.Builder

	line := func(row []string, paint func(int, string) string) {
		var ln strings.Builder

		for i, cell := range row {
			if i >= len(widths) {
				break
			}

			if i > 0 {
				ln.WriteString(columnGap)
			}

			ln.WriteString(paint(i, cell))
			ln.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
		}

		sb.WriteString(strings.TrimRight(ln.String(), " "))
		sb.WriteByte('\n')
	}

	line(t.headers, func(_ int, s string) string {
		if style.cell == nil {
			return s
		}

		return style.header.Render(s)
	})

	for _, row := range t.rows {
		line(row, func(i int, s string) string {
			if style.cell == nil || s == "" {
				return s
			}

			return style.cell(i, s).Render(s)
		})
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	defineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	evalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	nameStyle   = lipgloss.NewStyle().Bold(true)
	plainStyle  = lipgloss.NewStyle()
)

func styleFor(plain bool, cell func(int, string) lipgloss.Style) tableStyle {
	if plain {
		return tableStyle{}
	}

	return tableStyle{header: headerStyle, cell: cell}
}
