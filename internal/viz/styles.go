package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/orrery/internal/panel"
)

const (
	panelWidth  = 34
	sliderWidth = 22
)

type styles struct {
	box     lipgloss.Style
	title   lipgloss.Style
	readout lipgloss.Style
	muted   lipgloss.Style
	track   lipgloss.Style
	cursor  lipgloss.Style
}

func newStyles(t Theme) styles {
	return styles{
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(1, 2).
			Width(panelWidth),
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Title).MarginBottom(1),
		readout: lipgloss.NewStyle().Foreground(t.Muted),
		muted:   lipgloss.NewStyle().Foreground(t.Muted),
		track:   lipgloss.NewStyle().Foreground(t.Track),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
	}
}

// slider draws a range control: filled track, thumb, empty track.
func slider(st styles, color string, fraction float64, width int) string {
	pos := int(fraction*float64(width-1) + 0.5)
	fill := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return fill.Render(strings.Repeat("━", pos)) +
		st.cursor.Render("●") +
		st.track.Render(strings.Repeat("─", width-1-pos))
}

// renderPanel draws the speed controls. Every row is read from the store.
func renderPanel(st styles, rows []panel.Row) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Orbital Speeds") + "\n")
	inner := panelWidth - 4
	for _, r := range rows {
		mark := "  "
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(r.Color))
		if r.Selected {
			mark = st.cursor.Render("› ")
			label = label.Bold(true)
		}
		readout := st.readout.Render(r.Readout)
		gap := inner - 2 - lipgloss.Width(r.Label) - lipgloss.Width(readout)
		if gap < 1 {
			gap = 1
		}
		b.WriteString(mark + label.Render(r.Label) + strings.Repeat(" ", gap) + readout + "\n")
		b.WriteString("  " + slider(st, r.Color, r.Fraction, sliderWidth) + "\n\n")
	}
	b.WriteString(st.muted.Render(fmt.Sprintf("range %.0f–%.0f, step %.1f", panel.Min, panel.Max, panel.Step)) + "\n")
	b.WriteString(st.muted.Render("↑↓ select  ←→ adjust  ? help"))
	return st.box.Render(b.String())
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Up/K     - Select previous body     ║
║  Down/J   - Select next body         ║
║  Left/H   - Slow down (-0.1x)        ║
║  Right/L  - Speed up (+0.1x)         ║
║  0        - Stop orbit               ║
║  R        - Reset to default speed   ║
║  W/A/S/D  - Orbit camera             ║
║  +/-      - Zoom                     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝
`
