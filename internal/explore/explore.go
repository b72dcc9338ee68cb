// Package explore is an interactive terminal probe over an interpolator: one
// cursor coordinate per axis, moved with the keyboard, with the interpolated
// value and a preview of the curve along the selected axis.
package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/tabula/internal/chart"
	"github.com/san-kum/tabula/internal/grid"
	"github.com/san-kum/tabula/internal/viz"
)

const (
	stepFraction   = 0.1
	previewSamples = 64
)

type model struct {
	name   string
	interp *grid.Multilinear
	names  []string
	lo, hi []float64

	cursor []float64
	axis   int
	value  float64

	theme  int
	styles viz.Styles
	width  int
	err    error
}

func newModel(name string, m *grid.Multilinear, axisNames []string) model {
	lo, hi := m.Bounds()
	cursor := make([]float64, len(lo))
	for i := range cursor {
		cursor[i] = (lo[i] + hi[i]) / 2
	}

	names := make([]string, len(lo))
	for i := range names {
		if i < len(axisNames) && axisNames[i] != "" {
			names[i] = axisNames[i]
		} else {
			names[i] = fmt.Sprintf("x%d", i)
		}
	}

	md := model{
		name:   name,
		interp: m,
		names:  names,
		lo:     lo,
		hi:     hi,
		cursor: cursor,
		styles: viz.NewStyles(viz.Themes()[0]),
		width:  60,
	}
	md.evaluate()
	return md
}

func (m *model) evaluate() {
	m.value, m.err = m.interp.Eval(m.cursor...)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	// The cursor slice is shared with the previous model value.
	cursor := make([]float64, len(m.cursor))
	copy(cursor, m.cursor)
	m.cursor = cursor

	span := m.hi[m.axis] - m.lo[m.axis]
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.axis > 0 {
			m.axis--
		}
	case "down", "j":
		if m.axis < len(m.cursor)-1 {
			m.axis++
		}
	case "left", "h":
		m.move(-stepFraction * span)
	case "right", "l":
		m.move(stepFraction * span)
	case "home", "g":
		m.cursor[m.axis] = m.lo[m.axis]
	case "end", "G":
		m.cursor[m.axis] = m.hi[m.axis]
	case "t":
		themes := viz.Themes()
		m.theme = (m.theme + 1) % len(themes)
		m.styles = viz.NewStyles(themes[m.theme])
	}
	m.evaluate()
	return m, nil
}

func (m *model) move(delta float64) {
	m.cursor[m.axis] = grid.Clamp(m.cursor[m.axis]+delta, m.lo[m.axis], m.hi[m.axis])
}

func (m model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Header.Render(strings.ToUpper(m.name)) + "\n\n")

	for i, name := range m.names {
		marker := "  "
		label := s.Label.Render(name)
		if i == m.axis {
			marker = s.Selected.Render("▸ ")
			label = s.Selected.Width(14).Render(name)
		}
		fmt.Fprintf(&b, "%s%s%s %s\n", marker, label,
			s.Value.Render(fmt.Sprintf("%-12.6g", m.cursor[i])),
			s.Subtle.Render(fmt.Sprintf("[%g, %g]", m.lo[i], m.hi[i])))
	}

	b.WriteString("\n" + s.Separator(40) + "\n")
	if m.err != nil {
		b.WriteString(s.Error.Render(m.err.Error()) + "\n")
	} else {
		b.WriteString("  " + s.Label.Render("value") + s.Value.Render(fmt.Sprintf("%.6g", m.value)) + "\n")
	}

	if preview, err := chart.Slice(m.interp, m.cursor, m.axis, previewSamples); err == nil {
		b.WriteString("\n" + viz.Braille([]chart.Series{preview}, 32, 4))
		b.WriteString("  " + viz.SparklineChart(preview.Y, 32) + "\n")
	}

	b.WriteString("\n" + s.KeyHint.Render("↑/↓ axis  ←/→ move  home/end bounds  t theme  q quit") + "\n")
	return b.String()
}

// Run starts the probe on m and blocks until the user quits.
func Run(name string, m *grid.Multilinear, axisNames []string) error {
	p := tea.NewProgram(newModel(name, m, axisNames), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
