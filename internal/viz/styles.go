package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the set of lipgloss styles derived from a Theme.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Subtle   lipgloss.Style
	KeyHint  lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Text).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Muted),
		Label: lipgloss.NewStyle().
			Foreground(t.Muted).
			Width(14),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Secondary),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Primary),
		Subtle: lipgloss.NewStyle().
			Foreground(t.Muted),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}

var (
	sparkHigh = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	sparkMid  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00"))
	sparkLow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444"))
)

// SparklineChart renders a one-line sparkline of values, at most width
// characters wide.
func SparklineChart(values []float64, width int) string {
	if len(values) == 0 {
		return strings.Repeat("─", width)
	}

	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	rng := max - min
	if rng == 0 {
		rng = 1
	}

	step := len(values) / width
	if step < 1 {
		step = 1
	}

	var result strings.Builder
	for i := 0; i < width && i*step < len(values); i++ {
		norm := (values[i*step] - min) / rng
		idx := int(norm * float64(len(chars)-1))
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		if idx < 0 {
			idx = 0
		}

		c := string(chars[idx])
		switch {
		case norm > 0.7:
			result.WriteString(sparkHigh.Render(c))
		case norm > 0.3:
			result.WriteString(sparkMid.Render(c))
		default:
			result.WriteString(sparkLow.Render(c))
		}
	}

	return result.String()
}

// Separator renders a muted rule with a centre mark.
func (s Styles) Separator(width int) string {
	mid := width / 2
	if mid < 3 {
		return s.Subtle.Render(strings.Repeat("─", width))
	}
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Subtle.Render(left + " ◆ " + right)
}
