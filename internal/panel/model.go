// Package panel is a terminal control panel for the live-tunable parameters.
// It never touches the renderer: every edit leaves as a params.Change.
package panel

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"gooey/internal/params"
	"gooey/internal/scroll"
)

const (
	barWidth     = 20
	historyLen   = 60
	coarseFactor = 10
)

// PageColors is the palette the background control cycles through.
var PageColors = []string{
	params.DefaultPageColor, "#000000", "#101820", "#1a0f0c", "#0c1a12", "#1a1a1a", "#f4f1ea",
}

// Status is reported by the render loop.
type Status struct {
	Progress  float32
	Overlay   scroll.Overlay
	FrameTime time.Duration
	Frames    uint64
}

type Model struct {
	params  params.Parameters
	send    func(params.Change)
	cursor  int
	channel int
	page    int

	collapsed bool
	status    Status
	history   []float64
	err       error
}

// NewModel starts from a copy of p. send is called once for every edit.
func NewModel(p params.Parameters, send func(params.Change)) Model {
	page := slices.Index(PageColors, p.PageColor)
	if page < 0 {
		page = 0
	}
	return Model{params: p, send: send, page: page}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "c":
			m.collapsed = !m.collapsed
		case "up", "k":
			m.cursor = (m.cursor + len(params.Fields) - 1) % len(params.Fields)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(params.Fields)
		case "r":
			m.channel = 0
		case "g":
			m.channel = 1
		case "b":
			m.channel = 2
		case "tab":
			m.channel = (m.channel + 1) % 3
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "shift+left", "H":
			m.adjust(-coarseFactor)
		case "shift+right", "L":
			m.adjust(coarseFactor)
		}
	case Status:
		m.status = msg
		ms := float64(msg.FrameTime) / float64(time.Millisecond)
		m.history = append(m.history, ms)
		if len(m.history) > historyLen {
			m.history = m.history[len(m.history)-historyLen:]
		}
	}
	return m, nil
}

// Field returns the selected field.
func (m Model) Field() params.Field { return params.Fields[m.cursor] }

// Params returns the panel's view of the parameters.
func (m Model) Params() params.Parameters { return m.params }

func (m *Model) adjust(steps int) {
	field := m.Field()
	var c params.Change
	switch field {
	case params.FieldColor:
		r := params.Ranges[field]
		col := m.params.Color
		col[m.channel] = step(col[m.channel], steps, r)
		c = params.Change{Field: field, Color: col}
	case params.FieldPageColor:
		n := len(PageColors)
		m.page = ((m.page+steps)%n + n) % n
		c = params.Change{Field: field, Page: PageColors[m.page]}
	default:
		r := params.Ranges[field]
		c = params.Change{Field: field, Value: step(m.params.Value(field), steps, r)}
	}
	if err := m.params.Set(c); err != nil {
		m.err = err
		return
	}
	m.err = nil
	if m.send != nil {
		m.send(c)
	}
}

// step moves v by n slider steps, snapped to the step grid and clamped.
func step(v float32, n int, r params.Range) float32 {
	snapped := math.Round(float64(v)/float64(r.Step)) + float64(n)
	return r.Clamp(float32(snapped * float64(r.Step)))
}

func (m Model) View() string {
	if m.collapsed {
		return collapseStyle.Render("▸ gooey controls (c to expand)")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("▾ gooey controls"))
	b.WriteString("\n")

	for i, f := range params.Fields {
		label := labelStyle.Render(f.String())
		if i == m.cursor {
			label = activeStyle.Render("› " + f.String())
		}
		b.WriteString(label)
		b.WriteString(m.fieldView(f))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render(m.statusView()))
	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(4),
			asciigraph.Width(historyLen/2),
			asciigraph.Caption("frame ms"))
		b.WriteString("\n")
		b.WriteString(graphStyle.Render(chart))
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select  ←/→ adjust  shift+←/→ coarse  r/g/b channel  c collapse  q close"))

	return frameStyle.Render(b.String())
}

func (m Model) fieldView(f params.Field) string {
	switch f {
	case params.FieldColor:
		col := m.params.Color
		var parts []string
		for i, name := range []string{"r", "g", "b"} {
			part := fmt.Sprintf("%s %.2f", name, col[i])
			if i == m.channel {
				part = activeStyle.UnsetWidth().Render(part)
			}
			parts = append(parts, part)
		}
		return swatch(hexColor(col[0], col[1], col[2])) + " " + strings.Join(parts, "  ")
	case params.FieldPageColor:
		c, err := params.ParseColor(m.params.PageColor)
		if err != nil {
			return valueStyle.Render(m.params.PageColor)
		}
		return swatch(hexColor(c[0], c[1], c[2])) + " " + valueStyle.Render(m.params.PageColor)
	}
	v := m.params.Value(f)
	return bar(v, params.Ranges[f]) + " " + valueStyle.Render(fmt.Sprintf("%.3f", v))
}

func (m Model) statusView() string {
	o := m.status.Overlay
	return fmt.Sprintf("scroll %s %.2f\nhint %.2f  arrow %.2f @%.0fpx  content %.2f\nframes %d",
		bar(m.status.Progress, params.Range{Min: 0, Max: 1}), m.status.Progress,
		o.MessageOpacity, o.ArrowOpacity, o.ArrowY, o.ContentOpacity, m.status.Frames)
}

func bar(v float32, r params.Range) string {
	span := r.Max - r.Min
	filled := 0
	if span > 0 {
		filled = int(float32(barWidth) * (r.Clamp(v) - r.Min) / span)
	}
	return barStyle.Render(strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled))
}

func swatch(hex string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

func hexColor(r, g, b float32) string {
	to8 := func(v float32) int {
		return int(math.Round(float64(params.Ranges[params.FieldColor].Clamp(v)) * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", to8(r), to8(g), to8(b))
}
