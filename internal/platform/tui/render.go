package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/super-breakout/internal/core"
)

// ansiCodes maps the field palette onto ANSI 256-colour codes.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorWhite:         "15",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorOlive:         "142",
	core.ColorGray:          "242",
}

// painter turns a Screen into styled text for one output. SSH sessions get
// their own renderer so colours follow the remote terminal's profile.
type painter struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
}

// newPainter builds styles for r, or for the process's stdout when r is nil.
func newPainter(r *lipgloss.Renderer) painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := painter{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
	}
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p painter) style(c core.Color) lipgloss.Style {
	if st, ok := p.styles[c]; ok {
		return st
	}
	return p.plain
}

// paint renders the whole screen, one styled run per colour change.
func (p painter) paint(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		p.paintRow(&sb, s, y)
	}
	return sb.String()
}

func (p painter) paintRow(sb *strings.Builder, s *core.Screen, y int) {
	var run []rune
	runColor := s.GetCell(0, y).Color

	flush := func() {
		if len(run) > 0 {
			sb.WriteString(p.style(runColor).Render(string(run)))
			run = run[:0]
		}
	}

	for x := range s.Width() {
		cell := s.GetCell(x, y)
		if cell.Color != runColor {
			flush()
			runColor = cell.Color
		}
		run = append(run, cell.Rune)
	}
	flush()
}
