package app

import (
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/clyde80/cliclock/internal/config"
)

// cellStyles paints lit and dark cells.
type cellStyles struct {
	lit     lipgloss.Style
	dark    lipgloss.Style
	litRune string
}

// newCellStyles lights cells with a background of fg. Profiles that cannot
// show a background get a solid block in the foreground color instead.
func newCellStyles(fg color.Color, profile colorprofile.Profile) cellStyles {
	s := cellStyles{
		dark:    lipgloss.NewStyle(),
		litRune: string(config.BlankRune),
	}
	switch profile {
	case colorprofile.Ascii, colorprofile.NoTTY:
		s.lit = lipgloss.NewStyle().Foreground(fg)
		s.litRune = string(config.BlockRune)
	default:
		s.lit = lipgloss.NewStyle().Background(fg)
	}
	return s
}

// RenderFace renders the face alone, one line per row. Runs of equal cells
// share a single styled segment.
func (c *Clock) RenderFace() string {
	f := c.face
	lines := make([]string, f.Height())
	for r := range f.Height() {
		var sb strings.Builder
		col := 0
		for col < f.Width() {
			lit := f.Lit(r, col)
			run := 1
			for col+run < f.Width() && f.Lit(r, col+run) == lit {
				run++
			}
			if lit {
				sb.WriteString(c.styles.lit.Render(strings.Repeat(c.styles.litRune, run)))
			} else {
				sb.WriteString(c.styles.dark.Render(strings.Repeat(string(config.BlankRune), run)))
			}
			col += run
		}
		lines[r] = sb.String()
	}
	return strings.Join(lines, "\n")
}

// GetCanvas places the face at the viewport origin on a terminal-sized canvas.
func (c *Clock) GetCanvas() *lipgloss.Canvas {
	width := max(c.Width, c.Geometry.Width)
	height := max(c.Height, c.Geometry.Height)
	canvas := lipgloss.NewCanvas(width, height)

	layer := lipgloss.NewLayer(c.RenderFace()).
		X(c.Geometry.OriginCol).
		Y(c.Geometry.OriginRow).
		ID("clock")
	canvas.Compose(layer)
	return canvas
}

// Render returns the full frame as a string.
func (c *Clock) Render() string {
	return lipgloss.Sprint(c.GetCanvas().Render())
}

func (c *Clock) View() tea.View {
	var view tea.View
	view.AltScreen = true
	if !c.Running {
		view.SetContent("")
		return view
	}
	view.SetContent(c.Render())
	return view
}
