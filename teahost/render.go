package teahost

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	portal "github.com/grindlemire/go-portal"
)

// RenderLayer draws one overlay layer as a bordered lipgloss block
// sized to the layer's rectangle. Rounded borders kick in as soon as
// the layer carries any corner radius; debug indicator layers render
// as empty colored frames.
func RenderLayer(l portal.Layer) string {
	w, h := int(l.Rect.Width), int(l.Rect.Height)
	if w < 2 || h < 2 {
		return ""
	}

	border := lipgloss.NormalBorder()
	if !l.Corners.IsZero() {
		border = lipgloss.RoundedBorder()
	}
	style := lipgloss.NewStyle().
		Border(border).
		Width(w - 2).
		Height(h - 2).
		MaxWidth(w).
		MaxHeight(h)

	switch l.Kind {
	case portal.LayerSourceIndicator:
		return style.BorderForeground(lipgloss.Color("10")).Render("")
	case portal.LayerDestinationIndicator:
		return style.BorderForeground(lipgloss.Color("12")).Render("")
	}
	return style.Render(layerBody(l.Content))
}

func layerBody(content any) string {
	switch c := content.(type) {
	case nil, portal.Placeholder:
		return ""
	case string:
		return c
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

// Composite splices each layer's rendered block into base at the
// layer's position, in slice order. Base is treated as a grid of
// lines; rows past the end of base are padded in.
func Composite(base string, layers []portal.Layer) string {
	lines := strings.Split(base, "\n")
	for _, l := range layers {
		block := RenderLayer(l)
		if block == "" {
			continue
		}
		row, col := int(l.Rect.Y), int(l.Rect.X)
		for i, blockLine := range strings.Split(block, "\n") {
			r := row + i
			if r < 0 {
				continue
			}
			for r >= len(lines) {
				lines = append(lines, "")
			}
			lines[r] = splice(lines[r], col, blockLine)
		}
	}
	return strings.Join(lines, "\n")
}

// splice overwrites line with insert starting at column col, keeping
// styled text on either side intact.
func splice(line string, col int, insert string) string {
	if col < 0 {
		col = 0
	}
	left := ansi.Truncate(line, col, "")
	pad := col - ansi.StringWidth(left)
	if pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, col+ansi.StringWidth(insert), "")
	return left + insert + right
}
