package render

import (
	"strings"

	"advent/internal/pipes"
)

// PipeGrid renders a maze as styled box-drawing glyphs, one line per row.
// Tiles on the loop and the start tile are highlighted; everything else is
// dimmed.
func PipeGrid(grid pipes.Grid, styles Styles) string {
	var b strings.Builder
	for _, row := range grid {
		for _, tile := range row {
			glyph := string(tile.Shape.Glyph())
			switch {
			case tile.IsStart:
				b.WriteString(styles.Start.Render(string(pipes.Start.Glyph())))
			case tile.OnLoop:
				b.WriteString(styles.Loop.Render(glyph))
			default:
				b.WriteString(styles.Ground.Render(glyph))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
