package scene

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/grindlemire/go-flex/internal/layout"
)

// TextMeasure returns a measure function for a run of text. The text wraps
// at word boundaries to the offered width, breaking words that do not fit
// on a line of their own. Widths count terminal cells, so escape
// sequences take no space and wide runes take two.
func TextMeasure(text string) layout.MeasureFunc {
	return func(_ *layout.Node, width float64, widthMode layout.MeasureMode, _ float64, _ layout.MeasureMode) layout.Size {
		if text == "" {
			return layout.Size{}
		}

		limit := 0
		if widthMode != layout.MeasureUndefined && !math.IsInf(width, 1) {
			limit = max(1, int(math.Floor(width)))
		}

		lines := WrapText(text, limit)
		w := 0
		for _, line := range lines {
			w = max(w, ansi.StringWidth(line))
		}
		return layout.Size{Width: float64(w), Height: float64(len(lines))}
	}
}

// WrapText splits text into display lines no wider than limit cells.
// A non-positive limit only splits at explicit newlines.
func WrapText(text string, limit int) []string {
	if limit > 0 {
		text = ansi.Wrap(text, limit, "")
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}
