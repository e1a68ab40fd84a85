package render

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/grindlemire/go-flex/internal/config"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/scene"
)

// Options controls grid output.
type Options struct {
	Border BorderStyle
	// Outline draws every node, not only the ones with a border.
	Outline bool
}

// Render formats a calculated scene as grid, table or plain output.
func Render(s *scene.Scene, format string, opts Options) (string, error) {
	switch format {
	case config.FormatGrid, "":
		return Boxes(s, opts).String(), nil
	case config.FormatTable:
		return Table(s), nil
	case config.FormatPlain:
		return Dump(s), nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// Boxes draws the scene onto a grid large enough to hold every node.
// Bordered nodes are outlined and titled with their name, text leaves
// show their wrapped text, and non-visible overflow clips descendants to
// the content box.
func Boxes(s *scene.Scene, opts Options) *Grid {
	var extent layout.Rect
	s.Walk(func(n *layout.Node, _ int) {
		extent = extent.Union(n.Layout().Absolute)
	})

	g := NewGrid(extent.Right(), extent.Bottom())
	drawNode(g, s.Root, g.Rect(), opts)
	return g
}

func drawNode(g *Grid, n *layout.Node, clip layout.Rect, opts Options) {
	l := n.Layout()
	abs := l.Absolute
	content := contentRect(l)

	if !abs.IsEmpty() {
		if opts.Outline || !l.Border.IsZero() {
			DrawBox(g, abs, opts.Border, clip)
			DrawTitle(g, abs, label(n), clip)
		}
		if info := scene.InfoOf(n); info != nil && info.Text != "" && !content.IsEmpty() {
			textClip := content.Intersect(clip)
			for i, line := range scene.WrapText(info.Text, content.Width) {
				g.SetString(content.X, content.Y+i, ansi.Strip(line), textClip)
			}
		}
	}

	if n.Style().Overflow != layout.OverflowVisible {
		clip = clip.Intersect(content)
	}
	for i := 0; i < n.ChildCount(); i++ {
		drawNode(g, n.Child(i), clip, opts)
	}
}

// contentRect places the content box in root coordinates.
func contentRect(l layout.Layout) layout.Rect {
	d := l.Absolute.Origin().Sub(l.Bounds.Origin())
	return l.ContentBounds.Translate(d.X, d.Y)
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

// Table lists the geometry of every node in a bordered table.
func Table(s *scene.Scene) string {
	var rows [][]string
	s.Walk(func(n *layout.Node, _ int) {
		l := n.Layout()
		rows = append(rows, []string{
			nodePath(n),
			formatRect(l.Bounds),
			formatRect(l.Absolute),
			formatRect(l.ContentBounds),
		})
	})

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("NODE", "BOUNDS", "ABSOLUTE", "CONTENT").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Rows(rows...)
	return t.String()
}

// Dump writes one indented line per node.
func Dump(s *scene.Scene) string {
	var sb strings.Builder
	s.Walk(func(n *layout.Node, depth int) {
		l := n.Layout()
		fmt.Fprintf(&sb, "%s%s %s", strings.Repeat("  ", depth), label(n), formatRect(l.Bounds))
		if l.ContentBounds != l.Bounds {
			fmt.Fprintf(&sb, " content %s", formatRect(l.ContentBounds))
		}
		if l.HadOverflow {
			sb.WriteString(" overflow")
		}
		sb.WriteByte('\n')
	})
	return sb.String()
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%d,%d %dx%d", r.X, r.Y, r.Width, r.Height)
}

func nodePath(n *layout.Node) string {
	if info := scene.InfoOf(n); info != nil {
		return info.Path
	}
	return "?"
}

// label names a node by its name, falling back to its last path segment.
func label(n *layout.Node) string {
	info := scene.InfoOf(n)
	if info == nil {
		return "?"
	}
	if info.Name != "" {
		return info.Name
	}
	return path.Base(info.Path)
}
