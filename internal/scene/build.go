package scene

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// EdgesSpec accepts either CSS shorthand ("1", "1 2", "1 2 3", "1 2 3 4")
// or a mapping with top/right/bottom/left/start/end keys.
type EdgesSpec struct {
	Shorthand string `yaml:"-"`

	Top    string `yaml:"top"`
	Right  string `yaml:"right"`
	Bottom string `yaml:"bottom"`
	Left   string `yaml:"left"`
	Start  string `yaml:"start"`
	End    string `yaml:"end"`
}

func (e *EdgesSpec) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		e.Shorthand = value.Value
		return nil
	case yaml.MappingNode:
		type plain EdgesSpec
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*e = EdgesSpec(p)
		return nil
	}
	return fmt.Errorf("line %d: edges must be a value or a mapping", value.Line)
}

var (
	directions = map[string]layout.Direction{
		"row":            layout.Row,
		"column":         layout.Column,
		"row-reverse":    layout.RowReverse,
		"column-reverse": layout.ColumnReverse,
	}
	wraps = map[string]layout.Wrap{
		"nowrap":       layout.NoWrap,
		"wrap":         layout.WrapLines,
		"wrap-reverse": layout.WrapReverse,
	}
	justifies = map[string]layout.Justify{
		"start":         layout.JustifyStart,
		"end":           layout.JustifyEnd,
		"center":        layout.JustifyCenter,
		"space-between": layout.JustifySpaceBetween,
		"space-around":  layout.JustifySpaceAround,
		"space-evenly":  layout.JustifySpaceEvenly,
	}
	aligns = map[string]layout.Align{
		"auto":          layout.AlignAuto,
		"start":         layout.AlignStart,
		"end":           layout.AlignEnd,
		"center":        layout.AlignCenter,
		"stretch":       layout.AlignStretch,
		"space-between": layout.AlignSpaceBetween,
		"space-around":  layout.AlignSpaceAround,
		"space-evenly":  layout.AlignSpaceEvenly,
	}
	positions = map[string]layout.PositionType{
		"relative": layout.Relative,
		"absolute": layout.Absolute,
	}
	overflows = map[string]layout.Overflow{
		"visible": layout.OverflowVisible,
		"hidden":  layout.OverflowHidden,
		"scroll":  layout.OverflowScroll,
	}
)

// builder converts specs into nodes, collecting every problem it finds.
type builder struct {
	errs   *multierror.Error
	byName map[string]*layout.Node
}

func newBuilder() *builder {
	return &builder{byName: make(map[string]*layout.Node)}
}

func (b *builder) fail(path, format string, args ...any) {
	b.errs = multierror.Append(b.errs, fmt.Errorf("%s: %s", path, fmt.Sprintf(format, args...)))
}

// build converts spec and its subtree. path names the node in errors:
// named nodes use their name, unnamed ones their index.
func (b *builder) build(spec *NodeSpec, path string) *layout.Node {
	n := layout.NewNode(b.style(spec, path))
	layout.SetContext(n, &Info{Name: spec.Name, Path: path, Text: spec.Text})

	if spec.Name != "" {
		if _, dup := b.byName[spec.Name]; dup {
			b.fail(path, "duplicate name %q", spec.Name)
		}
		b.byName[spec.Name] = n
	}

	if spec.Text != "" {
		if len(spec.Children) > 0 {
			b.fail(path, "a text node cannot have children")
		}
		n.SetMeasureFunc(TextMeasure(spec.Text))
	}

	for i := range spec.Children {
		child := &spec.Children[i]
		segment := child.Name
		if segment == "" {
			segment = fmt.Sprintf("[%d]", i)
		}
		n.AddChild(b.build(child, path+"/"+segment))
	}
	return n
}

func (b *builder) style(spec *NodeSpec, path string) layout.Style {
	s := layout.DefaultStyle()

	s.Width = b.value(path, "width", spec.Width)
	s.Height = b.value(path, "height", spec.Height)
	s.MinWidth = b.value(path, "min_width", spec.MinWidth)
	s.MinHeight = b.value(path, "min_height", spec.MinHeight)
	s.MaxWidth = b.value(path, "max_width", spec.MaxWidth)
	s.MaxHeight = b.value(path, "max_height", spec.MaxHeight)
	s.FlexBasis = b.value(path, "basis", spec.Basis)

	if spec.AspectRatio < 0 {
		b.fail(path, "aspect_ratio %v must not be negative", spec.AspectRatio)
	}
	s.AspectRatio = spec.AspectRatio

	s.Direction = enum(b, path, "direction", spec.Direction, directions, s.Direction)
	s.Wrap = enum(b, path, "wrap", spec.Wrap, wraps, s.Wrap)
	s.JustifyContent = enum(b, path, "justify", spec.Justify, justifies, s.JustifyContent)
	s.AlignItems = enum(b, path, "align_items", spec.AlignItems, aligns, s.AlignItems)
	s.AlignContent = enum(b, path, "align_content", spec.AlignContent, aligns, s.AlignContent)
	s.AlignSelf = enum(b, path, "align_self", spec.AlignSelf, aligns, s.AlignSelf)
	s.PositionType = enum(b, path, "position", spec.Position, positions, s.PositionType)
	s.Overflow = enum(b, path, "overflow", spec.Overflow, overflows, s.Overflow)

	if spec.Gap < 0 {
		b.fail(path, "gap %d must not be negative", spec.Gap)
	}
	s.Gap = spec.Gap

	if spec.Grow < 0 {
		b.fail(path, "grow %v must not be negative", spec.Grow)
	}
	s.FlexGrow = spec.Grow
	if spec.Shrink != nil {
		if *spec.Shrink < 0 {
			b.fail(path, "shrink %v must not be negative", *spec.Shrink)
		}
		s.FlexShrink = *spec.Shrink
	}

	s.Margin = b.edges(path, "margin", spec.Margin)
	s.Padding = b.edges(path, "padding", spec.Padding)
	s.Border = b.edges(path, "border", spec.Border)
	s.Position = b.edges(path, "offsets", spec.Offsets)
	s.Atomic = spec.Hidden
	return s
}

func (b *builder) value(path, field, raw string) layout.Value {
	v, err := layout.ParseValue(raw)
	if err != nil {
		b.fail(path, "%s: %v", field, err)
		return layout.Undefined()
	}
	return v
}

func (b *builder) edges(path, field string, spec EdgesSpec) layout.Edges {
	if spec.Shorthand == "" {
		return layout.Edges{
			Top:    b.value(path, field+".top", spec.Top),
			Right:  b.value(path, field+".right", spec.Right),
			Bottom: b.value(path, field+".bottom", spec.Bottom),
			Left:   b.value(path, field+".left", spec.Left),
			Start:  b.value(path, field+".start", spec.Start),
			End:    b.value(path, field+".end", spec.End),
		}
	}

	parts := strings.Fields(spec.Shorthand)
	vals := make([]layout.Value, len(parts))
	for i, p := range parts {
		vals[i] = b.value(path, field, p)
	}

	switch len(vals) {
	case 1:
		return layout.EdgeValue(vals[0])
	case 2:
		return layout.Edges{Top: vals[0], Right: vals[1], Bottom: vals[0], Left: vals[1]}
	case 3:
		return layout.Edges{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[1]}
	case 4:
		return layout.Edges{Top: vals[0], Right: vals[1], Bottom: vals[2], Left: vals[3]}
	}
	b.fail(path, "%s: expected 1 to 4 values, got %d", field, len(vals))
	return layout.Edges{}
}

func enum[T any](b *builder, path, field, raw string, table map[string]T, fallback T) T {
	if raw == "" {
		return fallback
	}
	v, ok := table[strings.ToLower(raw)]
	if !ok {
		b.fail(path, "%s: unknown value %q", field, raw)
		return fallback
	}
	return v
}
