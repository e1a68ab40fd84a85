// Package scene loads layout trees from YAML documents.
//
// A scene names a viewport and a root node. Each node carries style keys
// that mirror layout.Style, an optional name, optional text and children:
//
//	viewport: {width: 80, height: 24}
//	root:
//	  name: app
//	  direction: column
//	  children:
//	    - name: header
//	      height: 3
//	      text: Dashboard
//	    - name: body
//	      grow: 1
package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grindlemire/go-flex/internal/layout"
)

// Document is the YAML form of a scene.
type Document struct {
	Viewport Viewport  `yaml:"viewport"`
	Root     *NodeSpec `yaml:"root"`
}

// Viewport is the default size a scene is laid out in. Zero leaves the
// choice to the caller.
type Viewport struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// NodeSpec is the YAML form of one node. Dimension fields accept the
// forms understood by layout.ParseValue.
type NodeSpec struct {
	Name string `yaml:"name"`
	Text string `yaml:"text"`

	Width     string `yaml:"width"`
	Height    string `yaml:"height"`
	MinWidth  string `yaml:"min_width"`
	MinHeight string `yaml:"min_height"`
	MaxWidth  string `yaml:"max_width"`
	MaxHeight string `yaml:"max_height"`

	AspectRatio float64 `yaml:"aspect_ratio"`

	Direction    string `yaml:"direction"`
	Wrap         string `yaml:"wrap"`
	Justify      string `yaml:"justify"`
	AlignItems   string `yaml:"align_items"`
	AlignContent string `yaml:"align_content"`
	Gap          int    `yaml:"gap"`

	Grow      float64  `yaml:"grow"`
	Shrink    *float64 `yaml:"shrink"`
	Basis     string   `yaml:"basis"`
	AlignSelf string   `yaml:"align_self"`

	Margin  EdgesSpec `yaml:"margin"`
	Padding EdgesSpec `yaml:"padding"`
	Border  EdgesSpec `yaml:"border"`

	Position string    `yaml:"position"`
	Offsets  EdgesSpec `yaml:"offsets"`
	Overflow string    `yaml:"overflow"`
	Hidden   bool      `yaml:"hidden"`

	Children []NodeSpec `yaml:"children"`
}

// Info is attached to every node built from a scene.
type Info struct {
	Name string
	Path string
	Text string
}

// InfoOf returns the scene information of a node, or nil.
func InfoOf(n *layout.Node) *Info {
	info, _ := layout.ContextOf[*Info](n)
	return info
}

// Scene is a built layout tree.
type Scene struct {
	Viewport Viewport
	Root     *layout.Node

	byName map[string]*layout.Node
}

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from YAML. Every invalid key in the document is
// reported in the returned error.
func Parse(data []byte) (*Scene, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return Build(doc)
}

// Build turns a decoded document into a layout tree.
func Build(doc Document) (*Scene, error) {
	if doc.Root == nil {
		return nil, fmt.Errorf("scene has no root node")
	}

	b := newBuilder()
	if doc.Viewport.Width < 0 || doc.Viewport.Height < 0 {
		b.fail("viewport", "size %dx%d must not be negative", doc.Viewport.Width, doc.Viewport.Height)
	}
	rootPath := doc.Root.Name
	if rootPath == "" {
		rootPath = "root"
	}
	root := b.build(doc.Root, rootPath)
	if err := b.errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return &Scene{
		Viewport: doc.Viewport,
		Root:     root,
		byName:   b.byName,
	}, nil
}

// Node returns the node with the given name.
func (s *Scene) Node(name string) (*layout.Node, bool) {
	n, ok := s.byName[name]
	return n, ok
}

// Calculate lays the scene out in width x height cells. Non-positive
// sizes fall back to the scene viewport, then to unconstrained.
func (s *Scene) Calculate(width, height int) layout.Stats {
	return layout.CalculateWithStats(s.Root, s.dimension(width, s.Viewport.Width), s.dimension(height, s.Viewport.Height))
}

func (s *Scene) dimension(requested, viewport int) float64 {
	switch {
	case requested > 0:
		return float64(requested)
	case viewport > 0:
		return float64(viewport)
	}
	return layout.Unconstrained
}

// Walk visits the tree in pre-order.
func (s *Scene) Walk(fn func(n *layout.Node, depth int)) {
	walk(s.Root, 0, fn)
}

func walk(n *layout.Node, depth int, fn func(*layout.Node, int)) {
	fn(n, depth)
	for i := 0; i < n.ChildCount(); i++ {
		walk(n.Child(i), depth+1, fn)
	}
}
