// Package scene describes initial grid contents as a list of painting
// operations, loaded from YAML files or embedded presets.
package scene

import (
	"embed"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"falling-sand/internal/brush"
	"falling-sand/internal/sims/sand"
)

//go:embed presets/*.yaml
var presets embed.FS

// Shape kinds understood by Apply.
const (
	ShapePoint = "point"
	ShapeLine  = "line"
	ShapeRect  = "rect"
)

// Point is an [x, y] cell coordinate. Negative components count back from
// the right or bottom edge, so -1 is the last column or row.
type Point [2]int

// Resolve maps p onto a w×h grid.
func (p Point) Resolve(w, h int) (int, int) {
	x, y := p[0], p[1]
	if x < 0 {
		x += w
	}
	if y < 0 {
		y += h
	}
	return x, y
}

// Op paints one shape. Brush widens points and lines; rects ignore it.
type Op struct {
	Element string `yaml:"element"`
	Shape   string `yaml:"shape"`
	From    Point  `yaml:"from"`
	To      Point  `yaml:"to"`
	Brush   int    `yaml:"brush"`
}

// Scene is a named list of operations applied in order.
type Scene struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Parse decodes and validates a scene.
func Parse(data []byte) (*Scene, error) {
	s := &Scene{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scene: %w", err)
	}
	for i, op := range s.Ops {
		if _, ok := sand.ByName(op.Element); !ok {
			return nil, fmt.Errorf("scene %q op %d: unknown element %q", s.Name, i, op.Element)
		}
		switch op.Shape {
		case ShapePoint, ShapeLine, ShapeRect:
		default:
			return nil, fmt.Errorf("scene %q op %d: unknown shape %q", s.Name, i, op.Shape)
		}
	}
	return s, nil
}

// Load reads a scene file.
func Load(file string) (*Scene, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading scene: %w", err)
	}
	return Parse(data)
}

// Preset returns an embedded scene by name.
func Preset(name string) (*Scene, error) {
	data, err := presets.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return nil, fmt.Errorf("unknown preset %q (have %s)", name, strings.Join(Names(), ", "))
	}
	return Parse(data)
}

// Names lists the embedded presets.
func Names() []string {
	entries, _ := presets.ReadDir("presets")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve loads name as a preset, falling back to a file path.
func Resolve(name string) (*Scene, error) {
	if s, err := Preset(name); err == nil {
		return s, nil
	}
	return Load(name)
}

// Apply paints every operation onto g with the painter's overwrite rules:
// cells already holding an element are kept unless the op paints Nothing.
func (s *Scene) Apply(g *sand.Grid) {
	p := brush.NewPainter()
	w, h := g.Width(), g.Height()
	for _, op := range s.Ops {
		e, ok := sand.ByName(op.Element)
		if !ok {
			continue
		}
		p.Select(e)
		p.SetSize(op.Brush)
		x0, y0 := op.From.Resolve(w, h)
		x1, y1 := op.To.Resolve(w, h)
		switch op.Shape {
		case ShapePoint:
			p.Stroke(g, x0, y0, x0, y0)
		case ShapeLine:
			p.Stroke(g, x0, y0, x1, y1)
		case ShapeRect:
			p.Fill(g, x0, y0, x1, y1)
		}
	}
}
