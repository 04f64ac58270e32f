package metadata

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/exp/slices"
	"golang.org/x/image/colornames"
)

var (
	ErrUnknownShapeKind = errors.New("unknown shape kind")
	ErrUnknownColour    = errors.New("unknown colour name")
	ErrUnknownFormat    = errors.New("unknown export format")
	ErrEmptyCatalogue   = errors.New("catalogue has no shapes")
)

/** @brief Names a shape family. Matches the `kind` key of a catalogue entry. */
type ShapeKind string

const (
	ShapeKindBox         ShapeKind = "box"
	ShapeKindTaperedBox  ShapeKind = "tapered_box"
	ShapeKindBar         ShapeKind = "bar"
	ShapeKindHollowBar   ShapeKind = "hollow_bar"
	ShapeKindSphere      ShapeKind = "sphere"
	ShapeKindGeosphere   ShapeKind = "geosphere"
	ShapeKindCylinder    ShapeKind = "cylinder"
	ShapeKindCone        ShapeKind = "cone"
	ShapeKindGrid        ShapeKind = "grid"
	ShapeKindQuad        ShapeKind = "quad"
	ShapeKindTetrahedron ShapeKind = "tetrahedron"
	ShapeKindPyramid     ShapeKind = "pyramid"
	ShapeKindWedge       ShapeKind = "wedge"
	ShapeKindHexagon     ShapeKind = "hexagon"
	ShapeKindDiamond     ShapeKind = "diamond"
	ShapeKindCandy       ShapeKind = "candy"
)

// ShapeKinds lists every kind the geometry system can build.
var ShapeKinds = []ShapeKind{
	ShapeKindBox, ShapeKindTaperedBox, ShapeKindBar, ShapeKindHollowBar,
	ShapeKindSphere, ShapeKindGeosphere, ShapeKindCylinder, ShapeKindCone,
	ShapeKindGrid, ShapeKindQuad, ShapeKindTetrahedron, ShapeKindPyramid,
	ShapeKindWedge, ShapeKindHexagon, ShapeKindDiamond, ShapeKindCandy,
}

func (k ShapeKind) Valid() bool {
	return slices.Contains(ShapeKinds, k)
}

/** @brief The colour given to shapes that do not name one. */
const DefaultColourName string = "gray"

/**
 * @brief One entry of a catalogue. Only the fields used by the entry's kind
 * are read; dimensions are passed to the builder unchecked.
 */
type ShapeConfig struct {
	Name string    `toml:"name"`
	Kind ShapeKind `toml:"kind"`

	Width  float32 `toml:"width,omitempty"`
	Height float32 `toml:"height,omitempty"`
	Depth  float32 `toml:"depth,omitempty"`

	Radius       float32 `toml:"radius,omitempty"`
	BottomRadius float32 `toml:"bottom_radius,omitempty"`
	TopRadius    float32 `toml:"top_radius,omitempty"`
	Slices       uint32  `toml:"slices,omitempty"`
	Stacks       uint32  `toml:"stacks,omitempty"`

	/** @brief Grid rows (m) and columns (n). */
	Rows    uint32 `toml:"rows,omitempty"`
	Columns uint32 `toml:"columns,omitempty"`

	/** @brief Quad corner and depth. */
	X float32 `toml:"x,omitempty"`
	Y float32 `toml:"y,omitempty"`
	Z float32 `toml:"z,omitempty"`

	Subdivisions uint32 `toml:"subdivisions,omitempty"`
	Colour       string `toml:"colour,omitempty"`
	/** @brief The number of draw ranges emitted for this entry. Zero means one. */
	Count uint32 `toml:"count,omitempty"`
}

func (sc *ShapeConfig) Instances() uint32 {
	if sc.Count == 0 {
		return 1
	}
	return sc.Count
}

// RGBA resolves the entry's colour name against the SVG named colours.
func (sc *ShapeConfig) RGBA() (color.RGBA, error) {
	return ParseColour(sc.Colour)
}

func (sc *ShapeConfig) Validate() error {
	if !sc.Kind.Valid() {
		return fmt.Errorf("shape %q: %w: %q", sc.Name, ErrUnknownShapeKind, sc.Kind)
	}
	if _, err := sc.RGBA(); err != nil {
		return fmt.Errorf("shape %q: %w", sc.Name, err)
	}
	return nil
}

// ParseColour looks up an SVG colour name, case insensitively. An empty name
// resolves to DefaultColourName.
func ParseColour(name string) (color.RGBA, error) {
	if name == "" {
		name = DefaultColourName
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColour, name)
	}
	return c, nil
}

/**
 * @brief The full description of a generation run: output settings followed
 * by the ordered list of shapes. Pack order follows the order of Shapes.
 */
type Catalogue struct {
	Name      string   `toml:"name"`
	LogLevel  string   `toml:"log_level"`
	Workers   int      `toml:"workers"`
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`

	/** @brief Optional post-processing applied to every generated mesh. */
	GenerateNormals  bool `toml:"generate_normals"`
	GenerateTangents bool `toml:"generate_tangents"`
	Deduplicate      bool `toml:"deduplicate"`

	Shapes []ShapeConfig `toml:"shape"`
}

func (c *Catalogue) Validate() error {
	if len(c.Shapes) == 0 {
		return ErrEmptyCatalogue
	}
	for i := range c.Shapes {
		if err := c.Shapes[i].Validate(); err != nil {
			return err
		}
	}
	if _, err := c.ResourceTypes(); err != nil {
		return err
	}
	return nil
}

// ResourceTypes parses Formats, dropping duplicates.
func (c *Catalogue) ResourceTypes() ([]ResourceType, error) {
	out := make([]ResourceType, 0, len(c.Formats))
	for _, f := range c.Formats {
		rt, err := ParseResourceType(strings.ToLower(f))
		if err != nil {
			return nil, err
		}
		if !slices.Contains(out, rt) {
			out = append(out, rt)
		}
	}
	return out, nil
}
