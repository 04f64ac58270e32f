package testbed

import (
	"github.com/spaghettifunk/geogen/engine"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

const CatalogueName = "shapes"

type TestGame struct {
	*engine.Game
}

// NewTestGame wraps config around the built-in shapes catalogue.
func NewTestGame(config *engine.ApplicationConfig) *TestGame {
	if config == nil {
		config = &engine.ApplicationConfig{}
	}
	if len(config.Name) == 0 {
		config.Name = CatalogueName
	}

	tg := &TestGame{
		Game: &engine.Game{
			ApplicationConfig: config,
			Catalogue:         DefaultCatalogue(),
		},
	}
	tg.FnInitialize = tg.Initialize
	tg.FnOnGenerated = tg.OnGenerated
	return tg
}

func (tg *TestGame) Initialize() error {
	if len(tg.ApplicationConfig.CataloguePath) == 0 {
		core.LogInfo("no catalogue given, generating the built-in %q catalogue", CatalogueName)
	}
	return nil
}

func (tg *TestGame) OnGenerated(pg *metadata.PackedGeometry, resources []metadata.Resource) error {
	core.LogDebug("%s (%s): %d draw ranges in %d files", pg.Name, pg.ID, len(pg.Submeshes), len(resources))
	return nil
}

/**
 * @brief The demo scene: every primitive the generator offers, with the
 * same parameters, colours and duplicate counts as the scene it comes from.
 */
func DefaultCatalogue() *metadata.Catalogue {
	return &metadata.Catalogue{
		Name:      CatalogueName,
		LogLevel:  "info",
		Workers:   4,
		OutputDir: "out",
		Formats:   []string{"gltf", "png"},
		Shapes: []metadata.ShapeConfig{
			{Name: "box", Kind: metadata.ShapeKindBox, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "black", Count: 5},
			{Name: "grid", Kind: metadata.ShapeKindGrid, Width: 20, Depth: 30, Rows: 60, Columns: 40, Colour: "rosybrown"},
			{Name: "sphere", Kind: metadata.ShapeKindSphere, Radius: 0.5, Slices: 20, Stacks: 20, Colour: "crimson"},
			{Name: "cylinder", Kind: metadata.ShapeKindCylinder, BottomRadius: 0.5, TopRadius: 0.5, Height: 1, Slices: 20, Stacks: 20, Colour: "gold", Count: 5},
			{Name: "hexagon", Kind: metadata.ShapeKindHexagon, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "aqua"},
			{Name: "tetrahedron", Kind: metadata.ShapeKindTetrahedron, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "gray"},
			{Name: "pyramid", Kind: metadata.ShapeKindPyramid, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "pink"},
			{Name: "diamond", Kind: metadata.ShapeKindDiamond, Width: 3, Height: 10, Depth: 3, Subdivisions: 3, Colour: "magenta"},
			{Name: "cone", Kind: metadata.ShapeKindCone, BottomRadius: 0.5, Height: 1, Slices: 20, Stacks: 20, Colour: "green", Count: 5},
			{Name: "wedge", Kind: metadata.ShapeKindWedge, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "red", Count: 4},
			{Name: "quad", Kind: metadata.ShapeKindQuad, X: 0, Y: 0, Width: 1, Height: 1, Z: 3, Colour: "silver"},
			{Name: "bar", Kind: metadata.ShapeKindBar, Width: 1, Height: 1, Depth: 1, Subdivisions: 3, Colour: "black"},
			{Name: "geosphere", Kind: metadata.ShapeKindGeosphere, Radius: 0.5, Subdivisions: 3, Colour: "crimson"},
		},
	}
}
