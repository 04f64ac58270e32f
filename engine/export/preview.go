package export

import (
	"bufio"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sort"

	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/components"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
	"golang.org/x/image/colornames"
	"golang.org/x/image/vector"
)

const (
	DefaultTileSize = 160
	ambient         = 0.25
)

// previewLight points from the surface towards the light, in view space.
var previewLight = math.NewVec3(0.3, 0.5, 1.0).Normalize()

/**
 * @brief Renders a contact sheet: every draw range in its own tile, seen from
 * above at an angle, flat shaded and filled back to front.
 */
type PreviewWriter struct {
	/** @brief The edge length of one tile in pixels. DefaultTileSize when zero. */
	TileSize int
	/** @brief The colour behind the shapes. White when nil. */
	Background color.Color
	/** @brief The view every tile is drawn from. The default camera when nil. */
	Camera *components.Camera
}

func (w *PreviewWriter) ResourceType() metadata.ResourceType {
	return metadata.ResourceTypePNG
}

func (w *PreviewWriter) Write(pg *metadata.PackedGeometry, path string) error {
	img, err := w.Render(pg)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	if err := png.Encode(buf, img); err != nil {
		f.Close()
		return err
	}
	if err := buf.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type projectedTriangle struct {
	points [3]math.Vec2
	depth  float32
	fill   color.RGBA
}

// Render draws the contact sheet in memory.
func (w *PreviewWriter) Render(pg *metadata.PackedGeometry) (*image.RGBA, error) {
	if len(pg.Submeshes) == 0 {
		return nil, ErrNothingToExport
	}
	tile := w.TileSize
	if tile <= 0 {
		tile = DefaultTileSize
	}
	var background color.Color = colornames.White
	if w.Background != nil {
		background = w.Background
	}

	grid := newGridLayout(len(pg.Submeshes))
	img := image.NewRGBA(image.Rect(0, 0, grid.columns*tile, grid.rows*tile))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	camera := w.Camera
	if camera == nil {
		camera = components.NewCamera()
	}
	view := camera.GetView()
	for i, s := range pg.Submeshes {
		column, row := grid.cell(i)
		origin := image.Pt(column*tile, row*tile)
		triangles := projectSubmesh(pg, s, view, float32(tile))
		// Painter's order: farthest first.
		sort.SliceStable(triangles, func(a, b int) bool {
			return triangles[a].depth < triangles[b].depth
		})
		for _, t := range triangles {
			fillTriangle(img, origin, t)
		}
	}
	return img, nil
}

// projectSubmesh rotates the draw range into view space and scales it so its
// bounding sphere fills 90% of a tile. Tile coordinates have y pointing down.
func projectSubmesh(pg *metadata.PackedGeometry, s metadata.SubmeshGeometry, view math.Mat4, tile float32) []projectedTriangle {
	vertices := pg.SubmeshVertices(s)
	indices := pg.SubmeshIndices(s)

	radius := boundingRadius(s)
	if radius == 0 {
		return nil
	}
	scale := 0.45 * tile / radius
	half := 0.5 * tile

	out := make([]projectedTriangle, 0, len(indices)/3)
	for t := 0; t+2 < len(indices); t += 3 {
		var p [3]math.Vec3
		for k := 0; k < 3; k++ {
			p[k] = vertices[indices[t+k]].Position.Sub(s.Center).TransformDirection(view)
		}

		n := p[1].Sub(p[0]).Cross(p[2].Sub(p[0])).Normalize()
		if n == (math.Vec3{}) {
			continue
		}
		// Both sides are lit so that open shapes still show their inside.
		shade := ambient + (1-ambient)*math.Abs(n.Dot(previewLight))

		tri := projectedTriangle{
			depth: (p[0].Z + p[1].Z + p[2].Z) / 3,
			fill:  shadeColour(s.Colour, shade),
		}
		for k := 0; k < 3; k++ {
			tri.points[k] = math.NewVec2(half+p[k].X*scale, half-p[k].Y*scale)
		}
		out = append(out, tri)
	}
	return out
}

func shadeColour(c color.RGBA, shade float32) color.RGBA {
	shade = math.Clamp(shade, 0, 1)
	// Keep black shapes visible against the shading.
	lift := func(v uint8) uint8 {
		f := (float32(v)*0.8 + 40) * shade
		return uint8(math.Clamp(f, 0, 255))
	}
	return color.RGBA{R: lift(c.R), G: lift(c.G), B: lift(c.B), A: 255}
}

// fillTriangle rasterizes one triangle inside its bounding box only.
func fillTriangle(img *image.RGBA, origin image.Point, t projectedTriangle) {
	minX, minY := t.points[0].X, t.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range t.points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}

	bounds := image.Rect(
		origin.X+int(minX), origin.Y+int(minY),
		origin.X+int(maxX)+2, origin.Y+int(maxY)+2,
	).Intersect(img.Bounds())
	if bounds.Empty() {
		return
	}

	offsetX := float32(bounds.Min.X - origin.X)
	offsetY := float32(bounds.Min.Y - origin.Y)

	r := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	r.DrawOp = draw.Over
	r.MoveTo(t.points[0].X-offsetX, t.points[0].Y-offsetY)
	r.LineTo(t.points[1].X-offsetX, t.points[1].Y-offsetY)
	r.LineTo(t.points[2].X-offsetX, t.points[2].Y-offsetY)
	r.ClosePath()
	r.Draw(img, bounds, image.NewUniform(t.fill), image.Point{})
}
