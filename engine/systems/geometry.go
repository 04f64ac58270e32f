package systems

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/generator"
	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

/** @brief The configuration for the geometry system. */
type GeometrySystemConfig struct {
	/** @brief Recompute face normals after the builder has run. */
	GenerateNormals bool
	/** @brief Recompute tangents from the texture coordinates after the builder has run. */
	GenerateTangents bool
	/** @brief Merge identical vertices after the builder has run. */
	Deduplicate bool
}

type GeometrySystem struct {
	Config  GeometrySystemConfig
	Metrics *core.GenerationMetrics
}

type builderFunc func(shape *metadata.ShapeConfig) generator.MeshData

// builders maps every shape kind onto its generator call.
var builders = map[metadata.ShapeKind]builderFunc{
	metadata.ShapeKindBox: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateBox(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindTaperedBox: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateTaperedBox(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindBar: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateBar(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindHollowBar: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateHollowBar(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindSphere: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateSphere(s.Radius, s.Slices, s.Stacks)
	},
	metadata.ShapeKindGeosphere: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateGeosphere(s.Radius, s.Subdivisions)
	},
	metadata.ShapeKindCylinder: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateCylinder(s.BottomRadius, s.TopRadius, s.Height, s.Slices, s.Stacks)
	},
	metadata.ShapeKindCone: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateCone(s.BottomRadius, s.Height, s.Slices, s.Stacks)
	},
	metadata.ShapeKindGrid: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateGrid(s.Width, s.Depth, s.Rows, s.Columns)
	},
	metadata.ShapeKindQuad: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateQuad(s.X, s.Y, s.Width, s.Height, s.Z)
	},
	metadata.ShapeKindTetrahedron: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateTetrahedron(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindPyramid: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreatePyramid(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindWedge: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateWedge(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindHexagon: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateHexagon(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindDiamond: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateDiamond(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
	metadata.ShapeKindCandy: func(s *metadata.ShapeConfig) generator.MeshData {
		return generator.CreateCandy(s.Width, s.Height, s.Depth, s.Subdivisions)
	},
}

/**
 * @brief Creates the geometry system.
 *
 * @param config The configuration for this system.
 * @return The system, ready to build shapes.
 */
func NewGeometrySystem(config *GeometrySystemConfig) (*GeometrySystem, error) {
	if config == nil {
		return nil, fmt.Errorf("func NewGeometrySystem - config must not be nil")
	}
	return &GeometrySystem{
		Config:  *config,
		Metrics: core.NewGenerationMetrics(),
	}, nil
}

/**
 * @brief Builds the mesh described by one catalogue entry.
 *
 * @param shape The catalogue entry.
 * @return A geometry configuration holding the mesh, its extents and colour.
 */
func (gs *GeometrySystem) Build(shape *metadata.ShapeConfig) (*metadata.GeometryConfig, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	build, ok := builders[shape.Kind]
	if !ok {
		return nil, fmt.Errorf("shape %q: %w: %q", shape.Name, metadata.ErrUnknownShapeKind, shape.Kind)
	}
	colour, err := shape.RGBA()
	if err != nil {
		return nil, err
	}

	clock := core.NewClock()
	clock.Start()

	mesh := build(shape)
	vertices, indices := gs.postProcess(mesh.Vertices, mesh.Indices32)

	clock.Update()
	clock.Stop()

	extents, center := math.GeometryExtents(vertices)

	name := shape.Name
	if len(name) == 0 {
		name = string(shape.Kind)
	}

	config := &metadata.GeometryConfig{
		Name:        name,
		Kind:        shape.Kind,
		VertexCount: uint32(len(vertices)),
		Vertices:    vertices,
		IndexCount:  uint32(len(indices)),
		Indices:     indices,
		Center:      center,
		Extents:     extents,
		Colour:      colour,
		Instances:   shape.Instances(),
		ElapsedMS:   clock.ElapsedMS(),
	}
	gs.Metrics.Record(config.ElapsedMS, len(vertices), len(indices))

	core.LogDebug("built %s (%s): %d vertices, %d indices in %.3fms", config.Name, shape.Kind, config.VertexCount, config.IndexCount, config.ElapsedMS)
	return config, nil
}

func (gs *GeometrySystem) postProcess(vertices []math.Vertex, indices []uint32) ([]math.Vertex, []uint32) {
	if gs.Config.GenerateNormals {
		math.GeometryGenerateNormals(vertices, indices)
	}
	if gs.Config.GenerateTangents {
		math.GeometryGenerateTangents(vertices, indices)
	}
	if gs.Config.Deduplicate {
		vertices, indices = math.GeometryDeduplicateVertices(vertices, indices)
	}
	return vertices, indices
}

/**
 * @brief Builds every shape of the list. With a job system the shapes are built
 * concurrently; the result is always in the order of shapes.
 *
 * @param ctx Cancels the remaining builds.
 * @param shapes The catalogue entries.
 * @param js The job system to build on, or nil to build on the calling goroutine.
 */
func (gs *GeometrySystem) BuildAll(ctx context.Context, shapes []metadata.ShapeConfig, js *JobSystem) ([]*metadata.GeometryConfig, error) {
	results := make([]*metadata.GeometryConfig, len(shapes))

	if js == nil {
		for i := range shapes {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			config, err := gs.Build(&shapes[i])
			if err != nil {
				return nil, err
			}
			results[i] = config
		}
		return results, nil
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for i := range shapes {
		index := i
		wg.Add(1)
		task := metadata.JobTask{
			InputParams: &shapes[index],
			OnStart: func(params interface{}, out chan<- interface{}) error {
				if err := ctx.Err(); err != nil {
					return err
				}
				config, err := gs.Build(params.(*metadata.ShapeConfig))
				if err != nil {
					return err
				}
				out <- config
				return nil
			},
			OnComplete: func(out <-chan interface{}) {
				results[index] = (<-out).(*metadata.GeometryConfig)
			},
			OnFailure: func(out <-chan interface{}) {
				err, _ := (<-out).(error)
				setErr(fmt.Errorf("shape %d: %w", index, err))
			},
			OnCompletionCallback: wg.Done,
		}
		if err := js.Submit(ctx, task); err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

/**
 * @brief Concatenates geometries into one vertex/index buffer pair. Every
 * geometry contributes Instances draw ranges, each with its own copy of the
 * vertices and indices. Offsets are the running totals of the ranges before it.
 *
 * @param name The name of the packed geometry.
 * @param configs The geometries, in draw order.
 * @return The packed geometry.
 */
func (gs *GeometrySystem) Pack(name string, configs []*metadata.GeometryConfig) *metadata.PackedGeometry {
	var totalVertices, totalIndices int
	for _, c := range configs {
		instances := int(max(c.Instances, 1))
		totalVertices += instances * len(c.Vertices)
		totalIndices += instances * len(c.Indices)
	}

	pg := &metadata.PackedGeometry{
		ID:       uuid.New(),
		Name:     name,
		Vertices: make([]math.Vertex, 0, totalVertices),
		Indices:  make([]uint32, 0, totalIndices),
	}

	for _, c := range configs {
		instances := max(c.Instances, 1)
		for i := uint32(0); i < instances; i++ {
			submesh := metadata.SubmeshGeometry{
				Name:               instanceName(c.Name, i),
				Source:             c.Name,
				IndexCount:         uint32(len(c.Indices)),
				StartIndexLocation: uint32(len(pg.Indices)),
				VertexCount:        uint32(len(c.Vertices)),
				BaseVertexLocation: uint32(len(pg.Vertices)),
				Center:             c.Center,
				Extents:            c.Extents,
				Colour:             c.Colour,
			}
			pg.Vertices = append(pg.Vertices, c.Vertices...)
			pg.Indices = append(pg.Indices, c.Indices...)
			pg.Submeshes = append(pg.Submeshes, submesh)
		}
	}

	core.LogInfo("packed %d draw ranges into %s: %d vertices, %d indices", len(pg.Submeshes), pg.ID, len(pg.Vertices), len(pg.Indices))
	return pg
}

// instanceName numbers duplicate draw ranges from 2: box, box2, box3.
func instanceName(name string, instance uint32) string {
	if instance == 0 {
		return name
	}
	return fmt.Sprintf("%s%d", name, instance+1)
}

/**
 * @brief Shuts down the geometry system.
 */
func (gs *GeometrySystem) Shutdown() error {
	shapes, vertices, indices := gs.Metrics.Totals()
	core.LogDebug("geometry system built %d shapes (%d vertices, %d indices) in %.3fms", shapes, vertices, indices, gs.Metrics.TotalMS())
	gs.Metrics.Reset()
	return nil
}
