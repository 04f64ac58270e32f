package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/spaghettifunk/geogen/engine/assets"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/export"
	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
	"github.com/spaghettifunk/geogen/engine/systems"
)

var (
	ErrNoCatalogue    = errors.New("no catalogue path and no built-in catalogue")
	ErrNotInitialized = errors.New("engine is not initialized")
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently generating or watching
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

type Engine struct {
	currentStage  Stage
	gameInstance  *Game
	assetManager  *assets.AssetManager
	systemManager *systems.SystemManager
	catalogue     *metadata.Catalogue
	formats       []metadata.ResourceType
	clock         *core.Clock
	runs          uint64
}

func New(g *Game) (*Engine, error) {
	if g == nil || g.ApplicationConfig == nil {
		return nil, fmt.Errorf("func New - game and application config must not be nil")
	}

	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}

	return &Engine{
		currentStage: EngineStageUninitialized,
		gameInstance: g,
		assetManager: am,
		clock:        core.NewClock(),
	}, nil
}

func (e *Engine) Stage() Stage {
	return e.currentStage
}

func (e *Engine) Initialize() error {
	e.currentStage = EngineStageInitializing

	if e.gameInstance.FnInitialize != nil {
		if err := e.gameInstance.FnInitialize(); err != nil {
			return err
		}
	}

	catalogue, err := e.loadCatalogue()
	if err != nil {
		return err
	}
	if err := e.configure(catalogue); err != nil {
		return err
	}

	config := e.gameInstance.ApplicationConfig
	if config.Watch {
		if len(config.CataloguePath) == 0 {
			core.LogWarn("watch mode needs a catalogue file; generating once")
		} else if err := e.assetManager.Watch(config.CataloguePath); err != nil {
			return err
		}
	}

	e.currentStage = EngineStageInitialized
	return nil
}

// loadCatalogue reads the catalogue file, or falls back to the game's catalogue.
func (e *Engine) loadCatalogue() (*metadata.Catalogue, error) {
	config := e.gameInstance.ApplicationConfig
	if len(config.CataloguePath) > 0 {
		return e.assetManager.LoadCatalogue(config.CataloguePath)
	}
	if e.gameInstance.Catalogue == nil {
		return nil, ErrNoCatalogue
	}
	c := *e.gameInstance.Catalogue
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

/**
 * @brief Applies the application overrides to the catalogue and (re)creates
 * the systems it needs.
 */
func (e *Engine) configure(catalogue *metadata.Catalogue) error {
	config := e.gameInstance.ApplicationConfig

	level := catalogue.LogLevel
	if len(config.LogLevel) > 0 {
		level = config.LogLevel
	}
	logLevel, err := core.ParseLogLevel(level)
	if err != nil {
		return err
	}
	core.SetLogLevel(logLevel)

	if len(catalogue.Name) == 0 {
		catalogue.Name = config.Name
	}
	if config.Workers > 0 {
		catalogue.Workers = config.Workers
	}
	if len(config.OutputDir) > 0 {
		catalogue.OutputDir = config.OutputDir
	}
	if len(config.Formats) > 0 {
		catalogue.Formats = config.Formats
	}
	if len(catalogue.Formats) == 0 {
		catalogue.Formats = DefaultFormats
	}

	formats, err := catalogue.ResourceTypes()
	if err != nil {
		return err
	}

	sm, err := systems.NewSystemManager(&systems.SystemManagerConfig{
		Workers:   catalogue.Workers,
		OutputDir: catalogue.OutputDir,
		Geometry: systems.GeometrySystemConfig{
			GenerateNormals:  catalogue.GenerateNormals,
			GenerateTangents: catalogue.GenerateTangents,
			Deduplicate:      catalogue.Deduplicate,
		},
	})
	if err != nil {
		return err
	}
	writers := []systems.ResourceWriter{
		&export.GLTFWriter{},
		&export.GLTFWriter{Binary: true},
		&export.STLWriter{},
		&export.PreviewWriter{},
	}
	for _, w := range writers {
		if err := sm.ResourceSystem().RegisterWriter(w); err != nil {
			_ = sm.Shutdown()
			return err
		}
	}

	if e.systemManager != nil {
		if err := e.systemManager.Shutdown(); err != nil {
			core.LogWarn("shutting down previous systems: %s", err)
		}
	}
	e.systemManager = sm
	e.catalogue = catalogue
	e.formats = formats
	return nil
}

/**
 * @brief Generates the catalogue once. In watch mode it then regenerates on
 * every write to the catalogue file until ctx is cancelled; a catalogue that
 * fails to load or build is reported and the previous output is kept.
 */
func (e *Engine) Run(ctx context.Context) error {
	if e.currentStage != EngineStageInitialized {
		return ErrNotInitialized
	}
	e.currentStage = EngineStageRunning
	defer func() { e.currentStage = EngineStageInitialized }()

	if err := e.generate(ctx); err != nil {
		return err
	}

	config := e.gameInstance.ApplicationConfig
	if !config.Watch || len(config.CataloguePath) == 0 {
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-e.assetManager.Errors():
			core.LogWarn("catalogue watcher: %s", err)
		case path := <-e.assetManager.Changes():
			core.LogInfo("%s changed, regenerating", path)
			if err := e.reload(ctx, path); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				core.LogError("regenerating %s: %s", path, err)
			}
		}
	}
}

func (e *Engine) reload(ctx context.Context, path string) error {
	catalogue, err := e.assetManager.LoadCatalogue(path)
	if err != nil {
		return err
	}
	if err := e.configure(catalogue); err != nil {
		return err
	}
	return e.generate(ctx)
}

// generate builds, packs and exports the current catalogue.
func (e *Engine) generate(ctx context.Context) error {
	e.clock.Start()
	defer e.clock.Stop()

	gs := e.systemManager.GeometrySystem()
	configs, err := gs.BuildAll(ctx, e.catalogue.Shapes, e.systemManager.JobSystem())
	if err != nil {
		return fmt.Errorf("building %s: %w", e.catalogue.Name, err)
	}
	for _, c := range configs {
		stats := math.ComputeMeshStats(c.Vertices, c.Indices)
		core.LogDebug("%s: %d triangles, edge %.4f±%.4f, %d degenerate",
			c.Name, stats.TriangleCount, stats.EdgeMean, stats.EdgeStdDev, stats.Degenerate)
	}

	pg := gs.Pack(e.catalogue.Name, configs)
	resources, err := e.systemManager.ResourceSystem().Write(pg, e.formats)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", pg.Name, err)
	}

	e.clock.Update()
	e.runs++
	shapes, vertices, indices := gs.Metrics.Totals()
	core.LogInfo("generated %s: %d shapes, %d draw ranges, %d vertices, %d indices in %.2fms (%.3fms per shape)",
		pg.Name, shapes, len(pg.Submeshes), vertices, indices, e.clock.ElapsedMS(), gs.Metrics.AverageMS())
	for _, r := range resources {
		core.LogInfo("wrote %s (%d bytes)", r.FullPath, r.DataSize)
	}
	gs.Metrics.Reset()

	if e.gameInstance.FnOnGenerated != nil {
		return e.gameInstance.FnOnGenerated(pg, resources)
	}
	return nil
}

// Runs reports how many generations completed.
func (e *Engine) Runs() uint64 {
	return e.runs
}

func (e *Engine) Shutdown() error {
	e.currentStage = EngineStageShuttingDown
	var errs []error
	if e.systemManager != nil {
		errs = append(errs, e.systemManager.Shutdown())
	}
	errs = append(errs, e.assetManager.Shutdown())
	e.currentStage = EngineStageUninitialized
	return errors.Join(errs...)
}
