package systems

/** @brief The configuration shared by every system. */
type SystemManagerConfig struct {
	Workers   int
	OutputDir string
	Geometry  GeometrySystemConfig
}

type SystemManager struct {
	geometrySystem *GeometrySystem
	jobSystem      *JobSystem
	resourceSystem *ResourceSystem
}

func NewSystemManager(config *SystemManagerConfig) (*SystemManager, error) {
	workers := config.Workers
	if workers <= 0 {
		workers = 1
	}
	js, err := NewJobSystem(workers, workers*2)
	if err != nil {
		return nil, err
	}
	rs, err := NewResourceSystem(ResourceSystemConfig{
		OutputDir: config.OutputDir,
	})
	if err != nil {
		return nil, err
	}
	gs, err := NewGeometrySystem(&config.Geometry)
	if err != nil {
		return nil, err
	}
	return &SystemManager{
		geometrySystem: gs,
		jobSystem:      js,
		resourceSystem: rs,
	}, nil
}

func (sm *SystemManager) GeometrySystem() *GeometrySystem {
	return sm.geometrySystem
}

func (sm *SystemManager) JobSystem() *JobSystem {
	return sm.jobSystem
}

func (sm *SystemManager) ResourceSystem() *ResourceSystem {
	return sm.resourceSystem
}

func (sm *SystemManager) Shutdown() error {
	if err := sm.geometrySystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.resourceSystem.Shutdown(); err != nil {
		return err
	}
	if err := sm.jobSystem.Shutdown(); err != nil {
		return err
	}
	return nil
}
