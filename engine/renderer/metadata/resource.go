package metadata

import "fmt"

type ResourceType int

/** @brief The artefacts the engine can write for a packed geometry. */
const (
	/** @brief glTF 2.0 JSON with an embedded buffer. */
	ResourceTypeGLTF ResourceType = iota
	/** @brief glTF 2.0 binary container. */
	ResourceTypeGLB
	/** @brief Binary STL, one facet per triangle. */
	ResourceTypeSTL
	/** @brief Flat-shaded PNG contact sheet. */
	ResourceTypePNG
)

var resourceTypeNames = map[ResourceType]string{
	ResourceTypeGLTF: "gltf",
	ResourceTypeGLB:  "glb",
	ResourceTypeSTL:  "stl",
	ResourceTypePNG:  "png",
}

func (rt ResourceType) String() string {
	if name, ok := resourceTypeNames[rt]; ok {
		return name
	}
	return fmt.Sprintf("ResourceType(%d)", int(rt))
}

// Extension returns the file extension, including the dot.
func (rt ResourceType) Extension() string {
	return "." + rt.String()
}

// ParseResourceType maps a format name such as "stl" to its type.
func ParseResourceType(name string) (ResourceType, error) {
	for rt, n := range resourceTypeNames {
		if n == name {
			return rt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

/**
 * @brief A file written by an exporter.
 */
type Resource struct {
	/** @brief The kind of artefact. */
	ResourceType ResourceType
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the written file in bytes. */
	DataSize uint64
}
