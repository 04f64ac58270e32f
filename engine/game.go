package engine

import (
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

/**
 * @brief The application driven by the engine: its configuration, the
 * catalogue it generates when no file is given and its hooks.
 */
type Game struct {
	ApplicationConfig *ApplicationConfig
	Catalogue         *metadata.Catalogue
	FnInitialize      Initialize
	FnOnGenerated     OnGenerated
}

type Initialize func() error
type OnGenerated func(pg *metadata.PackedGeometry, resources []metadata.Resource) error
