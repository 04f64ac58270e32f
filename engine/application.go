package engine

import (
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

// DefaultFormats are written when neither the catalogue nor the application names any.
var DefaultFormats = []string{
	metadata.ResourceTypeGLTF.String(),
	metadata.ResourceTypePNG.String(),
}

/**
 * @brief Settings of one run. Zero values defer to the catalogue; the
 * catalogue's own empty values fall back to the engine defaults.
 */
type ApplicationConfig struct {
	// The application name, used for the packed geometry when the catalogue has none.
	Name string
	// Overrides the catalogue's log_level when not empty.
	LogLevel string
	// Path of a TOML catalogue. The game's built-in catalogue is used when empty.
	CataloguePath string
	// Overrides the catalogue's worker count when positive.
	Workers int
	// Overrides the catalogue's output directory when not empty.
	OutputDir string
	// Overrides the catalogue's export formats when not empty.
	Formats []string
	// Regenerate every time the catalogue file is written.
	Watch bool
}
