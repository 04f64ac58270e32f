package assets

import "github.com/spaghettifunk/geogen/engine/renderer/metadata"

type Loader interface {
	Load(path string) (*metadata.Catalogue, error)
}
