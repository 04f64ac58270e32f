package loaders

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/geogen/engine/core"
	"github.com/spaghettifunk/geogen/engine/renderer/metadata"
)

var ErrInvalidCatalogue = errors.New("invalid catalogue")

/**
 * @brief Reads shape catalogues written in TOML. Unknown keys are rejected so
 * that a misspelt parameter does not silently fall back to zero.
 */
type CatalogueLoader struct{}

func (cl *CatalogueLoader) Load(path string) (*metadata.Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := cl.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded catalogue %q from %s with %d shapes", c.Name, path, len(c.Shapes))
	return c, nil
}

// Decode parses and validates a catalogue.
func (cl *CatalogueLoader) Decode(r io.Reader) (*metadata.Catalogue, error) {
	c := &metadata.Catalogue{}
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: line %d column %d: %s", ErrInvalidCatalogue, row, col, derr.Error())
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidCatalogue, err.Error())
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalogue, err)
	}
	return c, nil
}

// Encode writes the catalogue as TOML.
func (cl *CatalogueLoader) Encode(w io.Writer, c *metadata.Catalogue) error {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes the catalogue to path, replacing any existing file.
func (cl *CatalogueLoader) Save(path string, c *metadata.Catalogue) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := cl.Encode(f, c); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
