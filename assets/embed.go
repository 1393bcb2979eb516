package assets

import (
	"embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed entities.yaml
var FS embed.FS

// Entity maps one HTML entity, as written in the archive, to its glyph.
type Entity struct {
	Entity string `yaml:"entity"`
	Glyph  string `yaml:"glyph"`
}

func readEntities(r io.Reader) ([]Entity, error) {
	var out []Entity
	if err := yaml.NewDecoder(r).Decode(&out); err != nil {
		return nil, err
	}
	for i, e := range out {
		if e.Entity == "" {
			return nil, fmt.Errorf("entities: entry %d has no entity", i)
		}
	}
	return out, nil
}

// Entities returns the embedded entity table.
func Entities() ([]Entity, error) {
	f, err := FS.Open("entities.yaml")
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEntities(f)
}

// EntitiesFromFile reads an entity table in the same format from path.
// An empty path yields the embedded table.
func EntitiesFromFile(path string) ([]Entity, error) {
	if path == "" {
		return Entities()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readEntities(f)
}
