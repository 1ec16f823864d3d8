package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nightpath/storycore/internal/narrative"
	"github.com/nightpath/storycore/internal/types"
)

// Document is the on-disk catalog format: a list of scenes in play order.
type Document struct {
	Scenes []types.Scene `yaml:"scenes"`
}

// ParseYAML builds a catalog from YAML bytes.
func ParseYAML(data []byte) (*narrative.Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenes yaml: %w", err)
	}
	catalog, err := narrative.NewCatalog(doc.Scenes)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return catalog, nil
}

// LoadYAML reads a catalog from a YAML file.
func LoadYAML(path string) (*narrative.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenes file: %w", err)
	}
	return ParseYAML(data)
}
