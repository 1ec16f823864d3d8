// Package narrative holds the scene catalog and the engine that walks it.
package narrative

import (
	"fmt"

	"github.com/nightpath/storycore/internal/types"
)

// Catalog is the immutable set of authored scenes. It is populated once at
// load time and read-only afterward; the engine holds a non-owning reference.
type Catalog struct {
	scenes map[string]*types.Scene
	order  []string
}

// NewCatalog builds a catalog from scenes in definition order. Duplicate ids
// and scenes without events are structural loading errors.
func NewCatalog(scenes []types.Scene) (*Catalog, error) {
	c := &Catalog{
		scenes: make(map[string]*types.Scene, len(scenes)),
		order:  make([]string, 0, len(scenes)),
	}
	for i := range scenes {
		scene := scenes[i]
		if scene.ID == "" {
			return nil, fmt.Errorf("scene %d has no id", i)
		}
		if _, ok := c.scenes[scene.ID]; ok {
			return nil, fmt.Errorf("duplicate scene id %q", scene.ID)
		}
		if len(scene.Events) == 0 {
			return nil, fmt.Errorf("scene %q has no events", scene.ID)
		}
		c.scenes[scene.ID] = &scene
		c.order = append(c.order, scene.ID)
	}
	return c, nil
}

// Get looks up a scene by id.
func (c *Catalog) Get(sceneID string) (*types.Scene, bool) {
	scene, ok := c.scenes[sceneID]
	return scene, ok
}

// AllIDs returns scene ids in definition order.
func (c *Catalog) AllIDs() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of scenes.
func (c *Catalog) Len() int {
	return len(c.order)
}
