package content

import (
	"errors"
	"fmt"

	"github.com/nightpath/storycore/internal/narrative"
)

// CheckIntegrity verifies that every transition target in the catalog
// resolves to a real scene. The catalog itself never validates references;
// this runs once over static content, at load time or in regression tests.
func CheckIntegrity(catalog *narrative.Catalog) error {
	var errs []error
	for _, id := range catalog.AllIDs() {
		scene, _ := catalog.Get(id)
		for _, event := range scene.Events {
			for _, choice := range event.Choices {
				if choice.NextSceneID == "" {
					continue
				}
				if _, ok := catalog.Get(choice.NextSceneID); !ok {
					errs = append(errs, fmt.Errorf(
						"choice %q in event %q of scene %q references missing scene %q",
						choice.ID, event.ID, id, choice.NextSceneID))
				}
			}
		}
	}
	return errors.Join(errs...)
}
