// Package save persists engine cursor and emotion state as a single unit.
package save

import (
	"context"
	"errors"
	"time"

	"github.com/nightpath/storycore/internal/emotion"
)

// ErrSlotNotFound is returned by every Store when a slot does not exist.
var ErrSlotNotFound = errors.New("save slot not found")

// Data is one save unit: the engine cursor plus the emotion snapshot.
type Data struct {
	SceneID    string           `json:"current_scene"`
	EventIndex int              `json:"current_event_index"`
	Emotions   emotion.Snapshot `json:"emotions"`
	SavedAt    time.Time        `json:"saved_at"`
}

// Store persists save units by slot name. Implementations are safe for
// concurrent use; the adapter calling them is not.
type Store interface {
	Put(ctx context.Context, slot string, data Data) error
	Get(ctx context.Context, slot string) (Data, error)
	Delete(ctx context.Context, slot string) error
	List(ctx context.Context) ([]string, error)
}
