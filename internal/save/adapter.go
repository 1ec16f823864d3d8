package save

import (
	"context"
	"fmt"
	"time"

	"github.com/nightpath/storycore/internal/emotion"
	"github.com/nightpath/storycore/internal/narrative"
)

// Adapter serializes and restores the engine/emotion pair through a Store.
type Adapter struct {
	engine   *narrative.Engine
	emotions *emotion.Model
	store    Store
	clock    emotion.Clock
}

// NewAdapter wires an adapter over the engine and model it will persist.
func NewAdapter(engine *narrative.Engine, emotions *emotion.Model, store Store, clock emotion.Clock) *Adapter {
	if clock == nil {
		clock = time.Now
	}
	return &Adapter{engine: engine, emotions: emotions, store: store, clock: clock}
}

// Save captures the current cursor and emotion state into the named slot.
func (a *Adapter) Save(ctx context.Context, slot string) (Data, error) {
	data := Data{
		SceneID:    a.engine.CurrentSceneID(),
		EventIndex: a.engine.CurrentEventIndex(),
		Emotions:   a.emotions.Snapshot(),
		SavedAt:    a.clock(),
	}
	if err := a.store.Put(ctx, slot, data); err != nil {
		return Data{}, fmt.Errorf("put save slot %q: %w", slot, err)
	}
	return data, nil
}

// Load restores a slot. Cursor restoration delegates to the engine's
// RestoreCursor so a scene id that vanished from the catalog resolves
// through the same fallback as any other unknown scene.
func (a *Adapter) Load(ctx context.Context, slot string) (Data, error) {
	data, err := a.store.Get(ctx, slot)
	if err != nil {
		return Data{}, fmt.Errorf("get save slot %q: %w", slot, err)
	}
	a.emotions.Restore(data.Emotions)
	a.engine.RestoreCursor(data.SceneID, data.EventIndex)
	return data, nil
}

// List returns the slot names present in the store.
func (a *Adapter) List(ctx context.Context) ([]string, error) {
	slots, err := a.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list save slots: %w", err)
	}
	return slots, nil
}
