package narrative

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/nightpath/storycore/internal/emotion"
	"github.com/nightpath/storycore/internal/types"
)

// State is the engine's position in its lifecycle.
type State int

const (
	// StateIdle means no scene is loaded.
	StateIdle State = iota
	// StateInScene means the cursor points at a valid event.
	StateInScene
	// StateAwaitingTransition means a transition choice was applied and the
	// next Tick switches scenes.
	StateAwaitingTransition
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateInScene:
		return "in_scene"
	case StateAwaitingTransition:
		return "awaiting_transition"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

var (
	// ErrNoActiveScene rejects operations that need a current event.
	ErrNoActiveScene = errors.New("no active scene")
	// ErrChoiceOutOfRange rejects a choice index outside the current event's
	// choice list; the cursor is left unchanged.
	ErrChoiceOutOfRange = errors.New("choice index out of range")
)

// Sink receives state-change notifications so a presentation layer can
// render without polling. Implementations must not call back into the engine.
type Sink interface {
	SceneEntered(scene *types.Scene, event *types.SceneEvent)
	EmotionChanged(axis string, oldValue, newValue, delta int)
}

// Engine owns the cursor into the catalog: current scene, current event
// index, and any pending transition. All operations are synchronous and
// single-threaded by contract.
type Engine struct {
	catalog  *Catalog
	emotions *emotion.Model
	logger   *slog.Logger
	sink     Sink

	fallbackSceneID string

	state             State
	currentSceneID    string
	currentEventIndex int
	pendingSceneID    string
}

// NewEngine creates an idle engine. fallbackSceneID is the known-good scene
// entered whenever a requested scene is missing from the catalog.
func NewEngine(catalog *Catalog, emotions *emotion.Model, fallbackSceneID string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		catalog:         catalog,
		emotions:        emotions,
		logger:          logger,
		fallbackSceneID: fallbackSceneID,
		state:           StateIdle,
	}
}

// SetSink installs a notification sink. Pass nil to remove it.
func (e *Engine) SetSink(s Sink) {
	e.sink = s
}

// EnterScene loads a scene and positions the cursor at its first event,
// returning that event for the host to display. A missing id falls back to
// the configured fallback scene with a warning; this never fails so the
// presentation layer can always recover to a known-good scene. The engine
// goes Idle only if the fallback itself is absent.
func (e *Engine) EnterScene(sceneID string) *types.SceneEvent {
	scene, ok := e.catalog.Get(sceneID)
	if !ok {
		e.logger.Warn("scene not found, using fallback",
			"scene_id", sceneID, "fallback", e.fallbackSceneID)
		scene, ok = e.catalog.Get(e.fallbackSceneID)
		if !ok {
			e.logger.Warn("fallback scene not found, engine idle", "fallback", e.fallbackSceneID)
			e.state = StateIdle
			e.currentSceneID = ""
			e.currentEventIndex = 0
			e.pendingSceneID = ""
			return nil
		}
	}

	e.state = StateInScene
	e.currentSceneID = scene.ID
	e.currentEventIndex = 0
	e.pendingSceneID = ""

	event := &scene.Events[0]
	if e.sink != nil {
		e.sink.SceneEntered(scene, event)
	}
	return event
}

// ApplyChoice applies the choice at the given 0-based position in the
// current event. Emotion effects apply first, each resolved by axis display
// name with unknown names skipped; a transition choice then parks the engine
// until Tick, and any other choice advances the event index, wrapping to the
// scene's first event when the scene runs out.
func (e *Engine) ApplyChoice(choiceIndex int) error {
	if e.state != StateInScene {
		return fmt.Errorf("%w: engine is %s", ErrNoActiveScene, e.state)
	}
	event := e.CurrentEvent()
	if event == nil {
		return ErrNoActiveScene
	}
	if choiceIndex < 0 || choiceIndex >= len(event.Choices) {
		return fmt.Errorf("%w: %d (event %q has %d choices)",
			ErrChoiceOutOfRange, choiceIndex, event.ID, len(event.Choices))
	}

	choice := event.Choices[choiceIndex]
	e.applyEmotionEffects(choice)

	if choice.NextSceneID != "" {
		e.pendingSceneID = choice.NextSceneID
		e.state = StateAwaitingTransition
		return nil
	}

	scene, _ := e.catalog.Get(e.currentSceneID)
	e.currentEventIndex++
	if e.currentEventIndex >= len(scene.Events) {
		// No transition choice ended the scene: loop back to its first event.
		e.currentEventIndex = 0
	}
	return nil
}

func (e *Engine) applyEmotionEffects(choice types.Choice) {
	// Sorted iteration keeps the history order deterministic.
	for _, name := range slices.Sorted(maps.Keys(choice.EmotionEffects)) {
		delta := choice.EmotionEffects[name]
		axis, err := emotion.AxisByName(name)
		if err != nil {
			e.logger.Warn("skipping unknown emotion axis",
				"axis", name, "choice_id", choice.ID)
			continue
		}
		old := e.emotions.Value(axis)
		e.emotions.Update(axis, delta)
		if e.sink != nil {
			e.sink.EmotionChanged(axis.String(), old, e.emotions.Value(axis), delta)
		}
	}
}

// Tick consumes a pending transition, entering the requested scene. In any
// other state it returns the current event unchanged. A pending id that
// vanished from the catalog resolves through EnterScene's fallback.
func (e *Engine) Tick() *types.SceneEvent {
	if e.state != StateAwaitingTransition {
		return e.CurrentEvent()
	}
	next := e.pendingSceneID
	e.pendingSceneID = ""
	return e.EnterScene(next)
}

// CurrentEvent returns the event under the cursor, or nil when Idle.
func (e *Engine) CurrentEvent() *types.SceneEvent {
	if e.state == StateIdle {
		return nil
	}
	scene, ok := e.catalog.Get(e.currentSceneID)
	if !ok {
		return nil
	}
	return &scene.Events[e.currentEventIndex]
}

// State returns the engine's lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// CurrentSceneID returns the id of the scene under the cursor, or "" when Idle.
func (e *Engine) CurrentSceneID() string {
	return e.currentSceneID
}

// CurrentEventIndex returns the cursor's event index within the current scene.
func (e *Engine) CurrentEventIndex() int {
	return e.currentEventIndex
}

// RestoreCursor repositions the engine from persisted state. It delegates
// scene resolution to EnterScene, inheriting its fallback, then moves to the
// saved event index when it is still valid for the entered scene.
func (e *Engine) RestoreCursor(sceneID string, eventIndex int) *types.SceneEvent {
	event := e.EnterScene(sceneID)
	if event == nil {
		return nil
	}
	scene, _ := e.catalog.Get(e.currentSceneID)
	if eventIndex > 0 && eventIndex < len(scene.Events) && e.currentSceneID == sceneID {
		e.currentEventIndex = eventIndex
		event = &scene.Events[eventIndex]
	} else if eventIndex >= len(scene.Events) || eventIndex < 0 {
		e.logger.Warn("saved event index out of range, starting scene over",
			"scene_id", e.currentSceneID, "event_index", eventIndex)
	}
	return event
}
