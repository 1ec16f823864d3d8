package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nightpath/storycore/internal/narrative"
	"github.com/nightpath/storycore/internal/types"
)

func TestDefaultCatalogIntegrity(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	if err := CheckIntegrity(catalog); err != nil {
		t.Fatalf("default catalog has dangling transitions: %v", err)
	}
}

func TestDefaultCatalogShape(t *testing.T) {
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}

	for _, id := range []string{
		MainMenuSceneID,
		"CH0_PHASE_01", "CH0_PHASE_02", "CH0_PHASE_03", "CH0_PHASE_04",
		"CH1_PHASE_01",
	} {
		scene, ok := catalog.Get(id)
		if !ok {
			t.Fatalf("missing scene %q", id)
		}
		if len(scene.Events) == 0 {
			t.Fatalf("scene %q has no events", id)
		}
		for _, event := range scene.Events {
			if len(event.Choices) == 0 {
				t.Fatalf("event %q of scene %q has no choices", event.ID, id)
			}
		}
	}

	// The prologue finale transitions into the first simulation chapter.
	finale, _ := catalog.Get("CH0_PHASE_04")
	last := finale.Events[len(finale.Events)-1]
	for _, choice := range last.Choices {
		if choice.NextSceneID != "CH1_PHASE_01" {
			t.Fatalf("prologue finale choice %q does not enter CH1_PHASE_01", choice.ID)
		}
	}
}

func TestCheckIntegrityReportsDangling(t *testing.T) {
	catalog, err := narrative.NewCatalog([]types.Scene{{
		ID: "lonely",
		Events: []types.SceneEvent{{
			ID: "E1",
			Choices: []types.Choice{
				{ID: "C1", Text: "Leap", Kind: types.ChoiceStory, NextSceneID: "nowhere"},
			},
		}},
	}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if err := CheckIntegrity(catalog); err == nil {
		t.Fatal("expected integrity error for dangling transition")
	}
}

const sampleYAML = `
scenes:
  - id: intro
    title: Intro
    description: The first scene.
    background: forest
    events:
      - id: intro_e1
        text: You wake beneath tall trees.
        choices:
          - id: intro_c1
            text: Stand up
            kind: emotion
            emotion_effects:
              Determination: 5
          - id: intro_c2
            text: Walk toward the light
            kind: story
            next_scene: clearing
  - id: clearing
    title: Clearing
    description: An open clearing.
    events:
      - id: clearing_e1
        text: Sunlight. Silence.
        choices:
          - id: clearing_c1
            text: Rest
            kind: emotion
`

func TestParseYAML(t *testing.T) {
	catalog, err := ParseYAML([]byte(sampleYAML))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 scenes, got %d", catalog.Len())
	}

	intro, ok := catalog.Get("intro")
	if !ok {
		t.Fatal("missing intro scene")
	}
	if intro.Background != "forest" {
		t.Fatalf("presentation hint lost: %q", intro.Background)
	}
	choices := intro.Events[0].Choices
	if choices[0].EmotionEffects["Determination"] != 5 {
		t.Fatalf("emotion effects not parsed: %#v", choices[0].EmotionEffects)
	}
	if choices[1].NextSceneID != "clearing" {
		t.Fatalf("transition not parsed: %#v", choices[1])
	}
	if err := CheckIntegrity(catalog); err != nil {
		t.Fatalf("sample catalog integrity: %v", err)
	}
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0o644); err != nil {
		t.Fatalf("write scenes file: %v", err)
	}

	catalog, err := LoadYAML(path)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if catalog.Len() != 2 {
		t.Fatalf("expected 2 scenes, got %d", catalog.Len())
	}

	if _, err := LoadYAML(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestDefaultCatalogEffectsResolve(t *testing.T) {
	// Every emotion effect key in the embedded content must be a real axis;
	// unknown keys would be silently skipped at play time.
	known := map[string]bool{
		"Obsession": true, "Anger": true, "Depression": true,
		"Affection": true, "Determination": true,
	}
	catalog, err := DefaultCatalog()
	if err != nil {
		t.Fatalf("default catalog: %v", err)
	}
	for _, id := range catalog.AllIDs() {
		scene, _ := catalog.Get(id)
		for _, event := range scene.Events {
			for _, choice := range event.Choices {
				for axis := range choice.EmotionEffects {
					if !known[axis] {
						t.Fatalf("choice %q uses unknown axis %q", choice.ID, axis)
					}
				}
			}
		}
	}
}
