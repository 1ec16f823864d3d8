// Package main drafts scene YAML with a language model.
//
// The output is a starting point for hand editing, not finished content.
// The tool validates that the draft parses and that its emotion effects
// name real axes before writing it anywhere.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"google.golang.org/genai"

	"github.com/nightpath/storycore/internal/config"
	"github.com/nightpath/storycore/internal/content"
	"github.com/nightpath/storycore/internal/emotion"
	"github.com/nightpath/storycore/internal/narrative"
)

const promptTemplate = `You write branching scenes for a psychological survival narrative.

Produce YAML only, no prose and no code fences, with this shape:

scenes:
  - id: %s
    title: %s
    description: one line
    events:
      - id: <scene id>_E01
        text: narration shown to the player
        choices:
          - id: <event id>A
            text: what the player can say or do
            kind: emotion
            emotion_effects:
              Obsession: 10
        background: optional image key
        music: optional track key

Rules:
- 2 to 4 events, each with 2 or 3 choices.
- Effect keys must be one of: Obsession, Anger, Depression, Affection, Determination.
- Effect values are integers between -30 and 30.
- A choice may set next_scene to jump to another scene id; use it at most once.
- kind is one of: emotion, story, system.

Premise: %s`

func main() {
	_ = godotenv.Load()

	premise := flag.String("premise", "", "what the scene is about (required)")
	sceneID := flag.String("id", "DRAFT_SCENE_01", "scene id for the draft")
	title := flag.String("title", "Untitled", "scene title")
	out := flag.String("out", "", "output file, default stdout")
	flag.Parse()

	if strings.TrimSpace(*premise) == "" {
		flag.Usage()
		log.Fatal("-premise is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_API_KEY environment variable is required")
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.GoogleAPIKey,
	})
	if err != nil {
		log.Fatalf("failed to create genai client: %v", err)
	}

	prompt := fmt.Sprintf(promptTemplate, *sceneID, *title, *premise)
	resp, err := client.Models.GenerateContent(ctx, cfg.ScenewriterModel, genai.Text(prompt), nil)
	if err != nil {
		log.Fatalf("generate scene: %v", err)
	}

	draft := strings.TrimSpace(resp.Text())
	draft = stripFences(draft)
	if draft == "" {
		log.Fatal("empty model response")
	}

	catalog, err := content.ParseYAML([]byte(draft))
	if err != nil {
		log.Fatalf("draft does not parse: %v", err)
	}
	if err := validateEffects(catalog); err != nil {
		log.Fatalf("draft is invalid: %v", err)
	}
	logger.Info("draft validated", "scenes", catalog.Len(), "model", cfg.ScenewriterModel)

	output := draft + "\n"
	if *out == "" {
		fmt.Print(output)
		return
	}
	if err := os.WriteFile(*out, []byte(output), 0o644); err != nil {
		log.Fatalf("write %s: %v", *out, err)
	}
	logger.Info("draft written", "path", *out)
}

// stripFences removes a markdown code fence if the model added one anyway.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) < 2 {
		return s
	}
	lines = lines[1:]
	if strings.HasPrefix(strings.TrimSpace(lines[len(lines)-1]), "```") {
		lines = lines[:len(lines)-1]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// validateEffects checks that every effect names a real axis. Dangling
// next_scene references are allowed here since drafts often point at scenes
// that will be written next.
func validateEffects(catalog *narrative.Catalog) error {
	for _, id := range catalog.AllIDs() {
		scene, ok := catalog.Get(id)
		if !ok {
			continue
		}
		for _, event := range scene.Events {
			for _, choice := range event.Choices {
				for name := range choice.EmotionEffects {
					if _, err := emotion.AxisByName(name); err != nil {
						return fmt.Errorf("choice %s: %w", choice.ID, err)
					}
				}
			}
		}
	}
	return nil
}
