package types

// ChoiceKind tags what a choice primarily affects.
type ChoiceKind string

const (
	// ChoiceEmotion adjusts emotion values.
	ChoiceEmotion ChoiceKind = "emotion"
	// ChoiceStory branches the story.
	ChoiceStory ChoiceKind = "story"
	// ChoiceSystem drives simulation-system state.
	ChoiceSystem ChoiceKind = "system"
)

// Choice is one selectable option within a scene event.
type Choice struct {
	ID   string     `json:"id" yaml:"id"`
	Text string     `json:"text" yaml:"text"`
	Kind ChoiceKind `json:"kind" yaml:"kind"`
	// EmotionEffects maps emotion axis display names to signed deltas.
	EmotionEffects map[string]int `json:"emotion_effects,omitempty" yaml:"emotion_effects,omitempty"`
	// NextSceneID requests a scene transition; empty means advance within the scene.
	NextSceneID string `json:"next_scene,omitempty" yaml:"next_scene,omitempty"`
	// Conditions is reserved for future choice gating and is never evaluated.
	Conditions map[string]any `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// SceneEvent is one beat of narrative text with its ordered choices.
// Choice order is meaningful: hosts render and select positionally.
type SceneEvent struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Choices []Choice `json:"choices" yaml:"choices"`
	// Presentation hints, forwarded to the host and never interpreted here.
	Background   string `json:"background,omitempty" yaml:"background,omitempty"`
	AmbientSound string `json:"ambient_sound,omitempty" yaml:"ambient_sound,omitempty"`
	Music        string `json:"music,omitempty" yaml:"music,omitempty"`
}

// Scene is an ordered sequence of events under one title.
type Scene struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Events      []SceneEvent `json:"events" yaml:"events"`

	Background   string `json:"background,omitempty" yaml:"background,omitempty"`
	AmbientSound string `json:"ambient_sound,omitempty" yaml:"ambient_sound,omitempty"`
	Music        string `json:"music,omitempty" yaml:"music,omitempty"`
}
