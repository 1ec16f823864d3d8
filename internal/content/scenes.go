// Package content carries the authored scene data and its loaders.
package content

import (
	"github.com/nightpath/storycore/internal/narrative"
	"github.com/nightpath/storycore/internal/types"
)

// Well-known scene ids.
const (
	// MainMenuSceneID is the known-good sentinel the engine falls back to.
	MainMenuSceneID = "main_menu"
	// PrologueSceneID is where a new game starts.
	PrologueSceneID = "CH0_PHASE_01"
)

// DefaultCatalog builds the embedded story content: the main menu, the
// four prologue phases, and the first simulation chapter.
func DefaultCatalog() (*narrative.Catalog, error) {
	return narrative.NewCatalog(defaultScenes())
}

func defaultScenes() []types.Scene {
	return []types.Scene{
		{
			ID:          MainMenuSceneID,
			Title:       "Simulate to Survive",
			Description: "Title screen.",
			Music:       "background_main_theme",
			Events: []types.SceneEvent{
				{
					ID:   "MENU_E01",
					Text: "Simulate to Survive",
					Choices: []types.Choice{
						{ID: "MENU_CHOICE_START", Text: "Begin", Kind: types.ChoiceStory,
							NextSceneID: PrologueSceneID},
						{ID: "MENU_CHOICE_CONTINUE", Text: "Continue", Kind: types.ChoiceSystem},
						{ID: "MENU_CHOICE_QUIT", Text: "Quit", Kind: types.ChoiceSystem},
					},
				},
			},
		},
		{
			ID:           "CH0_PHASE_01",
			Title:        "Morning Mist - Azure Cloud Sect Training Grounds",
			Description:  "Dawn fog blankets the training grounds. Dozens of disciples drill in perfect unison while the protagonist stands alone in a corner, wooden sword trembling.",
			Background:   "morning_fog",
			AmbientSound: "environment_gentle-rain",
			Events: []types.SceneEvent{
				{
					ID: "CH0_E01",
					Text: "Mist clings to the Azure Cloud Sect's training grounds, where dozens of " +
						"disciples move through their morning forms, sword light flashing.\n\n" +
						"You stand alone in the corner, the wooden sword shaking in your grip.\n\n" +
						"The head disciple splits a falling leaf at thirty paces and the yard erupts " +
						"in cheers. You still cannot hold the most basic stance.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_01A", Text: "\"I... I'll keep practicing.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Obsession": 10}},
						{ID: "CH0_CHOICE_01B", Text: "\"One day I'll prove all of you wrong.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 15}},
						{ID: "CH0_CHOICE_01C", Text: "Say nothing.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 12}},
					},
				},
				{
					ID: "CH0_E02",
					Text: "The sword trial begins, and once again you place last.\n\n" +
						"A fellow disciple laughs out loud: \"Useless. He can't even keep his grip.\"\n\n" +
						"Ah-Li tries to slip you a healing pill, but her father cuts her off with a " +
						"sharp word. The helplessness settles over you like a weight.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_02A", Text: "Clench your fists and bear it.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 8, "Obsession": 5}},
						{ID: "CH0_CHOICE_02B", Text: "Glare at the ones laughing.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 12, "Obsession": 8}},
						{ID: "CH0_CHOICE_02C", Text: "Look to Ah-Li, torn inside.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 10, "Depression": 5}},
					},
				},
				{
					ID: "CH0_E03",
					Text: "After the trial you sit alone at the edge of the grounds.\n\n" +
						"Laughter drifts from the far side while you stare at the wooden sword in " +
						"your hands. Three years it has been with you, and it still looks new.\n\n" +
						"You have never earned the right to wear it down.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_03A", Text: "Keep practicing, even if it's futile.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Obsession": 15, "Determination": 10}},
						{ID: "CH0_CHOICE_03B", Text: "Ask yourself why you are so weak.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 10, "Obsession": 8}},
						{ID: "CH0_CHOICE_03C", Text: "Remember Ah-Li's encouragement.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 15, "Determination": 5}},
					},
				},
			},
		},
		{
			ID:           "CH0_PHASE_02",
			Title:        "Dusk - Sect Courtyard",
			Description:  "Sunset. Father stands with his back turned, dark robes stirring in the evening wind. A broken wooden sword and a medicine bowl lie scattered on the stone table.",
			Background:   "evening_courtyard",
			AmbientSound: "environment_gentle-rain",
			Events: []types.SceneEvent{
				{
					ID: "CH0_E04",
					Text: "At dusk you are summoned to the sect courtyard.\n\n" +
						"Your father, Lin Canglan, stands with his back to you, dark robes moving in " +
						"the wind. Your snapped wooden sword and a medicine bowl lie on the stone table.\n\n" +
						"Distant laughter from the disciples makes the silence here heavier.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_04A", Text: "Lower your head and wait for the rebuke.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 10}},
						{ID: "CH0_CHOICE_04B", Text: "Raise your eyes and meet his.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 8, "Determination": 5}},
						{ID: "CH0_CHOICE_04C", Text: "Stare at the broken sword.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Obsession": 12}},
					},
				},
				{
					ID: "CH0_E05",
					Text: "Your father turns, his gaze like a drawn blade.\n\n" +
						"\"Three years,\" he says, voice low. \"And you cannot manage the first form.\"\n\n" +
						"He points at the broken sword. \"You snapped a practice blade. What use are you?\"\n\n" +
						"\"Reach Foundation stage within three years, or leave the Azure Cloud Sect.\"",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_05A", Text: "\"Father, I promise I'll work harder.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 5, "Obsession": 10}},
						{ID: "CH0_CHOICE_05B", Text: "\"You've wanted me gone all along, haven't you?\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 15, "Depression": 8}},
						{ID: "CH0_CHOICE_05C", Text: "\"I will prove it to you.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Determination": 20, "Obsession": 12}},
					},
				},
				{
					ID: "CH0_E06",
					Text: "Ah-Li's father arrives as well.\n\n" +
						"\"Can't even hold a sword. When the demon host comes he'll be fodder,\" he " +
						"sneers. \"Ah-Li, stop wasting time on dead weight.\"\n\n" +
						"Ah-Li starts to speak, then only grips the right half of the jade pendant at " +
						"her waist. Humiliation burns through you.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_06A", Text: "Clench your fists and swallow the fury.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 20, "Obsession": 15}},
						{ID: "CH0_CHOICE_06B", Text: "Look to Ah-Li for support.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 15, "Depression": 10}},
						{ID: "CH0_CHOICE_06C", Text: "Swear in your heart to become strong.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Determination": 25, "Obsession": 20}},
					},
				},
			},
		},
		{
			ID:           "CH0_PHASE_03",
			Title:        "Sundown - Back Mountain Path",
			Description:  "The protagonist sits alone on the stone steps of the back mountain, holding the right half of Ah-Li's jade pendant while the sky bleeds red.",
			Background:   "sunset_hillside",
			AmbientSound: "environment_gentle-rain",
			Events: []types.SceneEvent{
				{
					ID: "CH0_E07",
					Text: "At sundown you climb the back mountain path alone.\n\n" +
						"The sky burns red. You sit on the stone steps, the right half of Ah-Li's " +
						"jade pendant in your palm.\n\n" +
						"Practice sounds and laughter rise from below, far away from you.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_07A", Text: "Remember the days with Ah-Li.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 20}},
						{ID: "CH0_CHOICE_07B", Text: "Take stock of where you stand.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 15, "Obsession": 10}},
						{ID: "CH0_CHOICE_07C", Text: "Stare at the pendant.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 10, "Obsession": 8}},
					},
				},
				{
					ID: "CH0_E08",
					Text: "Three years ago Ah-Li pressed the pendant's right half into your hand.\n\n" +
						"\"This is our promise,\" she said. \"Whatever happens, we stay together.\"\n\n" +
						"Now you cannot even protect her. Your father's ultimatum echoes, and her " +
						"father's sneer after it: fodder, when the demon host comes.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_08A", Text: "Hold on to the sweeter memories.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Affection": 25, "Determination": 15}},
						{ID: "CH0_CHOICE_08B", Text: "Relive every mockery.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 20, "Obsession": 15}},
						{ID: "CH0_CHOICE_08C", Text: "Think about how to become strong.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Determination": 30, "Obsession": 20}},
					},
				},
				{
					ID: "CH0_E09",
					Text: "Night falls and you are still on the steps.\n\n" +
						"The pendant glows faintly in the moonlight, as if it wanted to speak.\n\n" +
						"You think of Ah-Li's unspoken words, of her father's contempt, of your own " +
						"failure. The loneliness is total, but underneath it something refuses to yield.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_09A", Text: "\"I will become strong enough to protect her.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Determination": 35, "Obsession": 25}},
						{ID: "CH0_CHOICE_09B", Text: "\"Maybe cultivation was never for me.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 20, "Obsession": 15}},
						{ID: "CH0_CHOICE_09C", Text: "\"There has to be a way. There has to be.\"", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Obsession": 30, "Determination": 20}},
					},
				},
			},
		},
		{
			ID:           "CH0_PHASE_04",
			Title:        "Rain Night - Training Yard",
			Description:  "Midnight downpour. Standing water mirrors the protagonist swinging a cracking wooden sword. A blurred figure watches from the distant corridor.",
			Background:   "rainy_night",
			AmbientSound: "environment_heavy-rain",
			Events: []types.SceneEvent{
				{
					ID: "CH0_E10",
					Text: "Deep in the night the rain comes down in sheets.\n\n" +
						"You walk out into the training yard and let it soak you through. Your blurred " +
						"reflection shivers in the standing water.\n\n" +
						"You swing the sword until cracks spider along the wood. In the distant " +
						"corridor your father's silhouette watches through the rain. He does not stop you.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_10A", Text: "Keep swinging.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Obsession": 30, "Anger": 15}},
						{ID: "CH0_CHOICE_10B", Text: "Roar into the rain.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Anger": 25, "Obsession": 20}},
						{ID: "CH0_CHOICE_10C", Text: "Bear the pain in silence.", Kind: types.ChoiceEmotion,
							EmotionEffects: map[string]int{"Depression": 20, "Obsession": 25}},
					},
				},
				{
					ID: "CH0_E11",
					Text: "The wooden sword finally gives.\n\n" +
						"It snaps in your hands with a crack. You fall to your knees in the water, " +
						"staring at the two halves.\n\n" +
						"And then a voice sounds inside your skull:\n\n" +
						"[ Intense obsession detected. Simulation system initializing... ]",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_11A", Text: "\"What... is this?\"", Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Obsession": 35}},
						{ID: "CH0_CHOICE_11B", Text: "\"A hallucination?\"", Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Obsession": 30}},
						{ID: "CH0_CHOICE_11C", Text: "\"I don't care what it is, if it makes me strong.\"", Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Obsession": 40, "Determination": 25}},
					},
				},
				{
					ID: "CH0_E12",
					Text: "[ Simulation system online ]\n\n" +
						"[ Demon invasion in: 3 years ]\n\n" +
						"[ First simulation can rehearse the future and bank its growth ]\n\n" +
						"[ Span: 3 years (real-time cost: 3 days) | Mental energy cost: 30 ]\n\n" +
						"Warmth floods through you, and for the first time you can see a way out.",
					Choices: []types.Choice{
						{ID: "CH0_CHOICE_12A", Text: "\"I accept. Make me strong.\"", Kind: types.ChoiceSystem,
							NextSceneID: "CH1_PHASE_01"},
						{ID: "CH0_CHOICE_12B", Text: "\"Is this real?\"", Kind: types.ChoiceSystem,
							NextSceneID: "CH1_PHASE_01"},
						{ID: "CH0_CHOICE_12C", Text: "\"Whatever it is, as long as it works.\"", Kind: types.ChoiceSystem,
							NextSceneID: "CH1_PHASE_01"},
					},
				},
			},
		},
		{
			ID:           "CH1_PHASE_01",
			Title:        "Simulation Start - Mode Select",
			Description:  "The simulation system's boot interface. The player picks a simulation mode: reckless advance or flee at first danger.",
			Background:   "system_interface",
			AmbientSound: "ui_system",
			Events: []types.SceneEvent{
				{
					ID: "CH1_E01",
					Text: "[ First simulation starting... ]\n\n" +
						"[ Span: 3 years (real-time cost: 3 days) ]\n\n" +
						"[ Mental energy cost: 30 (current: 100) ]\n\n" +
						"[ Select simulation mode: ]",
					Choices: []types.Choice{
						{ID: "CH1_CHOICE_01A",
							Text: "Reckless advance: combat gains +50%, death rate on failure +80%",
							Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Determination": 20}},
						{ID: "CH1_CHOICE_01B",
							Text: "Flee at first danger: combat gains -30%, death rate on failure 0%",
							Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Depression": 10}},
					},
				},
				{
					ID: "CH1_E02",
					Text: "[ Mode confirmed ]\n\n[ Simulation running... ]\n\n" +
						"[ Time: simulation month 3 | Location: training grounds ]\n\n" +
						"You stand on the training grounds once more. This time, you have a chance " +
						"to change how it ends.",
					Choices: []types.Choice{
						{ID: "CH1_CHOICE_02A", Text: "Begin the simulation.", Kind: types.ChoiceSystem,
							EmotionEffects: map[string]int{"Determination": 15}},
					},
				},
			},
		},
	}
}
