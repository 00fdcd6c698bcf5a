package views

import "github.com/egolabs/ego/profile"

// SliderSpec describes a bounded integer input. Values outside
// [Min, Max] are structurally impossible at the widget level.
type SliderSpec struct {
	Label   string `json:"label"`
	Min     int    `json:"min"`
	Max     int    `json:"max"`
	Default int    `json:"default"`
}

// ChoiceSpec describes a mutually exclusive selection from fixed options.
type ChoiceSpec struct {
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// BigFiveForm returns the five trait sliders in fixed order.
func BigFiveForm() []SliderSpec {
	traits := []string{
		"Openness to Experience",
		"Conscientiousness",
		"Extraversion",
		"Agreeableness",
		"Neuroticism",
	}
	sliders := make([]SliderSpec, 0, len(traits))
	for _, t := range traits {
		sliders = append(sliders, SliderSpec{
			Label:   t,
			Min:     profile.BigFiveMin,
			Max:     profile.BigFiveMax,
			Default: profile.BigFiveDefault,
		})
	}
	return sliders
}

// MBTIForm returns the four axis choices in order ei, sn, tf, jp.
// The stored pole is the parenthesized code of the chosen label.
func MBTIForm() []ChoiceSpec {
	return []ChoiceSpec{
		{Prompt: "Energy orientation", Options: []string{"Extraversion (E)", "Introversion (I)"}},
		{Prompt: "Information gathering", Options: []string{"Sensing (S)", "Intuition (N)"}},
		{Prompt: "Decision making", Options: []string{"Thinking (T)", "Feeling (F)"}},
		{Prompt: "Lifestyle", Options: []string{"Judging (J)", "Perceiving (P)"}},
	}
}

// enneagramTypeNames holds the nine type descriptions, indexed by type-1.
var enneagramTypeNames = []string{
	"The Reformer: Principled, purposeful, self-controlled",
	"The Helper: Generous, people-pleasing, possessive",
	"The Achiever: Adaptable, excelling, driven",
	"The Individualist: Expressive, dramatic, self-absorbed",
	"The Investigator: Perceptive, innovative, isolated",
	"The Loyalist: Engaging, responsible, anxious",
	"The Enthusiast: Spontaneous, versatile, scattered",
	"The Challenger: Self-confident, decisive, confrontational",
	"The Peacemaker: Receptive, reassuring, complacent",
}

// EnneagramTypeName returns the description for a primary type, or ""
// for an out-of-range type.
func EnneagramTypeName(primary int) string {
	if primary < profile.EnneagramMin || primary > profile.EnneagramMax {
		return ""
	}
	return enneagramTypeNames[primary-1]
}

// EnneagramForm describes the Enneagram inputs: an exhaustive primary
// type list, the selected type's description, the wing options valid
// for that type, and the three instincts.
type EnneagramForm struct {
	Types       []int    `json:"types"`
	TypeName    string   `json:"type_name"`
	WingOptions []int    `json:"wing_options"`
	Instincts   []string `json:"instincts"`
}

// EnneagramFormFor returns the form for a selected primary type. The
// wing option set only ever contains valid wings, so an invalid wing
// cannot be submitted through the form.
func EnneagramFormFor(primary int) EnneagramForm {
	types := make([]int, 0, profile.EnneagramMax)
	for t := profile.EnneagramMin; t <= profile.EnneagramMax; t++ {
		types = append(types, t)
	}
	return EnneagramForm{
		Types:       types,
		TypeName:    EnneagramTypeName(primary),
		WingOptions: profile.WingOptions(primary),
		Instincts: []string{
			profile.InstinctSelfPreservation.Label(),
			profile.InstinctSocial.Label(),
			profile.InstinctSexual.Label(),
		},
	}
}

// Home page copy.
const (
	HomeTitle = "Welcome to Ego"

	HomeBody = `Ego is a privacy-focused application designed to capture your personality and enable meaningful conversations with your past self. All your data is stored locally on your device.

How it works:
1. Complete personality assessments to build your digital profile
2. Engage in regular reflections to capture your thoughts and perspectives
3. Chat with your past self to gain insights into your personal evolution
4. Analyze patterns and trends in your personality over time

Get started by navigating to the Personality Assessment page.`
)

// Gating warnings shown when the profile is empty.
const (
	ChatGateWarning      = "Please complete at least one personality assessment before chatting."
	AnalyticsGateWarning = "Please complete at least one personality assessment to view analytics."
)

// Save confirmations per assessment kind.
var saveConfirmations = map[profile.Kind]string{
	profile.KindBigFive:   "Big Five assessment saved successfully!",
	profile.KindMBTI:      "MBTI assessment saved successfully!",
	profile.KindEnneagram: "Enneagram assessment saved successfully!",
}

// SaveConfirmation returns the confirmation message for a saved kind.
func SaveConfirmation(kind profile.Kind) string {
	return saveConfirmations[kind]
}
