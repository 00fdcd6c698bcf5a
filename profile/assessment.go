package profile

import (
	"fmt"
	"strings"
)

// Kind identifies a personality assessment framework.
type Kind string

const (
	KindBigFive   Kind = "big_five"
	KindMBTI      Kind = "mbti"
	KindEnneagram Kind = "enneagram"
)

// Kinds lists all assessment kinds in canonical display order.
// Projections iterate this order so rendered output is deterministic
// regardless of submission order.
var Kinds = []Kind{KindBigFive, KindMBTI, KindEnneagram}

// Result is a validated assessment outcome that can be stored in a Profile.
// Implementations: BigFiveResult, MBTIResult, EnneagramResult.
type Result interface {
	// Kind returns the assessment framework this result belongs to.
	Kind() Kind

	// Summary returns a one-line human-readable description of the result.
	Summary() string
}

// BigFiveResult holds the five OCEAN trait scores, each in [1,100].
type BigFiveResult struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// BigFiveMin and BigFiveMax bound every trait score. The slider widget
// cannot produce values outside this range; NewBigFiveResult clamps so a
// programmatic caller cannot either.
const (
	BigFiveMin = 1
	BigFiveMax = 100

	// BigFiveDefault is the initial slider position for each trait.
	BigFiveDefault = 50
)

// NewBigFiveResult builds a BigFiveResult, clamping each score to
// [BigFiveMin, BigFiveMax]. It never fails.
func NewBigFiveResult(openness, conscientiousness, extraversion, agreeableness, neuroticism int) BigFiveResult {
	return BigFiveResult{
		Openness:          clampScore(openness),
		Conscientiousness: clampScore(conscientiousness),
		Extraversion:      clampScore(extraversion),
		Agreeableness:     clampScore(agreeableness),
		Neuroticism:       clampScore(neuroticism),
	}
}

func clampScore(v int) int {
	if v < BigFiveMin {
		return BigFiveMin
	}
	if v > BigFiveMax {
		return BigFiveMax
	}
	return v
}

func (BigFiveResult) Kind() Kind { return KindBigFive }

func (r BigFiveResult) Summary() string {
	return fmt.Sprintf("Big Five: O=%d C=%d E=%d A=%d N=%d",
		r.Openness, r.Conscientiousness, r.Extraversion, r.Agreeableness, r.Neuroticism)
}

// MBTIResult holds one pole per MBTI axis. Each field is a single
// uppercase letter from the axis alphabet: EI in {E,I}, SN in {S,N},
// TF in {T,F}, JP in {J,P}.
type MBTIResult struct {
	EI byte `json:"ei"`
	SN byte `json:"sn"`
	TF byte `json:"tf"`
	JP byte `json:"jp"`
}

// NewMBTIResult builds an MBTIResult from four axis poles, rejecting any
// letter outside its axis alphabet.
func NewMBTIResult(ei, sn, tf, jp byte) (MBTIResult, error) {
	pairs := []struct {
		axis string
		got  byte
		a, b byte
	}{
		{"energy orientation", ei, 'E', 'I'},
		{"information gathering", sn, 'S', 'N'},
		{"decision making", tf, 'T', 'F'},
		{"lifestyle", jp, 'J', 'P'},
	}
	for _, p := range pairs {
		if p.got != p.a && p.got != p.b {
			return MBTIResult{}, fmt.Errorf("invalid %s pole %q: must be %q or %q",
				p.axis, string(p.got), string(p.a), string(p.b))
		}
	}
	return MBTIResult{EI: ei, SN: sn, TF: tf, JP: jp}, nil
}

// MBTIFromLabels builds an MBTIResult from the four chosen option labels,
// taking the parenthesized pole code of each ("Intuition (N)" -> 'N').
// This is the forms' acquisition path; labels come from the views catalog.
func MBTIFromLabels(ei, sn, tf, jp string) (MBTIResult, error) {
	labels := []string{ei, sn, tf, jp}
	poles := make([]byte, 4)
	for i, l := range labels {
		pole, err := poleFromLabel(l)
		if err != nil {
			return MBTIResult{}, fmt.Errorf("axis %d: %w", i+1, err)
		}
		poles[i] = pole
	}
	return NewMBTIResult(poles[0], poles[1], poles[2], poles[3])
}

// poleFromLabel extracts the pole code from an option label, the single
// letter inside parentheses. The letter is the axis pole even when it
// differs from the label's leading character (Intuition is N, not I).
func poleFromLabel(label string) (byte, error) {
	open := strings.IndexByte(label, '(')
	if open < 0 || open+1 >= len(label) || label[open+1] == ')' {
		return 0, fmt.Errorf("option label %q carries no pole code", label)
	}
	return label[open+1], nil
}

func (MBTIResult) Kind() Kind { return KindMBTI }

// Type returns the derived 4-character type code in fixed axis order
// ei, sn, tf, jp (e.g. "INFJ").
func (r MBTIResult) Type() string {
	return string([]byte{r.EI, r.SN, r.TF, r.JP})
}

func (r MBTIResult) Summary() string {
	return fmt.Sprintf("MBTI type: %s", r.Type())
}

// Instinct is the dominant Enneagram instinctual variant.
type Instinct int

const (
	InstinctSelfPreservation Instinct = iota
	InstinctSocial
	InstinctSexual
)

var instinctLabels = map[Instinct]string{
	InstinctSelfPreservation: "Self-Preservation (sp)",
	InstinctSocial:           "Social (so)",
	InstinctSexual:           "One-to-One/Sexual (sx)",
}

// Label returns the display label for the instinct.
func (i Instinct) Label() string {
	if l, ok := instinctLabels[i]; ok {
		return l
	}
	return "Unknown"
}

func (i Instinct) valid() bool {
	_, ok := instinctLabels[i]
	return ok
}

// EnneagramResult holds a primary type in [1,9], a wing adjacent to the
// primary type on the Enneagram circle, and a dominant instinct.
type EnneagramResult struct {
	Primary  int      `json:"primary_type"`
	Wing     int      `json:"wing"`
	Instinct Instinct `json:"instinct"`
}

// EnneagramMin and EnneagramMax bound the primary type.
const (
	EnneagramMin = 1
	EnneagramMax = 9
)

// WingOptions returns the valid wings for a primary type: the two
// adjacent types on the Enneagram circle. The circle wraps, so primary 1
// offers wings 9 and 2, and primary 9 offers wings 8 and 1; 0 and 10 are
// never offered.
func WingOptions(primary int) []int {
	if primary < EnneagramMin || primary > EnneagramMax {
		return nil
	}
	lo := primary - 1
	if lo < EnneagramMin {
		lo = EnneagramMax
	}
	hi := primary + 1
	if hi > EnneagramMax {
		hi = EnneagramMin
	}
	return []int{lo, hi}
}

// NewEnneagramResult builds an EnneagramResult. The UI only offers valid
// wings; this constructor re-checks so the programmatic API cannot store
// an inconsistent (primary, wing) pair.
func NewEnneagramResult(primary, wing int, instinct Instinct) (EnneagramResult, error) {
	if primary < EnneagramMin || primary > EnneagramMax {
		return EnneagramResult{}, fmt.Errorf("invalid primary type %d: must be in [%d,%d]",
			primary, EnneagramMin, EnneagramMax)
	}
	valid := false
	for _, w := range WingOptions(primary) {
		if w == wing {
			valid = true
			break
		}
	}
	if !valid {
		return EnneagramResult{}, fmt.Errorf("invalid wing %d for primary type %d: options are %v",
			wing, primary, WingOptions(primary))
	}
	if !instinct.valid() {
		return EnneagramResult{}, fmt.Errorf("invalid instinct %d", instinct)
	}
	return EnneagramResult{Primary: primary, Wing: wing, Instinct: instinct}, nil
}

func (EnneagramResult) Kind() Kind { return KindEnneagram }

func (r EnneagramResult) Summary() string {
	return fmt.Sprintf("Enneagram: Type %dw%d (%s)", r.Primary, r.Wing, r.Instinct.Label())
}
