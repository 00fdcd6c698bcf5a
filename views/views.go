// Package views computes read-only display payloads from a Profile.
// Projections never mutate the store; each is a pure function of the
// stored results. The form catalogs in catalog.go describe the input
// widgets (option sets, slider bounds) the presentation layer renders.
package views

import (
	"fmt"

	"github.com/egolabs/ego/profile"
)

// Bar is one labeled value in a categorical bar series.
type Bar struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// BigFiveSeries projects a Big Five result as a bar series in fixed
// trait order: Openness, Conscientiousness, Extraversion, Agreeableness,
// Neuroticism.
func BigFiveSeries(r profile.BigFiveResult) []Bar {
	return []Bar{
		{Label: "Openness", Value: r.Openness},
		{Label: "Conscientiousness", Value: r.Conscientiousness},
		{Label: "Extraversion", Value: r.Extraversion},
		{Label: "Agreeableness", Value: r.Agreeableness},
		{Label: "Neuroticism", Value: r.Neuroticism},
	}
}

// Indicator is a binary axis indicator: 100 when the stored pole is the
// first-listed pole of the axis, 0 otherwise.
type Indicator struct {
	Axis  string `json:"axis"`
	Pole  string `json:"pole"`
	Value int    `json:"value"`
}

// MBTIReport is the analytics projection of an MBTI result.
type MBTIReport struct {
	Type       string      `json:"type"`
	Indicators []Indicator `json:"indicators"`
}

// MBTIProjection projects an MBTI result as the derived type code plus
// four binary indicators in axis order ei, sn, tf, jp.
func MBTIProjection(r profile.MBTIResult) MBTIReport {
	poles := []struct {
		axis  string
		first byte
		got   byte
	}{
		{"Energy orientation", 'E', r.EI},
		{"Information gathering", 'S', r.SN},
		{"Decision making", 'T', r.TF},
		{"Lifestyle", 'J', r.JP},
	}
	indicators := make([]Indicator, 0, len(poles))
	for _, p := range poles {
		value := 0
		if p.got == p.first {
			value = 100
		}
		indicators = append(indicators, Indicator{
			Axis:  p.axis,
			Pole:  string(p.got),
			Value: value,
		})
	}
	return MBTIReport{Type: r.Type(), Indicators: indicators}
}

// EnneagramSummary projects an Enneagram result as its display string,
// e.g. "Type 4w5 (Social (so))".
func EnneagramSummary(r profile.EnneagramResult) string {
	return fmt.Sprintf("Type %dw%d (%s)", r.Primary, r.Wing, r.Instinct.Label())
}

// AnalyticsReport holds every projection available for the stored
// results, in canonical kind order. Sections for absent kinds are nil.
type AnalyticsReport struct {
	BigFive   []Bar       `json:"big_five,omitempty"`
	MBTI      *MBTIReport `json:"mbti,omitempty"`
	Enneagram string      `json:"enneagram,omitempty"`
}

// Analytics builds the full report for a profile. The caller is
// responsible for the emptiness gate; an empty profile yields an empty
// report.
func Analytics(p *profile.Profile) AnalyticsReport {
	var report AnalyticsReport
	if r, ok := p.BigFive(); ok {
		report.BigFive = BigFiveSeries(r)
	}
	if r, ok := p.MBTI(); ok {
		mbti := MBTIProjection(r)
		report.MBTI = &mbti
	}
	if r, ok := p.Enneagram(); ok {
		report.Enneagram = EnneagramSummary(r)
	}
	return report
}

// chatTemplate is the placeholder response. It embeds the question
// verbatim and uses no stored personality content; real retrieval lives
// behind the memory subsystem and is not wired into this view.
const chatTemplate = "Based on your personality data, your past self might say: " +
	"I would need to think about '%s' carefully before responding."

// ChatReply synthesizes the placeholder past-self response for a question.
func ChatReply(question string) string {
	return fmt.Sprintf(chatTemplate, question)
}
