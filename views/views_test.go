package views_test

import (
	"strings"
	"testing"

	"github.com/egolabs/ego/profile"
	"github.com/egolabs/ego/views"
)

func TestBigFiveSeries_FixedOrder(t *testing.T) {
	series := views.BigFiveSeries(profile.NewBigFiveResult(80, 40, 60, 70, 30))

	want := []views.Bar{
		{Label: "Openness", Value: 80},
		{Label: "Conscientiousness", Value: 40},
		{Label: "Extraversion", Value: 60},
		{Label: "Agreeableness", Value: 70},
		{Label: "Neuroticism", Value: 30},
	}
	if len(series) != len(want) {
		t.Fatalf("Expected %d bars, got %d", len(want), len(series))
	}
	for i := range want {
		if series[i] != want[i] {
			t.Errorf("Bar %d: expected %+v, got %+v", i, want[i], series[i])
		}
	}
}

func TestMBTIProjection_FirstPoleIndicators(t *testing.T) {
	r, err := profile.NewMBTIResult('E', 'N', 'T', 'P')
	if err != nil {
		t.Fatalf("Failed to build MBTI result: %v", err)
	}

	report := views.MBTIProjection(r)
	if report.Type != "ENTP" {
		t.Errorf("Expected type ENTP, got %q", report.Type)
	}

	// 100 iff the stored pole is the first-listed pole: E, S, T, J.
	wantValues := []int{100, 0, 100, 0}
	wantPoles := []string{"E", "N", "T", "P"}
	if len(report.Indicators) != 4 {
		t.Fatalf("Expected 4 indicators, got %d", len(report.Indicators))
	}
	for i, ind := range report.Indicators {
		if ind.Value != wantValues[i] {
			t.Errorf("Indicator %s: expected value %d, got %d", ind.Axis, wantValues[i], ind.Value)
		}
		if ind.Pole != wantPoles[i] {
			t.Errorf("Indicator %s: expected pole %q, got %q", ind.Axis, wantPoles[i], ind.Pole)
		}
	}
}

func TestEnneagramSummary(t *testing.T) {
	r, err := profile.NewEnneagramResult(5, 4, profile.InstinctSelfPreservation)
	if err != nil {
		t.Fatalf("Failed to build enneagram result: %v", err)
	}

	if got := views.EnneagramSummary(r); got != "Type 5w4 (Self-Preservation (sp))" {
		t.Errorf("Unexpected summary: %q", got)
	}
}

func TestAnalytics_OnlyStoredSections(t *testing.T) {
	p := profile.New()
	p.Set(profile.NewBigFiveResult(50, 50, 50, 50, 50))

	report := views.Analytics(p)
	if report.BigFive == nil {
		t.Error("Expected a Big Five section")
	}
	if report.MBTI != nil {
		t.Error("Expected no MBTI section without a stored result")
	}
	if report.Enneagram != "" {
		t.Error("Expected no Enneagram section without a stored result")
	}
}

func TestChatReply_EmbedsQuestionVerbatim(t *testing.T) {
	question := "What should I do?"
	reply := views.ChatReply(question)

	if !strings.Contains(reply, question) {
		t.Errorf("Reply %q does not contain the question verbatim", reply)
	}
	if !strings.Contains(reply, "your past self might say") {
		t.Errorf("Reply %q lost the template text", reply)
	}
}

func TestBigFiveForm_SliderBounds(t *testing.T) {
	form := views.BigFiveForm()
	if len(form) != 5 {
		t.Fatalf("Expected 5 sliders, got %d", len(form))
	}
	if form[0].Label != "Openness to Experience" {
		t.Errorf("Unexpected first slider: %q", form[0].Label)
	}
	for _, slider := range form {
		if slider.Min != 1 || slider.Max != 100 || slider.Default != 50 {
			t.Errorf("Slider %q has bounds [%d,%d] default %d", slider.Label, slider.Min, slider.Max, slider.Default)
		}
	}
}

func TestMBTIForm_LabelsYieldPoles(t *testing.T) {
	form := views.MBTIForm()
	if len(form) != 4 {
		t.Fatalf("Expected 4 axis choices, got %d", len(form))
	}

	// Every option label carries its pole code in parentheses; that
	// code is what a submission stores, so every catalog label must
	// round-trip through the result constructor.
	wantPoles := [][2]byte{{'E', 'I'}, {'S', 'N'}, {'T', 'F'}, {'J', 'P'}}
	for i, choice := range form {
		if len(choice.Options) != 2 {
			t.Fatalf("Axis %q: expected 2 options, got %d", choice.Prompt, len(choice.Options))
		}
		for j, opt := range choice.Options {
			open := strings.IndexByte(opt, '(')
			if open < 0 || open+1 >= len(opt) {
				t.Fatalf("Axis %q option %q carries no pole code", choice.Prompt, opt)
			}
			if opt[open+1] != wantPoles[i][j] {
				t.Errorf("Axis %q option %q: expected pole %q", choice.Prompt, opt, string(wantPoles[i][j]))
			}
		}
	}

	// The full catalog must be submittable: pick the second option of
	// every axis, which includes Intuition (N).
	r, err := profile.MBTIFromLabels(
		form[0].Options[1], form[1].Options[1], form[2].Options[1], form[3].Options[1],
	)
	if err != nil {
		t.Fatalf("Catalog labels rejected: %v", err)
	}
	if r.Type() != "INFP" {
		t.Errorf("Expected type INFP from second options, got %q", r.Type())
	}
}

func TestEnneagramFormFor_OnlyValidWings(t *testing.T) {
	form := views.EnneagramFormFor(1)
	if len(form.Types) != 9 {
		t.Fatalf("Expected 9 primary types, got %d", len(form.Types))
	}
	if len(form.WingOptions) != 2 || form.WingOptions[0] != 9 || form.WingOptions[1] != 2 {
		t.Errorf("Primary 1: expected wings [9 2], got %v", form.WingOptions)
	}
	if len(form.Instincts) != 3 {
		t.Errorf("Expected 3 instincts, got %d", len(form.Instincts))
	}
}

func TestEnneagramTypeName(t *testing.T) {
	if got := views.EnneagramTypeName(1); !strings.HasPrefix(got, "The Reformer") {
		t.Errorf("Unexpected name for type 1: %q", got)
	}
	if got := views.EnneagramTypeName(9); !strings.HasPrefix(got, "The Peacemaker") {
		t.Errorf("Unexpected name for type 9: %q", got)
	}
	if got := views.EnneagramTypeName(0); got != "" {
		t.Errorf("Expected empty name for out-of-range type, got %q", got)
	}
}
