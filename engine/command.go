package engine

import (
	"fmt"

	"github.com/egolabs/ego/profile"
)

// Page identifies one of the application's views. Exactly one page is
// active per render.
type Page string

const (
	PageHome       Page = "home"
	PageAssessment Page = "assessment"
	PageChat       Page = "chat"
	PageAnalytics  Page = "analytics"
)

// Pages lists all pages in navigation order.
var Pages = []Page{PageHome, PageAssessment, PageChat, PageAnalytics}

// ParsePage resolves a page name from the transport layer.
func ParsePage(s string) (Page, error) {
	for _, p := range Pages {
		if s == string(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown page: %q", s)
}

// Command is a discrete user action: a navigation choice, a widget
// change, or a form submission. The dispatch loop consumes commands one
// at a time and answers each with a Render.
type Command interface {
	isCommand()
}

// Navigate selects a page.
type Navigate struct {
	Page Page `json:"page"`
}

// SubmitBigFive saves a Big Five assessment from the five slider values.
type SubmitBigFive struct {
	Openness          int `json:"openness"`
	Conscientiousness int `json:"conscientiousness"`
	Extraversion      int `json:"extraversion"`
	Agreeableness     int `json:"agreeableness"`
	Neuroticism       int `json:"neuroticism"`
}

// SubmitMBTI saves an MBTI assessment from the four chosen option
// labels, in axis order ei, sn, tf, jp.
type SubmitMBTI struct {
	EI string `json:"ei"`
	SN string `json:"sn"`
	TF string `json:"tf"`
	JP string `json:"jp"`
}

// SelectEnneagramType is the primary-type widget change: it re-renders
// the assessment form so the wing options track the selected type.
type SelectEnneagramType struct {
	Primary int `json:"primary_type"`
}

// SubmitEnneagram saves an Enneagram assessment.
type SubmitEnneagram struct {
	Primary  int              `json:"primary_type"`
	Wing     int              `json:"wing"`
	Instinct profile.Instinct `json:"instinct"`
}

// Ask sends a question to the past-self chat.
type Ask struct {
	Question string `json:"question"`
}

func (Navigate) isCommand()            {}
func (SubmitBigFive) isCommand()       {}
func (SubmitMBTI) isCommand()          {}
func (SelectEnneagramType) isCommand() {}
func (SubmitEnneagram) isCommand()     {}
func (Ask) isCommand()                 {}
