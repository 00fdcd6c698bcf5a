// Package engine is the page router and command dispatcher: the one
// place session state is mutated. Each user action arrives as a Command,
// is handled to completion, and produces a Render for the presentation
// layer. Rendering stays in package views; this package only decides
// which view runs and whether its gate is open.
package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/egolabs/ego/memory"
	"github.com/egolabs/ego/profile"
	"github.com/egolabs/ego/session"
	"github.com/egolabs/ego/views"
)

// Engine dispatches commands against sessions.
type Engine struct {
	memory memory.Manager // Optional: records snapshots on save.
}

// Option configures the engine.
type Option func(*Engine)

// WithMemory wires a memory manager. The manager decides whether
// recording is actually enabled; a disabled manager keeps the store
// handle constructed but inert.
func WithMemory(m memory.Manager) Option {
	return func(e *Engine) {
		e.memory = m
	}
}

// New creates an engine.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Render is the display payload answered to every command. Page is
// always set; exactly one view body is populated, or Warning alone when
// a gated page was entered with an empty profile.
type Render struct {
	Page Page `json:"page"`

	// Warning is the precondition message for a gated page with an
	// empty profile. When set, no view body is rendered.
	Warning string `json:"warning,omitempty"`

	// Notice confirms a completed save.
	Notice string `json:"notice,omitempty"`

	Home       *HomeView              `json:"home,omitempty"`
	Assessment *AssessmentView        `json:"assessment,omitempty"`
	Chat       *ChatView              `json:"chat,omitempty"`
	Analytics  *views.AnalyticsReport `json:"analytics,omitempty"`
}

// HomeView is the static welcome content.
type HomeView struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// AssessmentView describes the three assessment forms. The Enneagram
// form tracks the currently selected primary type so only valid wings
// are offered.
type AssessmentView struct {
	BigFive   []views.SliderSpec  `json:"big_five"`
	MBTI      []views.ChoiceSpec  `json:"mbti"`
	Enneagram views.EnneagramForm `json:"enneagram"`
}

// ChatView carries the past-self reply, empty until a question is asked.
type ChatView struct {
	Reply string `json:"reply,omitempty"`
}

// Dispatch handles one command for a session and returns the next
// render. Commands are serialized per session: each is handled to
// completion before the next is accepted.
func (e *Engine) Dispatch(ctx context.Context, sess *session.Session, cmd Command) (*Render, error) {
	sess.Lock()
	defer sess.Unlock()

	switch c := cmd.(type) {
	case Navigate:
		return e.renderPage(sess, c.Page)

	case SubmitBigFive:
		result := profile.NewBigFiveResult(c.Openness, c.Conscientiousness, c.Extraversion, c.Agreeableness, c.Neuroticism)
		return e.save(ctx, sess, result)

	case SubmitMBTI:
		result, err := profile.MBTIFromLabels(c.EI, c.SN, c.TF, c.JP)
		if err != nil {
			return nil, fmt.Errorf("mbti submission: %w", err)
		}
		return e.save(ctx, sess, result)

	case SelectEnneagramType:
		if c.Primary < profile.EnneagramMin || c.Primary > profile.EnneagramMax {
			return nil, fmt.Errorf("enneagram selection: invalid primary type %d", c.Primary)
		}
		render := assessmentRender(c.Primary)
		return render, nil

	case SubmitEnneagram:
		result, err := profile.NewEnneagramResult(c.Primary, c.Wing, c.Instinct)
		if err != nil {
			return nil, fmt.Errorf("enneagram submission: %w", err)
		}
		return e.save(ctx, sess, result)

	case Ask:
		if sess.Profile.IsEmpty() {
			return &Render{Page: PageChat, Warning: views.ChatGateWarning}, nil
		}
		return &Render{
			Page: PageChat,
			Chat: &ChatView{Reply: views.ChatReply(c.Question)},
		}, nil

	default:
		return nil, fmt.Errorf("unknown command type %T", cmd)
	}
}

// save stores a validated result, records a snapshot when memory is
// wired, and re-renders the assessment page with a confirmation.
func (e *Engine) save(ctx context.Context, sess *session.Session, result profile.Result) (*Render, error) {
	sess.Profile.Set(result)
	log.Printf("[ENGINE] Saved %s assessment for session %s", result.Kind(), sess.ID)

	if e.memory != nil {
		// Recording is best-effort: a memory failure never fails a save.
		if err := e.memory.RecordResult(ctx, sess.ID, result); err != nil {
			log.Printf("[ENGINE] Failed to record snapshot: %v", err)
		}
	}

	render := assessmentRender(profile.EnneagramMin)
	render.Notice = views.SaveConfirmation(result.Kind())
	return render, nil
}

// renderPage produces the pull-based render for a page, applying the
// emptiness gate to chat and analytics.
func (e *Engine) renderPage(sess *session.Session, page Page) (*Render, error) {
	switch page {
	case PageHome:
		return &Render{
			Page: PageHome,
			Home: &HomeView{Title: views.HomeTitle, Body: views.HomeBody},
		}, nil

	case PageAssessment:
		return assessmentRender(profile.EnneagramMin), nil

	case PageChat:
		if sess.Profile.IsEmpty() {
			return &Render{Page: PageChat, Warning: views.ChatGateWarning}, nil
		}
		return &Render{Page: PageChat, Chat: &ChatView{}}, nil

	case PageAnalytics:
		if sess.Profile.IsEmpty() {
			return &Render{Page: PageAnalytics, Warning: views.AnalyticsGateWarning}, nil
		}
		report := views.Analytics(sess.Profile)
		return &Render{Page: PageAnalytics, Analytics: &report}, nil

	default:
		return nil, fmt.Errorf("unknown page: %q", page)
	}
}

func assessmentRender(enneagramPrimary int) *Render {
	return &Render{
		Page: PageAssessment,
		Assessment: &AssessmentView{
			BigFive:   views.BigFiveForm(),
			MBTI:      views.MBTIForm(),
			Enneagram: views.EnneagramFormFor(enneagramPrimary),
		},
	}
}
