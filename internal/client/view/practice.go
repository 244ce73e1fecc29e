package view

import (
	"context"
	"slices"

	"github.com/bipbipboopboop/ielts-progressor/internal/client"
	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// PracticeState is a state of the Practice view.
type PracticeState int

const (
	PracticeNoAttempt PracticeState = iota
	PracticeGenerating
	PracticeAttemptShown
	PracticeSubmitting
	PracticeDone
)

func (s PracticeState) String() string {
	switch s {
	case PracticeNoAttempt:
		return "no-attempt"
	case PracticeGenerating:
		return "generating"
	case PracticeAttemptShown:
		return "attempt-shown"
	case PracticeSubmitting:
		return "submitting"
	case PracticeDone:
		return "done"
	default:
		return "unknown"
	}
}

type practiceAPI interface {
	CurrentAttempt(ctx context.Context) (*client.Attempt, error)
	GeneratePracticeText(ctx context.Context) (*client.Attempt, error)
	ProcessSelectedWords(ctx context.Context, attemptID string, words []string) (*client.Submission, error)
}

// Practice shows a passage, collects the words the learner does not know and
// submits them.
type Practice struct {
	api        practiceAPI
	state      PracticeState
	attempt    *client.Attempt
	tokens     []string
	selected   []string
	submission *client.Submission
	err        error
}

// NewPractice returns a Practice view. Call Mount before anything else.
func NewPractice(api practiceAPI) *Practice {
	return &Practice{api: api}
}

// State returns the current state.
func (v *Practice) State() PracticeState { return v.state }

// Attempt returns the attempt on screen, if any.
func (v *Practice) Attempt() *client.Attempt { return v.attempt }

// Tokens returns the clickable passage tokens.
func (v *Practice) Tokens() []string { return v.tokens }

// Submission returns the outcome once the view is done.
func (v *Practice) Submission() *client.Submission { return v.submission }

// Err returns the last failure. It is cleared by the next action.
func (v *Practice) Err() error { return v.err }

// Mount resumes the in-progress attempt, if there is one.
func (v *Practice) Mount(ctx context.Context) error {
	v.reset()

	a, err := v.api.CurrentAttempt(ctx)
	if err != nil {
		if client.IsStatus(err, client.StatusNotFound) {
			return nil
		}
		v.err = err
		return err
	}

	v.show(a)
	return nil
}

// Generate requests a passage. On failure the view returns to PracticeNoAttempt.
func (v *Practice) Generate(ctx context.Context) error {
	if v.state != PracticeNoAttempt {
		return ErrInvalidTransition
	}

	v.state = PracticeGenerating
	v.err = nil

	a, err := v.api.GeneratePracticeText(ctx)
	if err != nil {
		v.state = PracticeNoAttempt
		v.err = err
		return err
	}

	v.show(a)
	return nil
}

// Toggle flips the selection of the word at token index i. Every occurrence
// of the same word shares one selection.
func (v *Practice) Toggle(i int) error {
	if v.state != PracticeAttemptShown {
		return ErrInvalidTransition
	}
	if i < 0 || i >= len(v.tokens) {
		return ErrInvalidTransition
	}

	word := domain.CleanWord(v.tokens[i])
	if word == "" {
		return nil
	}

	if idx := slices.Index(v.selected, word); idx >= 0 {
		v.selected = slices.Delete(v.selected, idx, idx+1)
	} else {
		v.selected = append(v.selected, word)
	}
	return nil
}

// IsSelected reports whether the word at token index i is selected.
func (v *Practice) IsSelected(i int) bool {
	if i < 0 || i >= len(v.tokens) {
		return false
	}
	word := domain.CleanWord(v.tokens[i])
	return word != "" && slices.Contains(v.selected, word)
}

// Selected returns the selected words in click order.
func (v *Practice) Selected() []string {
	return slices.Clone(v.selected)
}

// Submit sends the selection. On failure the view returns to
// PracticeAttemptShown with the selection kept.
func (v *Practice) Submit(ctx context.Context) error {
	if v.state != PracticeAttemptShown {
		return ErrInvalidTransition
	}

	v.state = PracticeSubmitting
	v.err = nil

	s, err := v.api.ProcessSelectedWords(ctx, v.attempt.ID, v.Selected())
	if err != nil {
		v.state = PracticeAttemptShown
		v.err = err
		return err
	}

	v.submission = s
	v.state = PracticeDone
	return nil
}

func (v *Practice) show(a *client.Attempt) {
	v.attempt = a
	v.tokens = domain.SplitPassage(a.Text)
	v.selected = nil
	v.state = PracticeAttemptShown
}

func (v *Practice) reset() {
	*v = Practice{api: v.api}
}
