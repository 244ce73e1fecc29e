package view

import (
	"context"
	"fmt"

	"github.com/bipbipboopboop/ielts-progressor/internal/client"
)

// ResultsState is a state of the Results view.
type ResultsState int

const (
	ResultsLoading ResultsState = iota
	ResultsLoaded
	ResultsError
)

func (s ResultsState) String() string {
	switch s {
	case ResultsLoading:
		return "loading"
	case ResultsLoaded:
		return "loaded"
	case ResultsError:
		return "error"
	default:
		return "unknown"
	}
}

// historySize is how many past attempts the Results view lists.
const historySize = 5

type resultsAPI interface {
	GetAttempt(ctx context.Context, id string) (*client.Attempt, error)
	ProcessSelectedWords(ctx context.Context, attemptID string, words []string) (*client.Submission, error)
	ListAttempts(ctx context.Context, completed *bool, limit int) ([]client.Attempt, error)
}

// UnknownWord is a flagged word with its meaning. Meaning is empty when the
// dictionary does not know the word.
type UnknownWord struct {
	Word    string
	Meaning string
}

// Results shows the score of a submitted attempt and the flagged words.
type Results struct {
	api     resultsAPI
	state   ResultsState
	score   float64
	words   []UnknownWord
	history []client.Attempt
	err     error
}

// NewResults returns a Results view in the loading state.
func NewResults(api resultsAPI) *Results {
	return &Results{api: api}
}

// State returns the current state.
func (v *Results) State() ResultsState { return v.state }

// Score returns the new proficiency score.
func (v *Results) Score() float64 { return v.score }

// UnknownWords returns the flagged words in submission order.
func (v *Results) UnknownWords() []UnknownWord { return v.words }

// History returns recent completed attempts, newest first.
func (v *Results) History() []client.Attempt { return v.history }

// Err returns the failure that moved the view to ResultsError.
func (v *Results) Err() error { return v.err }

// Load reads the outcome of the attempt. Replaying the submission of a
// completed attempt returns its stored outcome, so the meanings come back
// without changing anything.
func (v *Results) Load(ctx context.Context, attemptID string) error {
	*v = Results{api: v.api, state: ResultsLoading}

	a, err := v.api.GetAttempt(ctx, attemptID)
	if err != nil {
		return v.fail(err)
	}
	if !a.Completed {
		return v.fail(fmt.Errorf("attempt %s has not been submitted", attemptID))
	}

	s, err := v.api.ProcessSelectedWords(ctx, a.ID, a.UnknownWords)
	if err != nil {
		return v.fail(err)
	}

	completed := true
	history, err := v.api.ListAttempts(ctx, &completed, historySize)
	if err != nil {
		return v.fail(err)
	}

	v.score = s.NewScore
	v.words = make([]UnknownWord, 0, len(a.UnknownWords))
	for _, w := range a.UnknownWords {
		v.words = append(v.words, UnknownWord{Word: w, Meaning: s.UnknownWords[w]})
	}
	v.history = history
	v.state = ResultsLoaded
	return nil
}

func (v *Results) fail(err error) error {
	v.state = ResultsError
	v.err = err
	return err
}
