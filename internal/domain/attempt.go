package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one generated-passage practice session and its eventual outcome.
type Attempt struct {
	ID             uuid.UUID
	UID            string
	Text           string
	Score          float64
	Completed      bool
	UnknownWords   []string
	SuggestedWords []VocabularyItem
	CreatedAt      time.Time
	CompletedAt    *time.Time
}

// NewAttempt builds an in-progress attempt for a freshly generated passage.
func NewAttempt(uid, text string, score float64, now time.Time) Attempt {
	return Attempt{
		ID:             uuid.New(),
		UID:            uid,
		Text:           text,
		Score:          score,
		UnknownWords:   []string{},
		SuggestedWords: []VocabularyItem{},
		CreatedAt:      now,
	}
}

// InProgress reports whether the attempt still awaits a submission.
func (a *Attempt) InProgress() bool {
	return !a.Completed
}

// AttemptFilter narrows attempt history listings.
type AttemptFilter struct {
	UID       string
	Completed *bool
	Limit     int
}

const (
	DefaultAttemptLimit = 20
	MaxAttemptLimit     = 100
)

// Normalize applies limit defaults and bounds.
func (f *AttemptFilter) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultAttemptLimit
	}
	if f.Limit > MaxAttemptLimit {
		f.Limit = MaxAttemptLimit
	}
}

// SubmissionResult is the outcome of processing the words flagged on an attempt.
type SubmissionResult struct {
	Attempt      *Attempt
	NewScore     float64
	UnknownWords map[string]string
}
