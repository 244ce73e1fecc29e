// Package generation defines the contract between the practice services and a
// remote text-generation backend.
package generation

import (
	"context"
	"errors"
)

// ErrMalformedResponse is returned when a backend reply cannot be decoded into
// a usable result.
var ErrMalformedResponse = errors.New("malformed generation response")

// Kind selects the model and output budget a backend uses for a request.
type Kind int

const (
	// KindPassage produces a practice passage.
	KindPassage Kind = iota
	// KindScoring produces a single proficiency score.
	KindScoring
)

func (k Kind) String() string {
	switch k {
	case KindPassage:
		return "passage"
	case KindScoring:
		return "scoring"
	default:
		return "unknown"
	}
}

// Request is a single prompt sent to the backend.
type Request struct {
	Kind   Kind
	Prompt string
}

// Session is an authenticated handle on the backend, valid for one operation.
type Session interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Backend opens sessions. Each call obtains fresh credentials.
type Backend interface {
	NewSession(ctx context.Context) (Session, error)
}
