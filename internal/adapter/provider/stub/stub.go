package stub

import (
	"context"
	"strings"
)

// glossary holds a few IELTS-level words so the stub returns something useful.
var glossary = map[string]string{
	"proficiency":   "a high degree of skill or expertise",
	"standardized":  "made to conform to a standard",
	"assessment":    "the evaluation of the quality or ability of someone or something",
	"academic":      "relating to education and scholarship",
	"eloquent":      "fluent and persuasive in speaking or writing",
	"diligent":      "showing care and effort in one's work",
	"comprehensive": "including all or nearly all elements",
	"innovative":    "introducing new ideas; original and creative",
	"persistent":    "continuing firmly in a course of action despite difficulty",
	"ubiquitous":    "present, appearing, or found everywhere",
}

// Stub is an offline meaning provider for development and tests.
type Stub struct{}

// NewStub creates a new offline meaning provider.
func NewStub() *Stub { return &Stub{} }

// LookupMeanings answers from the built-in glossary; other words map to "".
func (s *Stub) LookupMeanings(_ context.Context, words []string) (map[string]string, error) {
	out := make(map[string]string, len(words))
	for _, w := range words {
		out[w] = glossary[strings.ToLower(w)]
	}
	return out, nil
}
