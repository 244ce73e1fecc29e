package practice

import (
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

const (
	maxSelectedWords = 200
	maxWordLength    = 100
)

// ProcessSelectedWordsInput holds parameters for ProcessSelectedWords.
type ProcessSelectedWordsInput struct {
	GeneratedTextID string
	SelectedWords   []string
}

// Validate checks the input and returns the parsed attempt id together with
// the cleaned, de-duplicated word list.
func (i ProcessSelectedWordsInput) Validate() (uuid.UUID, []string, error) {
	var errs []domain.FieldError

	var id uuid.UUID
	if i.GeneratedTextID == "" {
		errs = append(errs, domain.FieldError{Field: "generatedTextId", Message: "required"})
	} else {
		parsed, err := uuid.Parse(i.GeneratedTextID)
		if err != nil {
			errs = append(errs, domain.FieldError{Field: "generatedTextId", Message: "invalid id"})
		}
		id = parsed
	}

	if len(i.SelectedWords) > maxSelectedWords {
		errs = append(errs, domain.FieldError{Field: "selectedWords", Message: fmt.Sprintf("at most %d words", maxSelectedWords)})
	}
	for idx, w := range i.SelectedWords {
		if utf8.RuneCountInString(w) > maxWordLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("selectedWords[%d]", idx), Message: "too long"})
		}
	}

	words, empty := domain.CleanWords(i.SelectedWords)
	for _, idx := range empty {
		errs = append(errs, domain.FieldError{Field: fmt.Sprintf("selectedWords[%d]", idx), Message: "empty word"})
	}

	if len(errs) > 0 {
		return uuid.Nil, nil, domain.NewValidationErrors(errs)
	}
	return id, words, nil
}

// ListAttemptsInput holds parameters for ListAttempts.
type ListAttemptsInput struct {
	Completed *bool
	Limit     int
}

// Validate validates the list input.
func (i ListAttemptsInput) Validate() error {
	if i.Limit < 0 || i.Limit > domain.MaxAttemptLimit {
		return domain.NewValidationError("limit", fmt.Sprintf("must be between 0 and %d", domain.MaxAttemptLimit))
	}
	return nil
}
