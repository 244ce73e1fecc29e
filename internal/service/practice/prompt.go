package practice

import (
	"fmt"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

const passagePromptTemplate = "Generate a short text of around 4 sentences meant for a student of around IELTS %s. " +
	"It must include vocabulary around that level. " +
	"Generate ONLY the text and no explanations, no answers, ONLY THE TEXT (THIS IS VERY VERY IMPORTANT)."

// PassagePrompt renders the passage prompt for a score.
func PassagePrompt(score float64) string {
	return fmt.Sprintf(passagePromptTemplate, domain.FormatScore(score))
}
