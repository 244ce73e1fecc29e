package domain

import "time"

const (
	// DefaultScore is the proficiency score assigned to a new profile.
	DefaultScore = 6.0
	// DefaultDisplayName is used when the identity carries no display name.
	DefaultDisplayName = "New User"
)

// VocabularyItem is a word paired with its meaning.
type VocabularyItem struct {
	Word    string
	Meaning string
}

// Profile is the per-user record holding the proficiency score and vocabulary history.
type Profile struct {
	UID         string
	Email       *string
	DisplayName string
	Score       float64
	Vocabulary  []VocabularyItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProfile returns a profile with default score and empty vocabulary.
func NewProfile(uid string, email *string, displayName string) Profile {
	if displayName == "" {
		displayName = DefaultDisplayName
	}
	return Profile{
		UID:         uid,
		Email:       email,
		DisplayName: displayName,
		Score:       DefaultScore,
		Vocabulary:  []VocabularyItem{},
	}
}

// CurrentScore returns the stored score, falling back to DefaultScore when unset.
func (p *Profile) CurrentScore() float64 {
	if p.Score == 0 {
		return DefaultScore
	}
	return p.Score
}
