package freedict

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology).
type apiEntry struct {
	Word     string       `json:"word"`
	Meanings []apiMeaning `json:"meanings"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}

// firstMeaning returns the first non-empty definition across all entries,
// prefixed with its part of speech when known.
func firstMeaning(entries []apiEntry) string {
	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition == "" {
					continue
				}
				if m.PartOfSpeech != "" {
					return "(" + m.PartOfSpeech + ") " + d.Definition
				}
				return d.Definition
			}
		}
	}
	return ""
}
