package domain

// DictionaryEntry is one dictionary result for a word.
// The shape follows the dictionary service's JSON wire format.
type DictionaryEntry struct {
	// Word is the headword.
	Word string `json:"word"`

	// Phonetics lists pronunciation transcriptions. May be empty.
	Phonetics []Phonetic `json:"phonetics"`

	// Meanings groups definitions by part of speech.
	Meanings []Meaning `json:"meanings"`
}

// Phonetic is a pronunciation transcription, optionally with an audio sample.
type Phonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio,omitempty"`
}

// Meaning is a grouping of definitions under one part of speech.
type Meaning struct {
	PartOfSpeech string       `json:"partOfSpeech"`
	Definitions  []Definition `json:"definitions"`
}

// Definition is a single sense with optional example and related words.
type Definition struct {
	Definition string   `json:"definition"`
	Example    string   `json:"example,omitempty"`
	Synonyms   []string `json:"synonyms"`
	Antonyms   []string `json:"antonyms"`
}

// PrimaryPhonetic returns the first phonetic, or nil when there is none.
func (e *DictionaryEntry) PrimaryPhonetic() *Phonetic {
	if e == nil || len(e.Phonetics) == 0 {
		return nil
	}
	return &e.Phonetics[0]
}

// FirstDefinition returns the first definition text across all meanings.
// Returns an empty string if the entry has no definitions.
func (e *DictionaryEntry) FirstDefinition() string {
	if e == nil {
		return ""
	}
	for _, m := range e.Meanings {
		for _, d := range m.Definitions {
			if d.Definition != "" {
				return d.Definition
			}
		}
	}
	return ""
}

// DefinitionCount returns the total number of definitions across meanings.
func (e *DictionaryEntry) DefinitionCount() int {
	if e == nil {
		return 0
	}
	n := 0
	for _, m := range e.Meanings {
		n += len(m.Definitions)
	}
	return n
}
