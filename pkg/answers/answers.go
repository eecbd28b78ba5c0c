// Package answers holds the user's in-memory answer set: a mapping from
// item id to answer value plus the active language tag that travels with
// it on save.
package answers

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Set is the persisted answer shape. Values are free text for text
// questions and option ids for choice questions; an absent key means
// unanswered. Language reflects the UI's active language at last save and
// is independent of the individual answers.
type Set struct {
	Language string            `json:"language"`
	Answers  map[string]string `json:"answers"`
}

// Clone returns a deep copy of the set.
func (s Set) Clone() Set {
	out := Set{Language: s.Language, Answers: make(map[string]string, len(s.Answers))}
	for id, value := range s.Answers {
		out.Answers[id] = value
	}
	return out
}

// Encode serializes the set to its persisted JSON shape.
func Encode(s Set) ([]byte, error) {
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("answers: encode: %w", err)
	}
	return data, nil
}

// Decode parses a persisted answer payload. Two shapes are accepted: the
// current wrapped form {"language":...,"answers":{...}} and the legacy
// bare mapping {itemID:value}. A legacy payload is normalized by wrapping
// it with the supplied active language, leaving the mapping untouched.
func Decode(data []byte, activeLanguage string) (Set, error) {
	var wrapped Set
	if err := json.Unmarshal(data, &wrapped); err == nil && wrapped.Language != "" && wrapped.Answers != nil {
		return wrapped, nil
	}

	var legacy map[string]string
	if err := json.Unmarshal(data, &legacy); err != nil {
		return Set{}, errors.New("answers: unrecognized answer payload")
	}
	if legacy == nil {
		legacy = map[string]string{}
	}
	return Set{Language: activeLanguage, Answers: legacy}, nil
}

// Store tracks the live answer set. Per the application's cooperative
// single-goroutine model it carries no locking; all mutation happens from
// the owning event loop.
type Store struct {
	set Set
}

// NewStore returns an empty store tagged with the given language.
func NewStore(language string) *Store {
	return &Store{set: Set{Language: language, Answers: make(map[string]string)}}
}

// SetAnswer records the answer for an item, replacing any previous value.
func (s *Store) SetAnswer(itemID, value string) {
	if s.set.Answers == nil {
		s.set.Answers = make(map[string]string)
	}
	s.set.Answers[itemID] = value
}

// Answer returns the recorded answer for an item.
func (s *Store) Answer(itemID string) (string, bool) {
	value, ok := s.set.Answers[itemID]
	return value, ok
}

// SetLanguage retags the set. Answers are keyed by item id, not language,
// so switching language never loses or duplicates them.
func (s *Store) SetLanguage(language string) {
	s.set.Language = language
}

// Language reports the active language tag.
func (s *Store) Language() string {
	return s.set.Language
}

// Snapshot returns a copy of the current set, suitable for validation or
// persistence.
func (s *Store) Snapshot() Set {
	return s.set.Clone()
}

// Replace adopts a loaded set wholesale.
func (s *Store) Replace(set Set) {
	if set.Answers == nil {
		set.Answers = make(map[string]string)
	}
	s.set = set
}

// Clear drops all answers but keeps the language tag.
func (s *Store) Clear() {
	s.set.Answers = make(map[string]string)
}
