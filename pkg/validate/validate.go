// Package validate walks a questionnaire schema against an answer set and
// reports every required item that is still unanswered.
package validate

import (
	"strings"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

// Result carries the outcome of a validation pass. Errors maps item ids to
// localized, human-readable messages and is recomputed wholesale on every
// pass.
type Result struct {
	Valid  bool
	Errors map[string]string
}

// Validate checks every required item (text and choice questions) for a
// non-blank answer. Titles and paragraphs are decorative and never
// flagged. The pass is synchronous, deterministic and side-effect free.
//
// A choice answer naming an option id that no longer exists in the item's
// option list is deliberately not flagged: options may be edited after an
// answer was recorded and the stale reference stays resolvable once the
// option returns.
func Validate(schema *form.Schema, set answers.Set, lang string, catalog *i18n.Catalog) Result {
	result := Result{Valid: true, Errors: make(map[string]string)}
	if schema == nil {
		return result
	}

	for _, item := range schema.Items() {
		switch item.(type) {
		case form.Title, form.Paragraph:
			continue
		}

		value, ok := set.Answers[item.ItemID()]
		if !ok || strings.TrimSpace(value) == "" {
			result.Errors[item.ItemID()] = catalog.Message(lang, i18n.MsgAnswerRequired)
			result.Valid = false
		}
	}
	return result
}

// NonBlank reports whether a value counts as an answer: non-empty after
// trimming whitespace.
func NonBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// First returns the id of the first errored item in schema order, or ""
// when the result is clean. The caller uses it to move focus to the first
// failing control.
func (r Result) First(schema *form.Schema) string {
	if r.Valid || schema == nil {
		return ""
	}
	for _, item := range schema.Items() {
		if _, ok := r.Errors[item.ItemID()]; ok {
			return item.ItemID()
		}
	}
	return ""
}
