// Package editsync keeps a questionnaire schema and its editable JSON
// text representation consistent without update loops or clobbered edits.
// The text side is a debug/admin editor: every keystroke is accepted
// verbatim, valid array payloads sync silently into the schema, and the
// reactive schema-to-text rule is suppressed while a text edit is in
// flight.
package editsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/storage"
)

// User-facing sync errors. These surface next to the text editor and are
// not localized; they mirror the original tool's wording.
const (
	MsgInvalidJSON  = "Invalid JSON format"
	MsgNotArray     = "Questions data must be an array"
	MsgCannotFormat = "Cannot format: Invalid JSON"
)

// ErrInvalid is returned by Commit when the current text cannot be
// committed as a schema.
var ErrInvalid = errors.New("editsync: text is not a valid questions payload")

// Option configures the engine.
type Option func(*Engine)

// WithGuard supplies a shared guard, letting several engines (or the host
// shell) observe the same editing flag.
func WithGuard(guard *Guard) Option {
	return func(e *Engine) {
		if guard != nil {
			e.guard = guard
		}
	}
}

// WithScheduler sets the guard release scheduler without sharing a guard.
func WithScheduler(schedule Scheduler) Option {
	return func(e *Engine) {
		e.guard = NewGuard(schedule)
	}
}

// WithGateway wires the persistence gateway Commit forwards to.
func WithGateway(gateway storage.Gateway) Option {
	return func(e *Engine) {
		e.gateway = gateway
	}
}

// WithTextListener registers a callback fired whenever the engine itself
// rewrites the text (reactive re-serialization and explicit formatting,
// never plain SetText echoes).
func WithTextListener(fn func(string)) Option {
	return func(e *Engine) {
		e.onText = fn
	}
}

// Engine synchronizes a schema with its JSON text view. It assumes a
// single writer: all calls happen on the owning event loop, and the
// guard exists to break the reactive cycle, not to serialize goroutines.
type Engine struct {
	schema  *form.Schema
	guard   *Guard
	gateway storage.Gateway
	onText  func(string)

	text   string
	errMsg string
}

// NewEngine builds an engine over the given schema.
func NewEngine(schema *form.Schema, options ...Option) *Engine {
	e := &Engine{
		schema: schema,
		guard:  NewGuard(nil),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e
}

// Text returns the current editor text, exactly as last typed or
// generated.
func (e *Engine) Text() string {
	return e.text
}

// Err returns the current sync error message, or "" when the text is in a
// good state.
func (e *Engine) Err() string {
	return e.errMsg
}

// Guard exposes the editing flag, mainly for hosts that tie other
// reactive rules to it.
func (e *Engine) Guard() *Guard {
	return e.guard
}

// SetText accepts a keystroke-level text update. The raw text is always
// retained verbatim. When it parses as a JSON array the schema is
// replaced immediately and silently, under the guard, so live consumers
// update as the user types. When it parses to a non-array, or not at all,
// the prior schema is left untouched and an error message is recorded.
func (e *Engine) SetText(raw string) {
	e.text = raw

	items, err := form.ParseItems([]byte(raw))
	switch {
	case errors.Is(err, form.ErrNotArray):
		e.errMsg = MsgNotArray
	case err != nil:
		e.errMsg = MsgInvalidJSON
	default:
		e.guard.Hold(func() {
			if loadErr := e.schema.Load(items); loadErr != nil {
				e.errMsg = loadErr.Error()
				return
			}
			e.errMsg = ""
		})
	}
}

// SchemaChanged implements the reactive re-serialization rule: when the
// schema changed for any reason other than the user's own text edit, the
// text view is regenerated from the model. While the guard is held the
// call is a no-op, preserving whatever the user is mid-typing.
func (e *Engine) SchemaChanged() {
	if e.guard.Held() {
		return
	}
	data, err := form.MarshalItems(e.schema.Items())
	if err != nil {
		return
	}
	e.setText(string(data))
	e.errMsg = ""
}

// Format pretty-prints the current text in place. This is an explicit
// user action, so it may rewrite the text without a schema change. The
// payload only has to be valid JSON; shape checking stays with SetText
// and Commit.
func (e *Engine) Format() error {
	var payload any
	if err := json.Unmarshal([]byte(e.text), &payload); err != nil {
		e.errMsg = MsgCannotFormat
		return fmt.Errorf("editsync: format: %w", err)
	}
	pretty, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		e.errMsg = MsgCannotFormat
		return fmt.Errorf("editsync: format: %w", err)
	}
	e.setText(string(pretty))
	e.errMsg = ""
	return nil
}

// Commit re-parses the current text and, when valid, adopts it as the new
// schema and forwards it to the persistence gateway. A persistence
// failure is returned but the in-memory commit stands; the caller reports
// the error and the next save retries the write.
func (e *Engine) Commit(ctx context.Context) error {
	items, err := form.ParseItems([]byte(e.text))
	switch {
	case errors.Is(err, form.ErrNotArray):
		e.errMsg = MsgNotArray
		return fmt.Errorf("%w: %s", ErrInvalid, MsgNotArray)
	case err != nil:
		e.errMsg = MsgInvalidJSON
		return fmt.Errorf("%w: %s", ErrInvalid, MsgInvalidJSON)
	}

	var commitErr error
	e.guard.Hold(func() {
		commitErr = e.schema.Load(items)
	})
	if commitErr != nil {
		e.errMsg = commitErr.Error()
		return fmt.Errorf("%w: %v", ErrInvalid, commitErr)
	}
	e.errMsg = ""

	if e.gateway == nil {
		return nil
	}
	data, err := form.MarshalItems(items)
	if err != nil {
		return fmt.Errorf("editsync: serialize committed schema: %w", err)
	}
	if err := e.gateway.Put(ctx, storage.QuestionsKey, data); err != nil {
		return fmt.Errorf("editsync: persist questions: %w", err)
	}
	return nil
}

func (e *Engine) setText(text string) {
	e.text = text
	if e.onText != nil {
		e.onText(text)
	}
}
