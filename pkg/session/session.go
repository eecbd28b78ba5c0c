// Package session wires the questionnaire core together: schema, answer
// store, validator, JSON-sync engine, persistence gateway and auth
// provider, exposing the operations a form shell invokes.
//
// A session expects a single goroutine: UI event handlers and resumed
// network callbacks interleave on one logical thread, so no internal
// locking is required beyond the sync engine's editing guard. Overlapping
// gateway calls carry no ordering guarantee; two saves fired back to back
// are last-write-wins at the store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/auth"
	"github.com/goliatone/go-dynamicform/pkg/editsync"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
	"github.com/goliatone/go-dynamicform/pkg/storage"
	"github.com/goliatone/go-dynamicform/pkg/validate"
)

// ErrValidation is returned by Submit when required questions are still
// unanswered. The form stays editable; per-item messages are available
// through ValidationErrors.
var ErrValidation = errors.New("session: form has unanswered questions")

// ErrSessionExpired is returned when the auth provider reports a fatal
// session error; the session signs out in response.
var ErrSessionExpired = errors.New("session: authentication session expired")

// Option configures a session.
type Option func(*Session)

// WithAuth attaches an auth provider. Without one the session never signs
// out and the gateway is expected to handle its own credentials.
func WithAuth(provider auth.Provider) Option {
	return func(s *Session) {
		s.auth = provider
	}
}

// WithCatalog replaces the UI message catalog.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(s *Session) {
		if catalog != nil {
			s.catalog = catalog
		}
	}
}

// WithLanguage sets the initial active language.
func WithLanguage(lang string) Option {
	return func(s *Session) {
		if lang != "" {
			s.language = lang
		}
	}
}

// WithStatusDelay overrides the auto-clear delay for both status lines.
func WithStatusDelay(delay time.Duration) Option {
	return func(s *Session) {
		s.statusDelay = delay
	}
}

// WithScheduler forwards a guard release scheduler to the sync engine.
func WithScheduler(schedule editsync.Scheduler) Option {
	return func(s *Session) {
		s.scheduler = schedule
	}
}

// Session is the live state of one questionnaire: current schema, the
// user's answers, validation errors and the two status lines (answers and
// questions) the original tool displays.
type Session struct {
	schema  *form.Schema
	store   *answers.Store
	engine  *editsync.Engine
	gateway storage.Gateway
	auth    auth.Provider
	catalog *i18n.Catalog

	language    string
	errors      map[string]string
	focusID     string
	statusDelay time.Duration
	scheduler   editsync.Scheduler

	saveStatus      *Status
	questionsStatus *Status
}

// New builds a session over a persistence gateway. The schema starts as
// the built-in default questionnaire.
func New(gateway storage.Gateway, options ...Option) (*Session, error) {
	s := &Session{
		gateway:     gateway,
		catalog:     i18n.Default(),
		language:    i18n.DefaultLanguage,
		errors:      make(map[string]string),
		statusDelay: DefaultStatusDelay,
	}
	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}

	s.schema = form.New()
	if err := s.schema.Load(form.Default()); err != nil {
		return nil, fmt.Errorf("session: load default schema: %w", err)
	}
	s.store = answers.NewStore(s.language)
	s.engine = editsync.NewEngine(s.schema,
		editsync.WithGateway(gateway),
		editsync.WithScheduler(s.scheduler),
	)
	s.engine.SchemaChanged()
	s.saveStatus = NewStatus(s.statusDelay)
	s.questionsStatus = NewStatus(s.statusDelay)
	return s, nil
}

// Schema returns the live schema model.
func (s *Session) Schema() *form.Schema { return s.schema }

// Answers returns the live answer store.
func (s *Session) Answers() *answers.Store { return s.store }

// Sync returns the JSON-sync engine backing the debug editor.
func (s *Session) Sync() *editsync.Engine { return s.engine }

// Language reports the active language.
func (s *Session) Language() string { return s.language }

// SaveStatus is the transient status line for answer operations.
func (s *Session) SaveStatus() *Status { return s.saveStatus }

// QuestionsStatus is the transient status line for schema operations.
func (s *Session) QuestionsStatus() *Status { return s.questionsStatus }

// ValidationErrors returns the current per-item error map.
func (s *Session) ValidationErrors() map[string]string { return s.errors }

// FocusID names the first errored item after a failed Submit, so the
// shell can scroll it into view. Cleared on the next successful pass.
func (s *Session) FocusID() string { return s.focusID }

// SetLanguage switches the active language. Only the answer set's
// language tag changes; the answers themselves are keyed by item id and
// survive the switch untouched.
func (s *Session) SetLanguage(lang string) {
	lang = i18n.Normalize(lang)
	if lang == "" {
		return
	}
	s.language = lang
	s.store.SetLanguage(lang)
}

// AnswerText records a free-text answer. A non-blank value clears the
// item's validation error without re-running the full pass.
func (s *Session) AnswerText(itemID, value string) {
	s.store.SetAnswer(itemID, value)
	if validate.NonBlank(value) {
		delete(s.errors, itemID)
	}
}

// AnswerChoice records a selected option id and clears the item's
// validation error.
func (s *Session) AnswerChoice(itemID, optionID string) {
	s.store.SetAnswer(itemID, optionID)
	delete(s.errors, itemID)
}

// Validate runs a full validation pass and replaces the error map.
func (s *Session) Validate() validate.Result {
	result := validate.Validate(s.schema, s.store.Snapshot(), s.language, s.catalog)
	s.errors = result.Errors
	return result
}

// Submit validates and, when clean, saves the full answer set including
// the language tag. On failure the "please answer all" status is raised
// and the first errored item is exposed through FocusID.
func (s *Session) Submit(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	result := s.Validate()
	if !result.Valid {
		s.focusID = result.First(s.schema)
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgPleaseAnswerAll))
		return ErrValidation
	}
	s.focusID = ""
	return s.SaveAnswers(ctx)
}

// SaveAnswers persists the current answer set.
func (s *Session) SaveAnswers(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	data, err := answers.Encode(s.store.Snapshot())
	if err != nil {
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorSaving))
		return err
	}
	if err := s.gateway.Put(ctx, storage.AnswersKey, data); err != nil {
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorSaving) + ": " + err.Error())
		return fmt.Errorf("session: save answers: %w", err)
	}
	s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgSaved))
	return nil
}

// LoadAnswers rehydrates the answer set from storage. A saved language
// tag switches the active language; a legacy bare mapping is wrapped with
// the current one. Not-found is not an error: it raises the "no saved
// answers" status and leaves the set alone.
func (s *Session) LoadAnswers(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	data, err := s.gateway.Get(ctx, storage.AnswersKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgNoSavedAnswers))
		s.errors = make(map[string]string)
		return nil
	}
	if err != nil {
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorLoading) + ": " + err.Error())
		return fmt.Errorf("session: load answers: %w", err)
	}

	set, err := answers.Decode(data, s.language)
	if err != nil {
		s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorLoading))
		return fmt.Errorf("session: load answers: %w", err)
	}

	s.store.Replace(set)
	if set.Language != "" {
		s.language = set.Language
	}
	s.errors = make(map[string]string)
	s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgLoaded))
	return nil
}

// SaveQuestions commits the debug editor's current text as the schema and
// persists it. An invalid payload never reaches storage; a persistence
// failure is surfaced but the in-memory commit stands.
func (s *Session) SaveQuestions(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	if err := s.engine.Commit(ctx); err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorSaving) + ": " + err.Error())
		return err
	}
	s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgSaved))
	return nil
}

// LoadQuestions replaces the schema from storage. Not-found restores the
// built-in default questionnaire. Validation errors reset either way.
func (s *Session) LoadQuestions(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	data, err := s.gateway.Get(ctx, storage.QuestionsKey)
	if errors.Is(err, storage.ErrNotFound) {
		if err := s.schema.Load(form.Default()); err != nil {
			return fmt.Errorf("session: restore default schema: %w", err)
		}
		s.engine.SchemaChanged()
		s.errors = make(map[string]string)
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgNoSavedAnswers))
		return nil
	}
	if err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorLoading) + ": " + err.Error())
		return fmt.Errorf("session: load questions: %w", err)
	}

	items, err := form.ParseItems(data)
	if err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorLoading) + ": " + err.Error())
		return fmt.Errorf("session: load questions: %w", err)
	}
	if err := s.schema.Load(items); err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorLoading) + ": " + err.Error())
		return fmt.Errorf("session: load questions: %w", err)
	}

	s.engine.SchemaChanged()
	s.errors = make(map[string]string)
	s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgLoaded))
	return nil
}

// Reset clears both stored keys and restores the default questionnaire
// with an empty answer set.
func (s *Session) Reset(ctx context.Context) error {
	if err := s.checkAuth(ctx); err != nil {
		return err
	}

	if err := s.gateway.Delete(ctx, storage.QuestionsKey); err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorSaving) + ": " + err.Error())
		return fmt.Errorf("session: reset: %w", err)
	}
	if err := s.gateway.Delete(ctx, storage.AnswersKey); err != nil {
		s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgErrorSaving) + ": " + err.Error())
		return fmt.Errorf("session: reset: %w", err)
	}

	if err := s.schema.Load(form.Default()); err != nil {
		return fmt.Errorf("session: restore default schema: %w", err)
	}
	s.engine.SchemaChanged()
	s.store.Clear()
	s.errors = make(map[string]string)
	s.focusID = ""
	s.questionsStatus.Set(s.catalog.Message(s.language, i18n.MsgQuestionsReset))
	s.saveStatus.Set(s.catalog.Message(s.language, i18n.MsgAnswersCleared))
	return nil
}

// checkAuth enforces the fatal-session policy: a provider error forces a
// sign-out and aborts the operation.
func (s *Session) checkAuth(ctx context.Context) error {
	if s.auth == nil {
		return nil
	}
	if err := s.auth.Err(); err != nil {
		_ = s.auth.SignOut(ctx)
		return fmt.Errorf("%w: %v", ErrSessionExpired, err)
	}
	return nil
}
