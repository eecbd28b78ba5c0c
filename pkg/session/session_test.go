package session_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/auth"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/session"
	"github.com/goliatone/go-dynamicform/pkg/storage"
	"github.com/goliatone/go-dynamicform/pkg/storage/memory"
)

func newSession(t *testing.T, gateway storage.Gateway, options ...session.Option) *session.Session {
	t.Helper()
	options = append(options, session.WithStatusDelay(0))
	s, err := session.New(gateway, options...)
	if err != nil {
		t.Fatalf("session.New: %v", err)
	}
	return s
}

func TestSubmitFlagsUnansweredQuestions(t *testing.T) {
	s := newSession(t, memory.New())

	err := s.Submit(context.Background())
	if !errors.Is(err, session.ErrValidation) {
		t.Fatalf("Submit: got %v, want ErrValidation", err)
	}

	// Default questionnaire: "c" (choice) and "h" (text) are required.
	if _, ok := s.ValidationErrors()["c"]; !ok {
		t.Fatal("expected error for choice question c")
	}
	if _, ok := s.ValidationErrors()["h"]; !ok {
		t.Fatal("expected error for text question h")
	}
	if got := s.FocusID(); got != "c" {
		t.Fatalf("FocusID = %q, want first errored item %q", got, "c")
	}
	if s.SaveStatus().Message() != "Please answer all questions before saving" {
		t.Fatalf("unexpected status: %q", s.SaveStatus().Message())
	}
}

func TestSubmitSavesWhenValid(t *testing.T) {
	store := memory.New()
	s := newSession(t, store)

	s.AnswerChoice("c", "e")
	s.AnswerText("h", "all good")

	if err := s.Submit(context.Background()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	data, err := store.Get(context.Background(), storage.AnswersKey)
	if err != nil {
		t.Fatalf("Get saved answers: %v", err)
	}
	set, err := answers.Decode(data, "en")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := map[string]string{"c": "e", "h": "all good"}
	if diff := cmp.Diff(want, set.Answers); diff != "" {
		t.Fatalf("saved answers mismatch (-want +got):\n%s", diff)
	}
	if set.Language != "en" {
		t.Fatalf("saved language = %q, want %q", set.Language, "en")
	}
}

func TestAnsweringClearsValidationError(t *testing.T) {
	s := newSession(t, memory.New())
	_ = s.Submit(context.Background())

	s.AnswerChoice("c", "d")
	if _, ok := s.ValidationErrors()["c"]; ok {
		t.Fatal("answering a choice should clear its validation error")
	}

	s.AnswerText("h", "   ")
	if _, ok := s.ValidationErrors()["h"]; !ok {
		t.Fatal("a blank text answer must not clear the validation error")
	}

	s.AnswerText("h", "done")
	if _, ok := s.ValidationErrors()["h"]; ok {
		t.Fatal("a real text answer should clear the validation error")
	}
}

func TestLoadAnswersLegacyShape(t *testing.T) {
	store := memory.New()
	if err := store.Put(context.Background(), storage.AnswersKey, []byte(`{"c":"d","h":"hi"}`)); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s := newSession(t, store, session.WithLanguage("de"))
	if err := s.LoadAnswers(context.Background()); err != nil {
		t.Fatalf("LoadAnswers: %v", err)
	}

	snap := s.Answers().Snapshot()
	if snap.Language != "de" {
		t.Fatalf("legacy set should adopt active language, got %q", snap.Language)
	}
	want := map[string]string{"c": "d", "h": "hi"}
	if diff := cmp.Diff(want, snap.Answers); diff != "" {
		t.Fatalf("legacy answers mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadAnswersSwitchesLanguage(t *testing.T) {
	store := memory.New()
	payload := []byte(`{"language":"de","answers":{"c":"d"}}`)
	if err := store.Put(context.Background(), storage.AnswersKey, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s := newSession(t, store)
	if err := s.LoadAnswers(context.Background()); err != nil {
		t.Fatalf("LoadAnswers: %v", err)
	}
	if s.Language() != "de" {
		t.Fatalf("active language = %q, want %q from saved set", s.Language(), "de")
	}
}

func TestLoadAnswersNotFoundIsNotAnError(t *testing.T) {
	s := newSession(t, memory.New())

	if err := s.LoadAnswers(context.Background()); err != nil {
		t.Fatalf("LoadAnswers on empty store: %v", err)
	}
	if s.SaveStatus().Message() != "No saved answers found" {
		t.Fatalf("unexpected status: %q", s.SaveStatus().Message())
	}
}

func TestLoadQuestionsNotFoundRestoresDefault(t *testing.T) {
	s := newSession(t, memory.New())

	// Replace the schema, then load from an empty store.
	s.Sync().SetText(`[{"id":"only","type":"title","content":{"en":"T"}}]`)
	if err := s.LoadQuestions(context.Background()); err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	if s.Schema().Len() != len(form.Default()) {
		t.Fatalf("schema should reset to default, len = %d", s.Schema().Len())
	}
}

func TestLoadQuestionsFromStore(t *testing.T) {
	store := memory.New()
	payload := []byte(`[{"id":"only","type":"text","question":{"en":"Q?"}}]`)
	if err := store.Put(context.Background(), storage.QuestionsKey, payload); err != nil {
		t.Fatalf("Put: %v", err)
	}

	s := newSession(t, store)
	if err := s.LoadQuestions(context.Background()); err != nil {
		t.Fatalf("LoadQuestions: %v", err)
	}
	if _, ok := s.Schema().FindByID("only"); !ok {
		t.Fatal("loaded schema missing expected item")
	}

	// The debug editor text mirrors the freshly loaded schema.
	reparsed, err := form.ParseItems([]byte(s.Sync().Text()))
	if err != nil {
		t.Fatalf("editor text does not parse: %v", err)
	}
	if diff := cmp.Diff(s.Schema().Items(), reparsed); diff != "" {
		t.Fatalf("editor text out of sync (-schema +text):\n%s", diff)
	}
}

func TestLanguageSwitchKeepsAnswers(t *testing.T) {
	s := newSession(t, memory.New())
	s.AnswerChoice("c", "e")

	s.SetLanguage("de")

	if value, _ := s.Answers().Answer("c"); value != "e" {
		t.Fatalf("selected option lost on language switch: %q", value)
	}
	if s.Answers().Language() != "de" {
		t.Fatalf("answer set language tag = %q, want %q", s.Answers().Language(), "de")
	}
}

func TestReset(t *testing.T) {
	store := memory.New()
	s := newSession(t, store)
	s.AnswerChoice("c", "d")
	if err := s.SaveAnswers(context.Background()); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}

	if err := s.Reset(context.Background()); err != nil {
		t.Fatalf("Reset: %v", err)
	}

	if store.Len() != 0 {
		t.Fatalf("store should be empty after reset, has %d keys", store.Len())
	}
	if _, ok := s.Answers().Answer("c"); ok {
		t.Fatal("answers should be cleared after reset")
	}
	if s.Schema().Len() != len(form.Default()) {
		t.Fatal("schema should reset to default")
	}
}

func TestAuthErrorForcesSignOut(t *testing.T) {
	provider := auth.NewStatic("token")
	provider.Fail(errors.New("token refresh failed"))

	s := newSession(t, memory.New(), session.WithAuth(provider))
	err := s.SaveAnswers(context.Background())
	if !errors.Is(err, session.ErrSessionExpired) {
		t.Fatalf("SaveAnswers: got %v, want ErrSessionExpired", err)
	}
	if provider.IsAuthenticated() {
		t.Fatal("provider should be signed out after a fatal session error")
	}
}

func TestStatusAutoClears(t *testing.T) {
	status := session.NewStatus(10 * time.Millisecond)
	status.Set("saved successfully")

	if status.Message() != "saved successfully" {
		t.Fatalf("status not set: %q", status.Message())
	}

	deadline := time.Now().Add(time.Second)
	for status.Message() != "" {
		if time.Now().After(deadline) {
			t.Fatal("status did not auto-clear")
		}
		time.Sleep(2 * time.Millisecond)
	}
}
