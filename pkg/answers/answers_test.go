package answers_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynamicform/pkg/answers"
)

func TestDecodeWrapped(t *testing.T) {
	payload := []byte(`{"language":"de","answers":{"q1":"red","q2":"hello"}}`)

	set, err := answers.Decode(payload, "en")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := answers.Set{
		Language: "de",
		Answers:  map[string]string{"q1": "red", "q2": "hello"},
	}
	if diff := cmp.Diff(want, set); diff != "" {
		t.Fatalf("decoded set mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeLegacyNormalizes(t *testing.T) {
	payload := []byte(`{"q1":"red","q2":"hello"}`)

	set, err := answers.Decode(payload, "de")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if set.Language != "de" {
		t.Fatalf("legacy payload should adopt the active language, got %q", set.Language)
	}
	want := map[string]string{"q1": "red", "q2": "hello"}
	if diff := cmp.Diff(want, set.Answers); diff != "" {
		t.Fatalf("legacy answers changed during normalization (-want +got):\n%s", diff)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := answers.Decode([]byte(`[1,2,3]`), "en"); err == nil {
		t.Fatal("expected error for array payload")
	}
	if _, err := answers.Decode([]byte(`{"q":{"nested":true}}`), "en"); err == nil {
		t.Fatal("expected error for nested payload")
	}
}

func TestLanguageSwitchPreservesAnswers(t *testing.T) {
	store := answers.NewStore("en")
	store.SetAnswer("q1", "red")
	store.SetAnswer("q2", "free text")

	before := store.Snapshot()
	store.SetLanguage("de")
	after := store.Snapshot()

	if after.Language != "de" {
		t.Fatalf("language tag = %q, want %q", after.Language, "de")
	}
	if diff := cmp.Diff(before.Answers, after.Answers); diff != "" {
		t.Fatalf("answers changed on language switch (-before +after):\n%s", diff)
	}
	if value, _ := store.Answer("q1"); value != "red" {
		t.Fatalf("selected option lost on language switch: %q", value)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	store := answers.NewStore("en")
	store.SetAnswer("q1", "blue")

	data, err := answers.Encode(store.Snapshot())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	decoded, err := answers.Decode(data, "de")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(store.Snapshot(), decoded); diff != "" {
		t.Fatalf("encode/decode mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	store := answers.NewStore("en")
	store.SetAnswer("q1", "red")

	snap := store.Snapshot()
	snap.Answers["q1"] = "blue"

	if value, _ := store.Answer("q1"); value != "red" {
		t.Fatalf("mutating a snapshot must not affect the store, got %q", value)
	}
}
