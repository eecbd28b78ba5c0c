package form_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

const sampleQuestions = `[
  {
    "id": "a",
    "type": "title",
    "content": {"en": "Survey", "de": "Umfrage"}
  },
  {
    "id": "b",
    "type": "text",
    "content": {"en": "Some **markdown** context"}
  },
  {
    "id": "q1",
    "type": "choice",
    "question": {"en": "Color?"},
    "options": [
      {"id": "red", "en": "Red", "de": "Rot"},
      {"id": "blue", "en": "Blue", "de": "Blau"}
    ]
  },
  {
    "id": "q2",
    "type": "text",
    "question": {"en": "Anything else?"},
    "placeholder": {"en": "Type here"}
  }
]`

func TestParseItems(t *testing.T) {
	items, err := form.ParseItems([]byte(sampleQuestions))
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}

	want := []form.Item{
		form.Title{ID: "a", Content: i18n.Text{"en": "Survey", "de": "Umfrage"}},
		form.Paragraph{ID: "b", Content: i18n.Text{"en": "Some **markdown** context"}},
		form.ChoiceQuestion{
			ID:       "q1",
			Question: i18n.Text{"en": "Color?"},
			Options: []form.Option{
				{ID: "red", Text: i18n.Text{"en": "Red", "de": "Rot"}},
				{ID: "blue", Text: i18n.Text{"en": "Blue", "de": "Blau"}},
			},
		},
		form.TextQuestion{
			ID:          "q2",
			Question:    i18n.Text{"en": "Anything else?"},
			Placeholder: i18n.Text{"en": "Type here"},
		},
	}

	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("parsed items mismatch (-want +got):\n%s", diff)
	}
}

func TestParseItemsParagraphVsQuestion(t *testing.T) {
	items, err := form.ParseItems([]byte(`[
		{"id": "p", "type": "text", "content": {"en": "decorative"}},
		{"id": "q", "type": "text", "question": {"en": "required"}}
	]`))
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}

	if _, ok := items[0].(form.Paragraph); !ok {
		t.Fatalf("expected Paragraph for question-less text item, got %T", items[0])
	}
	if _, ok := items[1].(form.TextQuestion); !ok {
		t.Fatalf("expected TextQuestion for text item with question, got %T", items[1])
	}
}

func TestParseItemsErrors(t *testing.T) {
	if _, err := form.ParseItems([]byte(`[{"id":"x"`)); !errors.Is(err, form.ErrInvalidJSON) {
		t.Fatalf("truncated payload: got %v, want ErrInvalidJSON", err)
	}
	if _, err := form.ParseItems([]byte(`{"id":"x"}`)); !errors.Is(err, form.ErrNotArray) {
		t.Fatalf("object payload: got %v, want ErrNotArray", err)
	}
	if _, err := form.ParseItems([]byte(`[{"id":"x","type":"slider"}]`)); err == nil {
		t.Fatal("expected error for unknown item type")
	}
}

func TestRoundTrip(t *testing.T) {
	original, err := form.ParseItems([]byte(sampleQuestions))
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}

	encoded, err := form.MarshalItems(original)
	if err != nil {
		t.Fatalf("MarshalItems: %v", err)
	}

	reparsed, err := form.ParseItems(encoded)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	if diff := cmp.Diff(original, reparsed); diff != "" {
		t.Fatalf("round trip changed items (-original +reparsed):\n%s", diff)
	}
}

func TestRoundTripDefault(t *testing.T) {
	encoded, err := form.MarshalItems(form.Default())
	if err != nil {
		t.Fatalf("MarshalItems: %v", err)
	}
	reparsed, err := form.ParseItems(encoded)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}
	if diff := cmp.Diff(form.Default(), reparsed); diff != "" {
		t.Fatalf("default questionnaire did not round trip (-want +got):\n%s", diff)
	}
}
