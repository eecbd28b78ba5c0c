package htmlform_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/renderers/htmlform"
)

func renderDefault(t *testing.T, opts render.Options) string {
	t.Helper()

	schema := form.New()
	if err := schema.Load(form.Default()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	renderer, err := htmlform.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := renderer.Render(context.Background(), schema, opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	return string(out)
}

func TestRenderLocalized(t *testing.T) {
	html := renderDefault(t, render.Options{Language: "de"})

	if !strings.Contains(html, "Willkommen bei DynamicForm") {
		t.Fatal("expected german title")
	}
	if !strings.Contains(html, `lang="de"`) {
		t.Fatal("expected form lang attribute")
	}
	if !strings.Contains(html, "Antworten speichern") {
		t.Fatal("expected localized submit label")
	}
}

func TestRenderPrefillsAnswers(t *testing.T) {
	html := renderDefault(t, render.Options{
		Language: "en",
		Answers: answers.Set{Language: "en", Answers: map[string]string{
			"c": "e",
			"h": "typed text",
		}},
	})

	if !strings.Contains(html, `value="typed text"`) {
		t.Fatal("expected text answer pre-filled")
	}
	if !strings.Contains(html, `value="e" checked`) {
		t.Fatal("expected selected option to carry the checked attribute")
	}
	if strings.Contains(html, `value="d" checked`) {
		t.Fatal("unselected options must not be checked")
	}
}

func TestRenderInlineErrors(t *testing.T) {
	html := renderDefault(t, render.Options{
		Language: "en",
		Errors:   map[string]string{"h": "This question requires an answer"},
	})

	if !strings.Contains(html, `<p class="dynamicform-error">This question requires an answer</p>`) {
		t.Fatal("expected inline validation error")
	}
}

func TestRenderMarkdownParagraph(t *testing.T) {
	schema := form.New()
	if err := schema.Load([]form.Item{
		form.Paragraph{ID: "p", Content: map[string]string{"en": "some **bold** text"}},
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	renderer, err := htmlform.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	out, err := renderer.Render(context.Background(), schema, render.Options{Language: "en"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(out), "<strong>bold</strong>") {
		t.Fatalf("expected rendered markdown, got:\n%s", out)
	}
}
