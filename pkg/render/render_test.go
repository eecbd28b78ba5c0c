package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
	"github.com/goliatone/go-dynamicform/pkg/render"
)

type stubRenderer struct {
	name string
}

func (r stubRenderer) Name() string        { return r.name }
func (r stubRenderer) ContentType() string { return "text/plain" }
func (r stubRenderer) Render(context.Context, *form.Schema, render.Options) ([]byte, error) {
	return []byte(r.name), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()

	if err := registry.Register(stubRenderer{name: "html"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := registry.Register(stubRenderer{name: "html"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}

	if !registry.Has("html") {
		t.Fatal("Has should report registered renderer")
	}
	if _, err := registry.Get("missing"); err == nil {
		t.Fatal("expected lookup error for missing renderer")
	}

	_ = registry.Register(stubRenderer{name: "tui"})
	names := registry.List()
	if len(names) != 2 || names[0] != "html" || names[1] != "tui" {
		t.Fatalf("List = %v, want sorted [html tui]", names)
	}
}

func TestOptionsResolve(t *testing.T) {
	opts := render.Options{Language: "de"}
	text := i18n.Text{"en": "Hello"}

	if got := opts.Resolve(text); got != "Hello" {
		t.Fatalf("Resolve should fall back to the default language, got %q", got)
	}
}

func TestMarkdownHTML(t *testing.T) {
	html, err := render.MarkdownHTML("Some **bold** text and a [link](https://example.com).")
	if err != nil {
		t.Fatalf("MarkdownHTML: %v", err)
	}
	if !strings.Contains(html, "<strong>bold</strong>") {
		t.Fatalf("expected bold markup, got %q", html)
	}
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Fatalf("expected link markup, got %q", html)
	}
}

func TestMarkdownHTMLSanitizes(t *testing.T) {
	html, err := render.MarkdownHTML(`hello <script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("MarkdownHTML: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tags must be stripped, got %q", html)
	}
}
