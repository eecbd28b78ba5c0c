// Package render defines the contract between the questionnaire core and
// its output surfaces (HTML export, terminal fill). Visual layout is a
// renderer concern; the core only hands over the schema, answers and
// localized strings.
package render

import (
	"context"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

// Renderer converts a schema plus answer state into a byte representation
// (HTML, plain text, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, schema *form.Schema, opts Options) ([]byte, error)
}

// Options describe per-request data renderers use to customize output
// without touching the model.
type Options struct {
	// Language selects the display language; Fallback covers bundles that
	// miss it. An empty Fallback defaults to i18n.DefaultLanguage.
	Language string
	Fallback string
	// Answers pre-populates rendered controls.
	Answers answers.Set
	// Errors carries per-item validation messages for inline display.
	Errors map[string]string
	// Catalog resolves UI chrome strings (buttons, required marks).
	Catalog *i18n.Catalog
}

// FallbackLanguage returns the effective fallback.
func (o Options) FallbackLanguage() string {
	if o.Fallback != "" {
		return o.Fallback
	}
	return i18n.DefaultLanguage
}

// Resolve is shorthand for resolving a bundle with the option languages.
func (o Options) Resolve(text i18n.Text) string {
	return i18n.Resolve(text, o.Language, o.FallbackLanguage())
}
