// Package htmlform renders a questionnaire schema to static, structural
// HTML: a localized form with answers pre-filled and validation errors
// inline. Styling is left entirely to the embedding page.
package htmlform

import (
	"context"
	"fmt"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
	"github.com/goliatone/go-dynamicform/pkg/render"
)

// Name is the registry identifier for this renderer.
const Name = "htmlform"

// Renderer implements render.Renderer for HTML export.
type Renderer struct {
	template *pongo2.Template
}

var _ render.Renderer = (*Renderer)(nil)

// New compiles the form template and returns the renderer.
func New() (*Renderer, error) {
	tpl, err := pongo2.FromString(formTemplate)
	if err != nil {
		return nil, fmt.Errorf("htmlform: compile template: %w", err)
	}
	return &Renderer{template: tpl}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string { return Name }

// ContentType reports the output MIME type.
func (r *Renderer) ContentType() string { return "text/html; charset=utf-8" }

// Render produces the HTML document for the schema in the requested
// language.
func (r *Renderer) Render(ctx context.Context, schema *form.Schema, opts render.Options) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, fmt.Errorf("htmlform: schema is required")
	}

	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}

	views, err := buildItemViews(schema, opts)
	if err != nil {
		return nil, err
	}

	out, err := r.template.Execute(pongo2.Context{
		"items":        views,
		"language":     opts.Language,
		"submit_label": catalog.Message(opts.Language, i18n.MsgSaveAnswers),
		"required":     catalog.Message(opts.Language, i18n.MsgRequiredMark),
	})
	if err != nil {
		return nil, fmt.Errorf("htmlform: execute template: %w", err)
	}
	return []byte(out), nil
}

// itemView is the flattened, language-resolved shape the template
// consumes. HTML carries pre-sanitized markdown output and is emitted
// with |safe; everything else is escaped by the template engine.
type itemView struct {
	Kind        string
	ID          string
	HTML        string
	Label       string
	Placeholder string
	Value       string
	Error       string
	Options     []optionView
}

type optionView struct {
	ID       string
	Label    string
	Selected bool
}

func buildItemViews(schema *form.Schema, opts render.Options) ([]itemView, error) {
	items := schema.Items()
	views := make([]itemView, 0, len(items))

	for _, item := range items {
		view := itemView{ID: item.ItemID(), Error: opts.Errors[item.ItemID()]}
		answer := opts.Answers.Answers[item.ItemID()]

		switch typed := item.(type) {
		case form.Title:
			view.Kind = "title"
			html, err := render.MarkdownHTML(opts.Resolve(typed.Content))
			if err != nil {
				return nil, err
			}
			view.HTML = html
		case form.Paragraph:
			view.Kind = "paragraph"
			html, err := render.MarkdownHTML(opts.Resolve(typed.Content))
			if err != nil {
				return nil, err
			}
			view.HTML = html
		case form.TextQuestion:
			view.Kind = "text"
			view.Label = opts.Resolve(typed.Question)
			view.Placeholder = opts.Resolve(typed.Placeholder)
			view.Value = answer
		case form.ChoiceQuestion:
			view.Kind = "choice"
			view.Label = opts.Resolve(typed.Question)
			for _, option := range typed.Options {
				view.Options = append(view.Options, optionView{
					ID:       option.ID,
					Label:    opts.Resolve(option.Text),
					Selected: answer == option.ID,
				})
			}
		default:
			return nil, fmt.Errorf("htmlform: unsupported item %T", item)
		}
		views = append(views, view)
	}
	return views, nil
}
