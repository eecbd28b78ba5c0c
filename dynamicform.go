// Package dynamicform re-exports the most used surface of the module so
// callers can work with questionnaires without importing each subpackage.
package dynamicform

import (
	"context"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/render"
	"github.com/goliatone/go-dynamicform/pkg/renderers/htmlform"
	"github.com/goliatone/go-dynamicform/pkg/session"
	"github.com/goliatone/go-dynamicform/pkg/storage"
)

// Item is a questionnaire entry: a title, a paragraph, a text question or a
// single-choice question.
type Item = form.Item

// Schema is an ordered, id-unique collection of items.
type Schema = form.Schema

// Session drives a questionnaire against a storage gateway.
type Session = session.Session

// Gateway persists questionnaire and answer documents by key.
type Gateway = storage.Gateway

// Option configures a Session.
type Option = session.Option

// NewSession builds a session over the gateway, starting from the built-in
// questionnaire.
func NewSession(gateway storage.Gateway, options ...session.Option) (*session.Session, error) {
	return session.New(gateway, options...)
}

// ParseItems decodes a questionnaire document.
func ParseItems(data []byte) ([]form.Item, error) {
	return form.ParseItems(data)
}

// DefaultItems returns the built-in demo questionnaire.
func DefaultItems() []form.Item {
	return form.Default()
}

// RenderHTML renders the schema as a standalone HTML form in the given
// language. It is the simplest entry point for callers that just want
// markup.
func RenderHTML(ctx context.Context, schema *form.Schema, language string) ([]byte, error) {
	renderer, err := htmlform.New()
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, schema, render.Options{Language: language})
}
