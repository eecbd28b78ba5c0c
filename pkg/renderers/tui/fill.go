// Package tui drives an interactive questionnaire fill session in the
// terminal: decorative items print as text, questions prompt for input,
// and unanswered required items are re-prompted until validation passes.
package tui

import (
	"context"
	"fmt"

	"github.com/goliatone/go-dynamicform/pkg/answers"
	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
	"github.com/goliatone/go-dynamicform/pkg/validate"
)

// Option configures a Filler.
type Option func(*Filler)

// WithDriver swaps the prompt driver, mainly for tests.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// WithCatalog replaces the UI message catalog.
func WithCatalog(catalog *i18n.Catalog) Option {
	return func(f *Filler) {
		if catalog != nil {
			f.catalog = catalog
		}
	}
}

// Filler walks a schema item by item, collecting answers into a store.
type Filler struct {
	driver   PromptDriver
	catalog  *i18n.Catalog
	language string
	fallback string
}

// New constructs a filler for the given display language.
func New(language string, options ...Option) *Filler {
	f := &Filler{
		driver:   NewSurveyDriver(),
		catalog:  i18n.Default(),
		language: language,
		fallback: i18n.DefaultLanguage,
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill prompts through every schema item, then validates and re-prompts
// the items that are still unanswered until the answer set passes.
func (f *Filler) Fill(ctx context.Context, schema *form.Schema, store *answers.Store) error {
	if schema == nil || store == nil {
		return fmt.Errorf("tui: schema and store are required")
	}

	for _, item := range schema.Items() {
		if err := f.promptItem(ctx, item, store); err != nil {
			return err
		}
	}

	for {
		result := validate.Validate(schema, store.Snapshot(), f.language, f.catalog)
		if result.Valid {
			return nil
		}
		if err := f.driver.Info(ctx, f.catalog.Message(f.language, i18n.MsgPleaseAnswerAll)); err != nil {
			return err
		}
		for _, item := range schema.Items() {
			if _, flagged := result.Errors[item.ItemID()]; !flagged {
				continue
			}
			if err := f.promptItem(ctx, item, store); err != nil {
				return err
			}
		}
	}
}

func (f *Filler) promptItem(ctx context.Context, item form.Item, store *answers.Store) error {
	switch typed := item.(type) {
	case form.Title:
		return f.driver.Info(ctx, f.resolve(typed.Content))
	case form.Paragraph:
		return f.driver.Info(ctx, f.resolve(typed.Content))
	case form.TextQuestion:
		current, _ := store.Answer(typed.ID)
		value, err := f.driver.Input(ctx, InputConfig{
			Message:     f.resolve(typed.Question),
			Default:     current,
			Placeholder: f.resolve(typed.Placeholder),
		})
		if err != nil {
			return err
		}
		store.SetAnswer(typed.ID, value)
		return nil
	case form.ChoiceQuestion:
		labels := make([]string, 0, len(typed.Options))
		defaultIndex := -1
		current, _ := store.Answer(typed.ID)
		for i, option := range typed.Options {
			labels = append(labels, f.resolve(option.Text))
			if option.ID == current {
				defaultIndex = i
			}
		}
		index, err := f.driver.Select(ctx, SelectConfig{
			Message:      f.resolve(typed.Question),
			Options:      labels,
			DefaultIndex: defaultIndex,
		})
		if err != nil {
			return err
		}
		if index < 0 || index >= len(typed.Options) {
			return fmt.Errorf("tui: selection index %d out of range", index)
		}
		store.SetAnswer(typed.ID, typed.Options[index].ID)
		return nil
	default:
		return fmt.Errorf("tui: unsupported item %T", item)
	}
}

func (f *Filler) resolve(text i18n.Text) string {
	return i18n.Resolve(text, f.language, f.fallback)
}
