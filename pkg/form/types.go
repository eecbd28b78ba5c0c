package form

import "github.com/goliatone/go-dynamicform/pkg/i18n"

// Kind discriminates the questionnaire item variants on the wire.
type Kind string

const (
	KindTitle  Kind = "title"
	KindText   Kind = "text"
	KindChoice Kind = "choice"
)

// Item is one schema-defined unit of the questionnaire. The set of
// implementations is closed: Title, Paragraph, TextQuestion and
// ChoiceQuestion. Consumers dispatch with a type switch; the isItem marker
// keeps outside packages from adding variants.
type Item interface {
	ItemID() string
	ItemKind() Kind
	isItem()
}

// Title is a section heading. It carries no answer and is skipped by
// validation.
type Title struct {
	ID      string
	Content i18n.Text
}

func (t Title) ItemID() string { return t.ID }
func (Title) ItemKind() Kind { return KindTitle }
func (Title) isItem() {}

// Paragraph is decorative free text (markdown-flavored in later schema
// revisions). Like Title it is never required. On the wire it shares the
// "text" type with TextQuestion and is told apart by the absence of a
// question bundle.
type Paragraph struct {
	ID      string
	Content i18n.Text
}

func (p Paragraph) ItemID() string { return p.ID }
func (Paragraph) ItemKind() Kind { return KindText }
func (Paragraph) isItem() {}

// TextQuestion collects a free-text answer.
type TextQuestion struct {
	ID          string
	Question    i18n.Text
	Placeholder i18n.Text
}

func (q TextQuestion) ItemID() string { return q.ID }
func (TextQuestion) ItemKind() Kind { return KindText }
func (TextQuestion) isItem() {}

// ChoiceQuestion collects a single selection from an ordered option list.
// The answer recorded for it is the selected option id.
type ChoiceQuestion struct {
	ID       string
	Question i18n.Text
	Options  []Option
}

func (q ChoiceQuestion) ItemID() string { return q.ID }
func (ChoiceQuestion) ItemKind() Kind { return KindChoice }
func (ChoiceQuestion) isItem() {}

// Option is one selectable answer of a ChoiceQuestion. Identity is the id;
// display text resolves through i18n.Resolve.
type Option struct {
	ID   string
	Text i18n.Text
}
