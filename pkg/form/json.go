package form

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

// Sentinel errors returned by ParseItems. Callers distinguish a payload
// that is not JSON at all from one that parses but is not an array.
var (
	ErrInvalidJSON = errors.New("form: invalid JSON")
	ErrNotArray    = errors.New("form: questions data must be an array")
)

// wireOption flattens language codes beside the option id, matching the
// persisted layout: {"id":"red","en":"Red","de":"Rot"}.
type wireOption struct {
	ID   string
	Text i18n.Text
}

func (o wireOption) MarshalJSON() ([]byte, error) {
	flat := make(map[string]string, len(o.Text)+1)
	for code, value := range o.Text {
		flat[code] = value
	}
	flat["id"] = o.ID
	return json.Marshal(flat)
}

func (o *wireOption) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	o.ID = flat["id"]
	delete(flat, "id")
	if len(flat) > 0 {
		o.Text = i18n.Text(flat)
	} else {
		o.Text = nil
	}
	return nil
}

// wireItem is the persisted item shape shared by every variant. Which
// fields are populated depends on the type discriminator.
type wireItem struct {
	ID          string       `json:"id"`
	Type        Kind         `json:"type"`
	Content     i18n.Text    `json:"content,omitempty"`
	Question    i18n.Text    `json:"question,omitempty"`
	Placeholder i18n.Text    `json:"placeholder,omitempty"`
	Options     []wireOption `json:"options,omitempty"`
}

func itemToWire(item Item) (wireItem, error) {
	switch typed := item.(type) {
	case Title:
		return wireItem{ID: typed.ID, Type: KindTitle, Content: typed.Content}, nil
	case Paragraph:
		return wireItem{ID: typed.ID, Type: KindText, Content: typed.Content}, nil
	case TextQuestion:
		return wireItem{
			ID:          typed.ID,
			Type:        KindText,
			Question:    typed.Question,
			Placeholder: typed.Placeholder,
		}, nil
	case ChoiceQuestion:
		options := make([]wireOption, 0, len(typed.Options))
		for _, option := range typed.Options {
			options = append(options, wireOption{ID: option.ID, Text: option.Text})
		}
		return wireItem{
			ID:       typed.ID,
			Type:     KindChoice,
			Question: typed.Question,
			Options:  options,
		}, nil
	default:
		return wireItem{}, fmt.Errorf("form: unsupported item %T", item)
	}
}

func itemFromWire(wire wireItem) (Item, error) {
	switch wire.Type {
	case KindTitle:
		return Title{ID: wire.ID, Content: wire.Content}, nil
	case KindText:
		// A "text" item without a question bundle is a decorative
		// paragraph, not a question.
		if wire.Question == nil {
			return Paragraph{ID: wire.ID, Content: wire.Content}, nil
		}
		return TextQuestion{
			ID:          wire.ID,
			Question:    wire.Question,
			Placeholder: wire.Placeholder,
		}, nil
	case KindChoice:
		options := make([]Option, 0, len(wire.Options))
		for _, option := range wire.Options {
			options = append(options, Option{ID: option.ID, Text: option.Text})
		}
		return ChoiceQuestion{ID: wire.ID, Question: wire.Question, Options: options}, nil
	default:
		return nil, fmt.Errorf("form: unknown item type %q", wire.Type)
	}
}

// ParseItems decodes a JSON questionnaire payload into typed items. The
// payload must be a JSON array; ErrNotArray is returned when it parses to
// anything else and ErrInvalidJSON when it does not parse at all. Item and
// option order is preserved.
func ParseItems(data []byte) ([]Item, error) {
	var probe any
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, ok := probe.([]any); !ok {
		return nil, ErrNotArray
	}

	var wires []wireItem
	if err := json.Unmarshal(data, &wires); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	items := make([]Item, 0, len(wires))
	for i, wire := range wires {
		item, err := itemFromWire(wire)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}

// MarshalItems serializes items to the persisted wire layout, pretty
// printed with two-space indentation. The exact formatting is cosmetic; the
// guarantee is that the output round-trips through ParseItems.
func MarshalItems(items []Item) ([]byte, error) {
	wires := make([]wireItem, 0, len(items))
	for _, item := range items {
		wire, err := itemToWire(item)
		if err != nil {
			return nil, err
		}
		wires = append(wires, wire)
	}
	return json.MarshalIndent(wires, "", "  ")
}
