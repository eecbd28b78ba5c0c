package form

import "fmt"

// Schema is the ordered questionnaire an application renders and validates
// against. It is immutable between Load calls: items are never edited in
// place, every mutation is a wholesale replacement (reset-to-default and
// import-from-JSON share the same path).
type Schema struct {
	items []Item
}

// New returns an empty schema.
func New() *Schema {
	return &Schema{}
}

// Load replaces the schema contents. Item ids must be unique across the
// whole schema; they are the join key into answer sets and validation
// error maps, so a collision is rejected up front instead of silently
// merging answers. On error the previous contents are kept.
func (s *Schema) Load(items []Item) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		id := item.ItemID()
		if _, dup := seen[id]; dup {
			return fmt.Errorf("form: duplicate item id %q at index %d", id, i)
		}
		seen[id] = struct{}{}
	}
	s.items = append([]Item(nil), items...)
	return nil
}

// Items returns the items in schema order. The returned slice is a copy;
// the items themselves are shared values.
func (s *Schema) Items() []Item {
	if s == nil || len(s.items) == 0 {
		return nil
	}
	return append([]Item(nil), s.items...)
}

// Len reports the number of items.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// FindByID looks an item up by its id.
func (s *Schema) FindByID(id string) (Item, bool) {
	if s == nil {
		return nil, false
	}
	for _, item := range s.items {
		if item.ItemID() == id {
			return item, true
		}
	}
	return nil, false
}

// FindOption resolves a selected option id back into its option, so a
// recorded choice answer can be displayed. Items without options never
// match.
func FindOption(item Item, optionID string) (Option, bool) {
	choice, ok := item.(ChoiceQuestion)
	if !ok {
		return Option{}, false
	}
	for _, option := range choice.Options {
		if option.ID == optionID {
			return option, true
		}
	}
	return Option{}, false
}

// MarshalJSON serializes the schema through the wire codec.
func (s *Schema) MarshalJSON() ([]byte, error) {
	return MarshalItems(s.items)
}
