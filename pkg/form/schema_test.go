package form_test

import (
	"strings"
	"testing"

	"github.com/goliatone/go-dynamicform/pkg/form"
	"github.com/goliatone/go-dynamicform/pkg/i18n"
)

func TestSchemaLoadRejectsDuplicateIDs(t *testing.T) {
	schema := form.New()
	if err := schema.Load(form.Default()); err != nil {
		t.Fatalf("Load default: %v", err)
	}

	dup := []form.Item{
		form.TextQuestion{ID: "q1", Question: i18n.Text{"en": "one"}},
		form.TextQuestion{ID: "q1", Question: i18n.Text{"en": "two"}},
	}
	err := schema.Load(dup)
	if err == nil {
		t.Fatal("expected duplicate id error")
	}
	if !strings.Contains(err.Error(), `"q1"`) {
		t.Fatalf("error should name the colliding id, got %v", err)
	}

	// Failed load keeps the previous contents.
	if schema.Len() != len(form.Default()) {
		t.Fatalf("schema length changed after failed load: %d", schema.Len())
	}
}

func TestSchemaFindByID(t *testing.T) {
	schema := form.New()
	if err := schema.Load(form.Default()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	item, ok := schema.FindByID("c")
	if !ok {
		t.Fatal("expected to find item c")
	}
	if item.ItemKind() != form.KindChoice {
		t.Fatalf("item c kind = %q, want %q", item.ItemKind(), form.KindChoice)
	}

	if _, ok := schema.FindByID("missing"); ok {
		t.Fatal("did not expect to find missing item")
	}
}

func TestFindOption(t *testing.T) {
	schema := form.New()
	if err := schema.Load(form.Default()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	item, _ := schema.FindByID("c")

	option, ok := form.FindOption(item, "e")
	if !ok {
		t.Fatal("expected to find option e")
	}
	if got := i18n.Resolve(option.Text, "en", "en"); !strings.Contains(got, "free text answers") {
		t.Fatalf("unexpected option text: %q", got)
	}

	if _, ok := form.FindOption(item, "zz"); ok {
		t.Fatal("did not expect to find option zz")
	}

	title, _ := schema.FindByID("a")
	if _, ok := form.FindOption(title, "e"); ok {
		t.Fatal("title items carry no options")
	}
}

func TestSchemaItemsIsCopy(t *testing.T) {
	schema := form.New()
	if err := schema.Load(form.Default()); err != nil {
		t.Fatalf("Load: %v", err)
	}

	items := schema.Items()
	items[0] = form.Title{ID: "mutated"}

	if _, ok := schema.FindByID("mutated"); ok {
		t.Fatal("mutating the returned slice must not affect the schema")
	}
}
