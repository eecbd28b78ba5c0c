package i18n

import "strings"

// DefaultLanguage is the fallback language used when a bundle has no entry
// for the active language.
const DefaultLanguage = "en"

// Text is a language-code-keyed bundle of display strings. Bundles are
// loaded as part of a schema and replaced wholesale; they are never edited
// in place.
type Text map[string]string

// Resolve returns the entry for the active language, falling back to the
// fallback language and finally to the empty string. Resolution never
// fails; a missing bundle resolves to "".
func Resolve(text Text, active, fallback string) string {
	if len(text) == 0 {
		return ""
	}
	if value, ok := text[active]; ok && value != "" {
		return value
	}
	if value, ok := text[fallback]; ok {
		return value
	}
	return ""
}

// Languages returns the language codes present in a bundle, in no
// particular order.
func Languages(text Text) []string {
	if len(text) == 0 {
		return nil
	}
	codes := make([]string, 0, len(text))
	for code := range text {
		codes = append(codes, code)
	}
	return codes
}

// Normalize lowercases and trims a language code ("EN " -> "en").
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}
