package i18n

// Message keys understood by the default catalog. Callers can extend a
// catalog with their own keys; these are the ones the session and
// renderers rely on.
const (
	MsgAnswerRequired  = "answerRequired"
	MsgPleaseAnswerAll = "pleaseAnswerAll"
	MsgSaved           = "savedSuccessfully"
	MsgLoaded          = "loadedSuccessfully"
	MsgNoSavedAnswers  = "noSavedAnswers"
	MsgErrorSaving     = "errorSaving"
	MsgErrorLoading    = "errorLoading"
	MsgQuestionsReset  = "questionsReset"
	MsgAnswersCleared  = "answersCleared"
	MsgSaveAnswers     = "saveAnswers"
	MsgLoadAnswers     = "loadAnswers"
	MsgSaveQuestions   = "saveQuestions"
	MsgLoadQuestions   = "loadQuestions"
	MsgFormatJSON      = "formatJson"
	MsgResetAllData    = "resetAllData"
	MsgRequiredMark    = "required"
	MsgLanguage        = "language"
)

// Catalog holds localized UI messages keyed by message id. Lookups follow
// the same fallback chain as Resolve.
type Catalog struct {
	fallback string
	messages map[string]Text
}

// NewCatalog builds a catalog from a message table. A nil table yields an
// empty catalog that resolves every key to "".
func NewCatalog(messages map[string]Text) *Catalog {
	c := &Catalog{
		fallback: DefaultLanguage,
		messages: make(map[string]Text, len(messages)),
	}
	for key, text := range messages {
		c.messages[key] = text
	}
	return c
}

// Message resolves a message key for the given language.
func (c *Catalog) Message(lang, key string) string {
	if c == nil {
		return ""
	}
	return Resolve(c.messages[key], lang, c.fallback)
}

// Has reports whether the catalog carries the given key.
func (c *Catalog) Has(key string) bool {
	if c == nil {
		return false
	}
	_, ok := c.messages[key]
	return ok
}

// Default returns the built-in English/German UI message catalog.
func Default() *Catalog {
	return NewCatalog(map[string]Text{
		MsgAnswerRequired: {
			"en": "This question requires an answer",
			"de": "Diese Frage erfordert eine Antwort",
		},
		MsgPleaseAnswerAll: {
			"en": "Please answer all questions before saving",
			"de": "Bitte beantworte alle Fragen, bevor du speicherst",
		},
		MsgSaved: {
			"en": "saved successfully",
			"de": "erfolgreich gespeichert",
		},
		MsgLoaded: {
			"en": "loaded successfully",
			"de": "erfolgreich geladen",
		},
		MsgNoSavedAnswers: {
			"en": "No saved answers found",
			"de": "Keine gespeicherten Antworten gefunden",
		},
		MsgErrorSaving: {
			"en": "Error saving answers",
			"de": "Fehler beim Speichern der Antworten",
		},
		MsgErrorLoading: {
			"en": "Error loading answers",
			"de": "Fehler beim Laden der Antworten",
		},
		MsgQuestionsReset: {
			"en": "All data reset to default and cleared from storage",
			"de": "Alle Daten auf Standardwerte zurückgesetzt und aus dem Speicher gelöscht",
		},
		MsgAnswersCleared: {
			"en": "Answers have been cleared",
			"de": "Antworten wurden gelöscht",
		},
		MsgSaveAnswers: {
			"en": "Save Answers",
			"de": "Antworten speichern",
		},
		MsgLoadAnswers: {
			"en": "Load Answers",
			"de": "Antworten laden",
		},
		MsgSaveQuestions: {
			"en": "Save Questions",
			"de": "Fragen speichern",
		},
		MsgLoadQuestions: {
			"en": "Load Questions",
			"de": "Fragen laden",
		},
		MsgFormatJSON: {
			"en": "Format JSON",
			"de": "JSON formatieren",
		},
		MsgResetAllData: {
			"en": "Reset All Data",
			"de": "Alle Daten zurücksetzen",
		},
		MsgRequiredMark: {
			"en": "*",
			"de": "*",
		},
		MsgLanguage: {
			"en": "Language",
			"de": "Sprache",
		},
	})
}
