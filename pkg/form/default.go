package form

import "github.com/goliatone/go-dynamicform/pkg/i18n"

// Default returns the built-in demo questionnaire used when storage holds
// no saved questions yet, and as the reset target.
func Default() []Item {
	return []Item{
		Title{
			ID: "a",
			Content: i18n.Text{
				"en": "Welcome to DynamicForm",
				"de": "Willkommen bei DynamicForm",
			},
		},
		Paragraph{
			ID: "b",
			Content: i18n.Text{
				"en": "Please log in so that your answers can be saved. If you do not yet have an account, you can create one during the registration process.",
				"de": "Bitte melden Sie sich an, damit Ihre Antworten gespeichert werden können. Wenn Sie noch kein Konto haben, können Sie sich während des Anmeldevorgangs ein Konto einrichten.",
			},
		},
		ChoiceQuestion{
			ID: "c",
			Question: i18n.Text{
				"en": "DynamicForm supports...",
				"de": "DynamicForm unterstützt ...",
			},
			Options: []Option{
				{
					ID: "d",
					Text: i18n.Text{
						"en": "... questions where the user can choose from a given list of answers",
						"de": "... Fragen, bei denen der Benutzer aus einer vorgegebenen Liste von Antworten auswählen kann",
					},
				},
				{
					ID: "e",
					Text: i18n.Text{
						"en": "... questions with free text answers",
						"de": "... Fragen mit Freitextantworten",
					},
				},
				{
					ID: "f",
					Text: i18n.Text{
						"en": "... section titles as styling elements",
						"de": "... Abschnittstitel als Stilelemente",
					},
				},
				{
					ID: "g",
					Text: i18n.Text{
						"en": "... and free text (with markdown support) as styling elements",
						"de": "... und Freitext (mit Markdown-Unterstützung) als Stilelemente",
					},
				},
			},
		},
		TextQuestion{
			ID: "h",
			Question: i18n.Text{
				"en": "That's it. Have fun!",
				"de": "Das ist alles. Viel Spaß!",
			},
			Placeholder: i18n.Text{
				"en": "No input is expected, but feel free to enter text",
				"de": "Es ist keine Eingabe erforderlich, aber Sie können gerne Text eingeben.",
			},
		},
	}
}
