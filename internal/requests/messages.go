package requests

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// fieldMessages maps "field.tag" to the message shown to the client.
// Unlisted combinations fall back to a generic message for the field.
var fieldMessages = map[string]string{
	"name.required":        "Der Name ist ein Pflichtfeld.",
	"email.required":       "Die Email ist ein Pflichtfeld.",
	"email.email":          "Die Email muss gültig sein.",
	"rating.required":      "Die Bewertung ist ein Pflichtfeld.",
	"rating.gte":           "Die Bewertung muss zwischen 1 und 5 liegen.",
	"rating.lte":           "Die Bewertung muss zwischen 1 und 5 liegen.",
	"status.required":      "Der Status ist ein Pflichtfeld.",
	"status.oneof":         "Der Status ist ungültig.",
	"type.required":        "Der Typ ist ein Pflichtfeld.",
	"type.oneof":           "Der Typ muss \"income\" oder \"expense\" sein.",
	"amount.required":      "Der Betrag ist ein Pflichtfeld.",
	"amount.gte":           "Der Betrag darf nicht negativ sein.",
	"category_id.required": "Die Kategorie-ID ist ein Pflichtfeld.",
	"created_at.required":  "Das Erstellungsdatum ist ein Pflichtfeld.",
	"password.required":    "Das Passwort ist ein Pflichtfeld.",
	"text.required":        "Der Text ist ein Pflichtfeld.",
	"text.max":             "Der Text darf höchstens 280 Zeichen lang sein.",
}

// CategoryMissingMessage is added under category_id when a create references
// a category that does not exist.
const CategoryMissingMessage = "Die angegebene Kategorie existiert nicht."

// EmailTakenMessage is added under email when a profile update collides with
// another account's address.
const EmailTakenMessage = "Die E-Mail-Adresse wird bereits verwendet."

// InvalidDateMessage is added when created_at fails every accepted layout.
const InvalidDateMessage = "Das Erstellungsdatum muss ein gültiges Datum sein."

// Translate converts a binding error into the per-field error map. Every
// violated field is reported, not just the first. Malformed JSON and type
// mismatches that never reach validation land in the "general" bucket.
func Translate(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["general"] = []string{"Die Anfrage konnte nicht verarbeitet werden."}
		return out
	}

	for _, fe := range verrs {
		field := fe.Field()
		msg, ok := fieldMessages[field+"."+fe.Tag()]
		if !ok {
			msg = "Das Feld " + field + " ist ungültig."
		}
		out[field] = append(out[field], msg)
	}

	return out
}
