package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// firstName -> First Name, work_email -> Work Email
	s = strings.ReplaceAll(s, "_", " ")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.English)
	return caser.String(b.String())
}

// MapValidationError memetakan error binding gin menjadi AppError dengan
// pesan per-field yang bisa dibaca user.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		humanReadableField := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(humanReadableField)
		default:
			return InvalidField(humanReadableField)
		}
	}

	return ErrValidationFailed
}

// MapValidationErrors mengembalikan seluruh pelanggaran sekaligus sebagai
// map field -> message, bukan hanya error pertama.
func MapValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			field := e.Field()
			switch e.Tag() {
			case "required":
				fieldErrors[field] = formatFieldName(field) + " is required"
			default:
				fieldErrors[field] = formatFieldName(field) + " is invalid"
			}
		}
	}
	return fieldErrors
}
