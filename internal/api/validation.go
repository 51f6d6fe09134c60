package api

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/vendify/vendify-api/internal/api/shared"
)

// validate is the shared validator instance for request payloads.
// Field names in reported issues come from the json tags so clients see
// the wire names, not the Go ones.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// payloadIssues translates a validation error into the per-field issue
// list of the error envelope.
func payloadIssues(err error) []shared.FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []shared.FieldIssue{{Path: "", Message: "payload inválido"}}
	}

	issues := make([]shared.FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, shared.FieldIssue{
			Path:    fe.Field(),
			Message: issueMessage(fe),
		})
	}
	return issues
}

// issueMessage maps a failed validation tag to the Portuguese message of
// the wire format.
func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "é obrigatório"
	case "email":
		return "email inválido"
	case "oneof":
		return "valor inválido"
	case "uuid":
		return "uuid inválido"
	case "gte", "min":
		if fe.Kind() == reflect.String {
			return "muito curto"
		}
		return "não pode ser negativo"
	default:
		return "inválido"
	}
}
