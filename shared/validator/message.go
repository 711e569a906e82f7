package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

const fallbackField = "value"

var messages = map[string]string{
	"required": "{field} is required",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"oneof":    "{field} must be one of {param}",
	"max":      "{field} must be at most {param}",
	"min":      "{field} must be at least {param}",
	"email":    "{field} must be a valid email address",
	"uuid":     "{field} must be a valid UUID",
	"unique":   "{field} must not contain duplicate {param} entries",
	"notblank": "{field} must not be blank",
}

// message renders the first failed rule of err for the client.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = fallbackField
		}

		return strings.NewReplacer("{field}", field, "{param}", valErr.Param()).Replace(template)
	}

	return valErrors.Error()
}
