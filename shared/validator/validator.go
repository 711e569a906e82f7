package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"roomops/shared/failure"
	"strings"

	val "github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var validate *val.Validate

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	// messages name fields the way clients send them
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})

	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// Validate decodes a JSON body into data and checks its validate tags.
// An empty body is reported as such rather than as a decode failure.
func Validate[T any](r io.Reader, data *T) error {
	err := json.NewDecoder(r).Decode(data)

	switch {
	case errors.Is(err, io.EOF):
		return failure.BadRequestFromString("request body is required") //nolint:wrapcheck
	case err != nil:
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	if err := validate.Struct(data); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	if err := validate.Var(field, tag); err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
