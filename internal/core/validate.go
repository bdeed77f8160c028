package core

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var tagCodes = map[string]string{
	"required": "required",
	"number":   "only_digits_allowed",
}

// ValidateContact returns field -> code for every broken rule, or nil.
func ValidateContact(c Contact) map[string]string {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_error": "validation_failed"}
	}
	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		code, ok := tagCodes[e.Tag()]
		if !ok {
			code = "invalid"
		}
		out[e.Field()] = code
	}
	return out
}
