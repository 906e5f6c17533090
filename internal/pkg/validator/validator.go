package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate returns the failed fields of v as field name -> failed tag,
// nil when everything passes.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = fe.Tag()
	}
	return fields
}

// Failed reports whether the given field failed with the given tag.
func Failed(fields map[string]string, field, tag string) bool {
	return fields[field] == tag
}
