package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
)

var validate = validator.New()

type FieldErrors map[string]string

// Check runs the struct tags on a payload and converts failures into a
// field->message map wrapped in an invalid AppError. The client only checks
// required-field presence; everything richer is the backend's job.
func Check(payload any) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	out := FieldErrors{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			out[strings.ToLower(fe.StructField())] = messageForTag(fe.Tag(), fe.Param())
		}
	} else {
		out["_"] = "Invalid form data."
	}

	return apperr.InvalidErr("Please fill all required fields.", out)
}

func messageForTag(tag, param string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email."
	case "gte":
		return "Must be at least " + param + "."
	case "min":
		return "Must be at least " + param + " characters."
	case "max":
		return "Must be at most " + param + " characters."
	default:
		return "Invalid value."
	}
}
