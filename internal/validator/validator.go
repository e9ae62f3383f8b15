package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired        = "is required"
	ErrInvalidEmail    = "must be a valid email address"
	ErrMinLength       = "must be at least %s characters long"
	ErrMaxLength       = "must be at most %s characters long"
	ErrMinValue        = "must be at least %s"
	ErrMaxValue        = "must be at most %s"
	ErrAlphanumeric    = "must contain only letters and digits"
	ErrOneOf           = "must be one of: %s"
	ErrInvalidPassword = "must be at least 8 characters long and include at least one uppercase letter, one lowercase letter, " +
		"one number, and one special character (!@#$%^&*)."
	ErrDefaultInvalid = "is invalid"
)

var hasSpecialRgx = regexp.MustCompile(`[!@#$%^&*]`)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("password", validatePassword)

	return validator
}

// jsonFieldName reports fields by their JSON name so messages match the
// request body the client sent.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return fld.Name
	}

	return name
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	if len(password) < 8 || len(password) > 25 {
		return false
	}

	containsUpper, containsLower, containsDigit, containsSpecial := false, false, false, false

	for _, ch := range password {
		switch {
		case unicode.IsUpper(ch):
			containsUpper = true
		case unicode.IsLower(ch):
			containsLower = true
		case unicode.IsDigit(ch):
			containsDigit = true
		case hasSpecialRgx.MatchString(string(ch)):
			containsSpecial = true
		}
	}

	return containsUpper && containsLower && containsDigit && containsSpecial
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrInvalidEmail
	case "min":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMinLength, err.Param())
		}
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "max":
		if err.Kind() == reflect.String {
			return fmt.Sprintf(ErrMaxLength, err.Param())
		}
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "alphanum":
		return ErrAlphanumeric
	case "oneof":
		return fmt.Sprintf(ErrOneOf, err.Param())
	case "password":
		return ErrInvalidPassword
	default:
		return ErrDefaultInvalid
	}
}
