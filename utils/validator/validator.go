package validatorx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	gpvalidator "github.com/go-playground/validator/v10"
)

var (
	v    *gpvalidator.Validate
	once sync.Once
)

// Init initializes the validator singleton (idempotent)
func Init() {
	once.Do(build)
}

func build() {
	nv := gpvalidator.New()
	nv.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = nv.RegisterValidation("password", validatePassword)
	v = nv
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	Init()
	return v.Struct(s)
}

// IsStrongPassword reports whether raw has a lowercase letter, an uppercase
// letter and a digit. Length is checked separately by the min tag.
func IsStrongPassword(raw string) bool {
	var lower, upper, digit bool
	for _, r := range raw {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return lower && upper && digit
}

func validatePassword(fl gpvalidator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

// Messages converts a validation error into human readable, field-level messages.
func Messages(err error) []string {
	var verrs gpvalidator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe gpvalidator.FieldError) string {
	label := humanize(fe.Field())
	isString := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "email":
		return label + " must be a valid email address"
	case "password":
		return label + " must contain at least one lowercase letter, one uppercase letter, and one number"
	case "min":
		if isString {
			return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if isString {
			return fmt.Sprintf("%s must be less than %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", label, fe.Param())
	case "url":
		return label + " must be a valid URL"
	default:
		return label + " is invalid"
	}
}

// humanize turns a json field name like "firstName" into "First name".
func humanize(field string) string {
	var b strings.Builder
	for i, r := range field {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
