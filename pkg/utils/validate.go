package utils

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// maxLocaleCodeLength follows the RFC 5646 recommendation for tag length.
const maxLocaleCodeLength = 35

var localeCodePattern = regexp.MustCompile(`^[A-Za-z]{1,8}([_-][A-Za-z0-9]{1,8})*(@[A-Za-z0-9]+)?$`)

// ValidateLocaleCode checks that code can name a locale directory: en, de_DE, sr_RS@latin.
func ValidateLocaleCode(code string) error {
	if code == "" {
		return fmt.Errorf("error.locale_required")
	}

	if len(code) > maxLocaleCodeLength {
		return fmt.Errorf("error.locale_too_long")
	}

	if ContainsWhitespace(code) {
		return fmt.Errorf("error.locale_cannot_contain_spaces")
	}

	if !localeCodePattern.MatchString(code) {
		return fmt.Errorf("error.locale_invalid")
	}

	return nil
}

func ContainsWhitespace(s string) bool {
	for _, r := range s {
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// ValidationMessage returns the `msg` tag of the first field of obj that failed
// validation, or fallback when err is not a validation error or no tag is set.
func ValidationMessage(err error, obj any, fallback string) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return fallback
	}

	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return fallback
	}

	for _, e := range validationErrs {
		field, ok := t.FieldByName(e.StructField())
		if !ok {
			continue
		}
		if msg := field.Tag.Get("msg"); msg != "" {
			return msg
		}
	}
	return fallback
}
