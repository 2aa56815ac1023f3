// Package validator adapts go-playground/validator to echo.
package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format for calendar dates such as date of birth.
const DateLayout = time.DateOnly

// phonePattern is E.164 with the leading plus optional.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Errors are impossible here: the tags are non-empty and the funcs non-nil.
	_ = v.RegisterValidation("past", validatePast)
	_ = v.RegisterValidation("phone", validatePhone)

	return &CustomValidator{validate: v}
}

func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// ParseDate accepts a bare date or a full RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}

	return time.Parse(time.RFC3339, s)
}

// validatePast accepts a time.Time, or a date string, strictly before now.
func validatePast(fl validator.FieldLevel) bool {
	var t time.Time
	switch v := fl.Field().Interface().(type) {
	case time.Time:
		t = v
	case string:
		parsed, err := ParseDate(v)
		if err != nil {
			return false
		}
		t = parsed
	default:
		return false
	}

	return !t.IsZero() && t.Before(time.Now())
}

func validatePhone(fl validator.FieldLevel) bool {
	return phonePattern.MatchString(fl.Field().String())
}
