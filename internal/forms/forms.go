// Package forms holds the typed state of every form on the site. Each form
// has one setter per field, and a setter clears the error recorded for its
// field. Validate checks the whole form against its validator schema.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a form field (by its json name) to a user-facing message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "invalid form: " + strings.Join(parts, "; ")
}

// AsFieldErrors unwraps err into FieldErrors when it carries them.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var looseEmail = regexp.MustCompile(`^\S+@\S+\.\S+$`)

var eventDateLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

// MichiganCities are the locations offered on the signup form.
var MichiganCities = []string{
	"Detroit",
	"Grand Rapids",
	"Ann Arbor",
	"Lansing",
	"Flint",
	"Dearborn",
	"Troy",
	"Farmington Hills",
	"Warren",
	"Livonia",
	"Sterling Heights",
	"Royal Oak",
	"Southfield",
	"Novi",
	"Other",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("eventdate", func(fl validator.FieldLevel) bool {
		_, err := ParseEventDate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterValidation("michigancity", func(fl validator.FieldLevel) bool {
		return slices.Contains(MichiganCities, fl.Field().String())
	})

	return v
}

// ParseEventDate accepts the datetime-local format with or without seconds,
// and RFC 3339.
func ParseEventDate(value string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised event date %q", value)
}

// check runs the validator over form and translates failures with messages,
// keyed "field.tag".
func check(form any, messages map[string]string) FieldErrors {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"form": err.Error()}
	}

	out := FieldErrors{}
	for _, fe := range verrs {
		field := fe.Field()
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			out[field] = msg
		} else {
			out[field] = field + " is invalid"
		}
	}
	return out
}

// fieldState is shared by every form: the last validation result.
type fieldState struct {
	errs FieldErrors
}

func (s *fieldState) clear(field string) {
	delete(s.errs, field)
}

// Errors returns a copy of the errors from the last Validate call, minus the
// fields edited since.
func (s *fieldState) Errors() FieldErrors {
	out := make(FieldErrors, len(s.errs))
	for k, v := range s.errs {
		out[k] = v
	}
	return out
}

func (s *fieldState) record(errs FieldErrors) error {
	s.errs = errs
	if len(errs) == 0 {
		return nil
	}
	return errs
}
