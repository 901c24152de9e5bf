package form

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jafarshop/storefront/internal/domain"
)

// Errors maps field names to human-readable validation messages.
// An empty map means the values passed.
type Errors map[string]string

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\(\d{3}\) \d{3}-\d{4}$`)
)

// ValidatePersonalInfo checks the first step's fields. Phone and age
// are optional but must be well-formed when present.
func ValidatePersonalInfo(values domain.PersonalInfo) Errors {
	errors := Errors{}

	name := strings.TrimSpace(values.Name)
	if name == "" {
		errors["name"] = "Name is required"
	} else if utf8.RuneCountInString(name) < 2 {
		errors["name"] = "Name must be at least 2 characters"
	}

	if strings.TrimSpace(values.Email) == "" {
		errors["email"] = "Email is required"
	} else if !emailPattern.MatchString(values.Email) {
		errors["email"] = "Please enter a valid email address"
	}

	if values.Phone != "" && !phonePattern.MatchString(values.Phone) {
		errors["phone"] = "Phone must be in format (###) ###-####"
	}

	if values.Age != "" {
		age, err := strconv.Atoi(values.Age)
		if err != nil {
			errors["age"] = "Age must be a number"
		} else if age < 13 || age > 120 {
			errors["age"] = "Age must be between 13 and 120"
		}
	}

	return errors
}

// ValidateFeedback checks the second step's fields
func ValidateFeedback(values domain.FeedbackData) Errors {
	errors := Errors{}

	if values.Category == "" {
		errors["category"] = "Please select a category"
	}

	if values.Rating < 1 {
		errors["rating"] = "Please provide a rating"
	}

	message := strings.TrimSpace(values.Message)
	if message == "" {
		errors["message"] = "Message is required"
	} else if utf8.RuneCountInString(message) < 10 {
		errors["message"] = "Message must be at least 10 characters"
	} else if utf8.RuneCountInString(values.Message) > 500 {
		errors["message"] = "Message must not exceed 500 characters"
	}

	return errors
}

// Validator runs a validation rule set and gates error visibility on
// touched fields: an error is only reported for a field the user has
// interacted with, or after the whole step has been validated.
type Validator struct {
	rules   func() Errors
	fields  []string
	errors  Errors
	touched map[string]struct{}
}

// NewValidator creates a validator around a rule set closure. The
// field names are the step's full field set; a whole-step Validate
// marks all of them touched, not just the ones currently in error.
func NewValidator(rules func() Errors, fields ...string) *Validator {
	return &Validator{
		rules:   rules,
		fields:  fields,
		errors:  Errors{},
		touched: make(map[string]struct{}),
	}
}

// Validate runs the rules over the current values, marks every field
// of the step touched, and reports whether validation passed. This is
// the whole-step gate used when advancing the wizard.
func (v *Validator) Validate() bool {
	v.errors = v.rules()
	for _, field := range v.fields {
		v.touched[field] = struct{}{}
	}
	for field := range v.errors {
		v.touched[field] = struct{}{}
	}
	return len(v.errors) == 0
}

// Touch marks a single field as interacted with (a blur) and
// revalidates so its error becomes visible immediately.
func (v *Validator) Touch(field string) {
	v.touched[field] = struct{}{}
	v.errors = v.rules()
}

// FieldError returns the field's message only once the field has been
// touched; untouched fields never surface errors.
func (v *Validator) FieldError(field string) (string, bool) {
	if _, ok := v.touched[field]; !ok {
		return "", false
	}
	msg, ok := v.errors[field]
	return msg, ok
}

// Errors returns the full field→message mapping from the last run
func (v *Validator) Errors() Errors {
	return v.errors
}

// Reset clears errors and touched state
func (v *Validator) Reset() {
	v.errors = Errors{}
	v.touched = make(map[string]struct{})
}
