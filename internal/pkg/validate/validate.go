package validate

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FieldError is one failed rule on one input field. The messages carried
// here are user-facing and surface verbatim in the error response body.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(parts, "; ")
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Collector accumulates field errors across an input struct so every
// broken field is reported in a single pass, not just the first one.
type Collector struct {
	errs Errors
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(field, rule, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Rule: rule, Message: message})
}

// Errors returns nil when everything passed, so callers can do
// `if err := col.Errors(); err != nil`.
func (c *Collector) Errors() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func (c *Collector) Required(field, value, message string) bool {
	if strings.TrimSpace(value) == "" {
		c.Add(field, "required", message)
		return false
	}
	return true
}

func (c *Collector) MinLength(field, value string, min int, tooShort string) {
	if utf8.RuneCountInString(value) < min {
		c.Add(field, "minLength", tooShort)
	}
}

func (c *Collector) LengthBetween(field, value string, min, max int, tooShort, tooLong string) {
	n := utf8.RuneCountInString(value)
	if n < min {
		c.Add(field, "minLength", tooShort)
		return
	}
	if n > max {
		c.Add(field, "maxLength", tooLong)
	}
}

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func (c *Collector) Email(field, value, message string) {
	if !emailRe.MatchString(value) {
		c.Add(field, "email", message)
	}
}

// phoneRe accepts an optional leading + followed by 7 to 15 digits,
// with spaces, dashes and dots tolerated between digit groups.
var phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 .\-]{5,18}[0-9]$`)

func (c *Collector) Phone(field, value, message string) {
	if !phoneRe.MatchString(value) {
		c.Add(field, "phone", message)
		return
	}
	digits := 0
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 7 || digits > 15 {
		c.Add(field, "phone", message)
	}
}

func (c *Collector) OneOf(field, value string, allowed []string, message string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	c.Add(field, "enum", message)
}
