// Package validate checks untrusted notification submissions before they are
// normalized and persisted. Input is deliberately untyped: payloads arrive as
// arbitrary JSON and every field is narrowed explicitly, so a number where a
// string belongs fails the same way a missing field does.
package validate

import (
	"regexp"
	"strings"
)

// emailPattern is a permissive local@domain.tld shape check, not an
// RFC 5322 parser. It is applied to the raw value before trimming.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Result collects the outcome of validating one submission. Errors keeps
// field declaration order: lastname, firstname, email, subject, details.
type Result struct {
	IsValid bool
	Errors  []string
}

// NotificationInput runs every rule and collects every failure; it never
// short-circuits. A nil map fails all five rules.
func NotificationInput(data map[string]any) Result {
	var errs []string

	for _, field := range [...]string{"lastname", "firstname", "email", "subject", "details"} {
		s, ok := stringField(data, field)
		switch {
		case !ok:
			errs = append(errs, field+" is required and must be a non-empty string")
		case field == "email" && !emailPattern.MatchString(s):
			errs = append(errs, "email must be a valid email address")
		}
	}

	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// stringField narrows data[field] to a string. ok is false when the field is
// absent, not a string, or empty after trimming.
func stringField(data map[string]any, field string) (string, bool) {
	raw, present := data[field]
	if !present {
		return "", false
	}
	s, isString := raw.(string)
	if !isString {
		return "", false
	}
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
