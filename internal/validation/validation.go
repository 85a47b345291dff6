// Package validation holds per-entity input rules. Rules are applied in
// order (presence, format, length, enumeration) and the first violation
// determines the single error returned.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Field pairs a display name with a raw input value.
type Field struct {
	Name  string
	Value string
}

// Required rejects the first field whose value is empty after trimming.
func Required(fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return fmt.Errorf("%s is required", f.Name)
		}
	}
	return nil
}

// ValidateEmail checks the local@domain.tld shape.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return fmt.Errorf("Please provide a valid email address")
	}
	return nil
}

// MinLength rejects values shorter than min after trimming. Empty values
// pass; pair with Required when the field is mandatory.
func MinLength(name, value string, min int) error {
	v := strings.TrimSpace(value)
	if v != "" && len(v) < min {
		return fmt.Errorf("%s must be at least %d characters", name, min)
	}
	return nil
}

// OneOf rejects values outside the allowed set. Empty values pass.
func OneOf(name, value string, allowed []string) error {
	if value == "" {
		return nil
	}
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s must be: %s", name, joinOr(allowed))
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// joinOr renders ["a","b","c"] as "a, b, or c".
func joinOr(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	case 2:
		return values[0] + " or " + values[1]
	default:
		return strings.Join(values[:len(values)-1], ", ") + ", or " + values[len(values)-1]
	}
}
