package gen

import (
	"unicode"
	"unicode/utf8"
)

// validateName rejects names that would need escaping inside a quoted
// string literal. CLDR names only use letters, digits, '/', '_', '-', '+',
// '.' and spaces.
func validateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Reason: "empty"}
	}

	if !utf8.ValidString(name) {
		return &InvalidNameError{Name: name, Reason: "invalid UTF-8"}
	}

	for _, r := range name {
		switch {
		case r == '"':
			return &InvalidNameError{Name: name, Reason: "contains a double quote"}
		case r == '\\':
			return &InvalidNameError{Name: name, Reason: "contains a backslash"}
		case unicode.IsControl(r):
			return &InvalidNameError{Name: name, Reason: "contains a control character"}
		}
	}

	return nil
}
