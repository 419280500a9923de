package utils

import (
	"errors"
	"html"
	"regexp"
	"strings"
	"unicode"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nonPhoneRegex = regexp.MustCompile(`[^\d+]`)
	scriptRegex   = regexp.MustCompile(`<script[^>]*>.*?</script>`)
)

func SanitizeInput(input string) string {
	// Trim spaces
	input = strings.TrimSpace(input)

	// HTML escape
	input = html.EscapeString(input)

	// Remove control characters
	input = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, input)

	// Remove any potential script tags
	input = scriptRegex.ReplaceAllString(input, "")

	return input
}

// SanitizeEmail sanitizes and validates an email address
func SanitizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	email = strings.ToLower(email)

	if !emailRegex.MatchString(email) {
		return "", errors.New("invalid email format")
	}

	return email, nil
}

// SanitizePhone normalizes a phone number to dialing-code-qualified form.
func SanitizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", nil
	}

	// Remove all non-numeric characters except +
	phone = nonPhoneRegex.ReplaceAllString(phone, "")

	// Ensure phone number starts with +
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}

	// Basic validation for international phone number
	if len(phone) < 8 || len(phone) > 16 {
		return "", errors.New("invalid phone number length")
	}

	return phone, nil
}

// SanitizeStringArray sanitizes every element and drops entries that end up
// empty.
func SanitizeStringArray(inputs []string) []string {
	out := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if s := SanitizeInput(input); s != "" {
			out = append(out, s)
		}
	}
	return out
}
