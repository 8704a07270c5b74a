package logger

import (
	"strings"
	"unicode/utf8"
)

// MaskEmail keeps the first character of the local part.
// Example: ada.lovelace@example.com -> a***@example.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***@***"
	}
	if local == "" {
		return "***@" + domain
	}

	first, _ := utf8.DecodeRuneInString(local)
	return string(first) + "***@" + domain
}

// MaskName keeps the first name and the initial of the last name.
// Example: Ada Lovelace -> Ada L.
func MaskName(firstName, lastName string) string {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		return firstName
	}

	initial, _ := utf8.DecodeRuneInString(lastName)
	return firstName + " " + string(initial) + "."
}
