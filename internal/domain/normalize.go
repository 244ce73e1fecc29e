package domain

import "strings"

// NormalizeEmail trims surrounding whitespace and lowercases the address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizeDisplayName trims the name and compresses inner runs of whitespace.
// An empty result falls back to DefaultDisplayName.
func NormalizeDisplayName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return DefaultDisplayName
	}
	return name
}
