package linkml

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// enumSuffix is appended to every derived enum name.
const enumSuffix = "Menu"

// EnumName derives the enum name for a checklist field name: every
// underscore-separated segment is capitalized and the segments are joined
// with the fixed suffix appended. The derivation is pure and total; an
// empty field name yields just the suffix.
//
//	trophic_level -> TrophicLevelMenu
//	ph            -> PhMenu
func EnumName(field string) string {
	parts := strings.Split(field, "_")
	for i, p := range parts {
		parts[i] = capitalize(p)
	}

	return strings.Join(parts, "") + enumSuffix
}

// capitalize title-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}
