// Package naming holds the identifier transforms shared by every generated
// artifact: human-readable labels for dialog fields and component titles, and
// the underscore-delimited property names AEM persists.
package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TitleCase upper-cases the first character of identifier and inserts a space
// before every later upper-case letter, e.g. "myButton" becomes "My Button".
// Acronyms are split letter by letter ("URLField" becomes "U R L Field").
func TitleCase(identifier string) string {
	if identifier == "" {
		return ""
	}
	first, size := utf8.DecodeRuneInString(identifier)
	return SplitCamel(string(unicode.ToUpper(first)) + identifier[size:])
}

// SplitCamel inserts a space before every upper-case rune except the first.
// Existing separators are left untouched.
func SplitCamel(input string) string {
	var out strings.Builder
	out.Grow(len(input) + 4)
	for i, r := range input {
		if i > 0 && unicode.IsUpper(r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

// FieldName converts an attribute name into the property name used for JCR
// fields and HTL bindings by replacing every hyphen with an underscore.
func FieldName(attributeName string) string {
	return strings.ReplaceAll(attributeName, "-", "_")
}
