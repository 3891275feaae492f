package template

import (
	"sort"
	"strings"
)

// Placeholder is a literal token replaced during substitution.
type Placeholder string

// The recognised placeholder tokens.
const (
	Title      Placeholder = "{title}"
	Group      Placeholder = "{group}"
	Tag        Placeholder = "{tag}"
	Attributes Placeholder = "{attributes}"
	Slot       Placeholder = "{slot}"
	Comment    Placeholder = "{comment}"
	Component  Placeholder = "{component}"
)

var recognised = map[Placeholder]struct{}{
	Title:      {},
	Group:      {},
	Tag:        {},
	Attributes: {},
	Slot:       {},
	Comment:    {},
	Component:  {},
}

// Recognised reports whether p belongs to the fixed placeholder set.
func Recognised(p Placeholder) bool {
	_, ok := recognised[p]
	return ok
}

// Values maps placeholder tokens to their substitution text.
type Values map[Placeholder]string

// Substitute replaces every occurrence of each recognised placeholder present
// in values. Tokens outside the recognised set, and recognised tokens without
// a value, are left untouched. Substitution is a single pass, so replacement
// text is never itself rescanned for tokens.
func Substitute(tpl string, values Values) string {
	if len(values) == 0 {
		return tpl
	}
	keys := make([]Placeholder, 0, len(values))
	for p := range values {
		if Recognised(p) {
			keys = append(keys, p)
		}
	}
	if len(keys) == 0 {
		return tpl
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	pairs := make([]string, 0, len(keys)*2)
	for _, p := range keys {
		pairs = append(pairs, string(p), values[p])
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}
