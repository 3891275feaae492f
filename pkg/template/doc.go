// Package template resolves artifact templates: it reads template text from a
// Store, substitutes the fixed set of placeholder tokens with computed
// fragments, and normalises the result into consistently indented markup.
//
// Substitution is literal token replacement; there is no expression language.
package template
