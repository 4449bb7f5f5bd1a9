// Package str provides string helpers.
package str

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize upper-cases the first character of s and lower-cases the rest,
// interior capitals included.
//
//	Capitalize("hELLO")       // → "Hello"
//	Capitalize("hello world") // → "Hello world"
func Capitalize(s string) string {
	return CapitalizeIn(language.Und, s)
}

// CapitalizeIn is like [Capitalize] but applies the casing rules of tag,
// e.g. language.Turkish maps "i" to "İ".
func CapitalizeIn(tag language.Tag, s string) string {
	if s == "" {
		return ""
	}
	// Casers carry state and must not be shared between goroutines.
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(tag).String(s[:size]) + cases.Lower(tag).String(s[size:])
}
