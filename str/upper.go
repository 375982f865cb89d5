// Package str provides string helpers modelled on lodash's "String"
// functions.
package str

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// UpperFirst converts the first character of s to upper case, leaving the
// rest of s untouched. Full Unicode case mapping is used, so the first
// character may expand ("ß" → "SS"). Characters without an upper-case form,
// and invalid UTF-8, are left as they are.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(s[:size]) + s[size:]
}
