package validator

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Weekdays lists the accepted training days in display form.
var Weekdays = []string{"LUNES", "MARTES", "MIÉRCOLES", "JUEVES", "VIERNES", "SÁBADO", "DOMINGO"}

var foldedWeekdays = func() []string {
	folded := make([]string, len(Weekdays))
	for i, d := range Weekdays {
		folded[i] = FoldAccents(d)
	}
	return folded
}()

// Upper upper-cases s using Spanish casing rules.
func Upper(s string) string {
	return cases.Upper(language.Spanish).String(s)
}

// FoldAccents strips combining marks from s and upper-cases the result,
// so "Miércoles" and "MIERCOLES" compare equal.
func FoldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	return Upper(folded)
}

// IsWeekday reports whether s names a day of the week, ignoring accents and case.
func IsWeekday(s string) bool {
	return In(FoldAccents(strings.TrimSpace(s)), foldedWeekdays...)
}

// Length returns the number of characters in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// LettersOnly reports whether s is non-empty and made of letters and whitespace.
func LettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// HasDigit reports whether any character of s is a decimal digit.
func HasDigit(s string) bool {
	return strings.IndexFunc(s, unicode.IsDigit) >= 0
}

// ValidClock reports whether s is an HH:MM time between 00:00 and 23:59.
func ValidClock(s string) bool {
	if Length(s) != 5 || !Matches(s, TimeRX) {
		return false
	}
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return Between(hours, 0, 23) && Between(minutes, 0, 59)
}
