// Package stringutil provides UTF-8 safe string manipulation utilities.
//
// Go strings cannot be nil, so the empty string stands in for a missing value
// everywhere a helper documents a pass-through for empty input.
package stringutil

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Join concatenates the fmt.Sprint form of each element of seq, in order,
// separated by sep. An empty slice yields "".
func Join[T any](seq []T, sep string) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteString(sep)
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// JoinSeq is Join for an arbitrary iterable. It produces the same output as
// Join for a sequence yielding the same elements in the same order.
func JoinSeq[T any](seq iter.Seq[T], sep string) string {
	var b strings.Builder
	first := true
	for v := range seq {
		if !first {
			b.WriteString(sep)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// TruncateRunes truncates a string to at most maxRunes runes, appending suffix if truncated.
// This is safe for multi-byte UTF-8 characters unlike byte-based slicing.
func TruncateRunes(s string, maxRunes int, suffix string) string {
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	truncateAt := max(maxRunes-utf8.RuneCountInString(suffix), 0)
	return string(runes[:truncateAt]) + suffix
}

// CapitalizeFirst returns s with its first rune upper-cased.
// Empty strings and strings starting with invalid UTF-8 are returned unchanged.
func CapitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// ToTitle upper-cases the first letter of every word. Any rune that is not a
// letter ends a word, so "hello-world" becomes "Hello-World" and "123abc"
// becomes "123Abc". Runes other than word starts are left as they are.
func ToTitle(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case !unicode.IsLetter(r):
			wordStart = true
		case wordStart:
			wordStart = false
			b.WriteRune(unicode.ToUpper(r))
			i += size
			continue
		}
		// Copy the original bytes so invalid UTF-8 survives untouched
		b.WriteString(s[i : i+size])
		i += size
	}
	return b.String()
}

// IsLowerCase reports whether s contains no upper case rune.
// A string without any cased rune, including "", is both lower and upper case.
func IsLowerCase(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsUpper)
}

// IsUpperCase reports whether s contains no lower case rune.
// A string without any cased rune, including "", is both lower and upper case.
func IsUpperCase(s string) bool {
	return !strings.ContainsFunc(s, unicode.IsLower)
}

// IsEmpty reports whether s has zero length. Whitespace is not empty.
func IsEmpty(s string) bool {
	return len(s) == 0
}
