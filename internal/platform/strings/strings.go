// Package strings has the small string and slice helpers module wiring leans on
package strings

import (
	std "strings"
	"unicode/utf16"
)

// IfEmpty is in unless it has no elements, then def
func IfEmpty[T any](in, def []T) []T {
	if len(in) > 0 {
		return in
	}
	return def
}

// MustString panics with "<name> is required" when s is blank
func MustString(s, name string) string {
	if std.TrimSpace(s) != "" {
		return s
	}
	panic(name + " is required")
}

// MustPrefix turns " meta/ " into "/meta" and panics on an empty or root path
func MustPrefix(s string) string {
	p := std.Trim(std.TrimSpace(s), " /")
	if p == "" {
		panic("root path is required")
	}
	return "/" + p
}

// UTF16Len is the length of s in UTF-16 code units, the unit Telegram counts message limits in
func UTF16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
			continue
		}
		n++
	}
	return n
}
