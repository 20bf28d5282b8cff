// Package codes splits a raw submission into tokens and classifies each one
// Pipeline order
// 1 split on whitespace runs
// 2 strip an optional ordinal prefix like "3." "12)" or "7-"
// 3 trim and drop tokens that end up empty, the rest are numbered from 1
// 4 classify as valid (18 ASCII letters or digits) or invalid
package codes

import (
	"regexp"
	"strings"
)

// Length is the exact size of a valid code
const Length = 18

var (
	ordinalPrefix = regexp.MustCompile(`^\s*\d+[.)\-]\s*`)
	codeShape     = regexp.MustCompile(`^[A-Za-z0-9]{18}$`)
)

// Entry is one normalized token and its position in the submission
type Entry struct {
	Index int    `json:"index"`
	Code  string `json:"code"`
}

// Result partitions all non-empty normalized tokens, both in encounter order
type Result struct {
	Valid   []Entry `json:"valid"`
	Invalid []Entry `json:"invalid"`
}

// Total returns the number of classified tokens
func (r Result) Total() int { return len(r.Valid) + len(r.Invalid) }

// Normalize strips a leading ordinal prefix and surrounding whitespace
func Normalize(token string) string {
	return strings.TrimSpace(ordinalPrefix.ReplaceAllString(token, ""))
}

// IsValid reports whether code has the exact shape of a code
func IsValid(code string) bool {
	return len(code) == Length && codeShape.MatchString(code)
}

// Parse tokenizes text and classifies every token
// a token that is only an ordinal ("1." on its own) labels the next token,
// so it takes no position of its own
func Parse(text string) Result {
	var res Result
	pos := 0
	for _, tok := range strings.Fields(text) {
		code := Normalize(tok)
		if code == "" {
			continue
		}
		pos++
		e := Entry{Index: pos, Code: code}
		if IsValid(code) {
			res.Valid = append(res.Valid, e)
		} else {
			res.Invalid = append(res.Invalid, e)
		}
	}
	return res
}
