// Package dupes finds repeated codes inside one submission and across a user's day
//
// Everything here is pure: callers pass the previous day set in and get the
// merged set back, the marker counter travels as a value
package dupes

import "codecheck/internal/core/codes"

// Palette is the fixed, cyclically reused set of group markers
var Palette = [...]string{"🔴", "🟡", "🔵", "🟣", "🟠", "🟤", "⚫"}

// Cursor is the running marker counter
type Cursor int

// Marker returns the palette entry the cursor points at
func (c Cursor) Marker() string { return Palette[int(c)%len(Palette)] }

// Next returns the current marker and the advanced cursor
func (c Cursor) Next() (string, Cursor) { return c.Marker(), c + 1 }

// Counts is a frequency table over valid codes that remembers first-seen order
type Counts struct {
	order []string
	n     map[string]int
}

// Count builds the frequency table for entries
func Count(entries []codes.Entry) Counts {
	c := Counts{n: make(map[string]int, len(entries))}
	for _, e := range entries {
		if c.n[e.Code] == 0 {
			c.order = append(c.order, e.Code)
		}
		c.n[e.Code]++
	}
	return c
}

// Unique returns each code once, in first-seen order
func (c Counts) Unique() []string { return append([]string(nil), c.order...) }

// Of returns how many times code appeared
func (c Counts) Of(code string) int { return c.n[code] }

// Len returns the number of unique codes
func (c Counts) Len() int { return len(c.order) }

// Group is one code that appeared more than once, with every occurrence
type Group struct {
	Code        string        `json:"code"`
	Marker      string        `json:"marker"`
	Occurrences []codes.Entry `json:"occurrences"`
}

// Intra assigns markers to duplicated codes starting at cur and groups their occurrences
// groups follow first-seen order of the unique codes, occurrences follow encounter order
func Intra(valid []codes.Entry, cur Cursor) ([]Group, Cursor) {
	return Count(valid).Groups(valid, cur)
}

// Groups is Intra for a table already counted from valid
func (c Counts) Groups(valid []codes.Entry, cur Cursor) ([]Group, Cursor) {
	var groups []Group
	at := map[string]int{}
	for _, code := range c.order {
		if c.n[code] < 2 {
			continue
		}
		var m string
		m, cur = cur.Next()
		at[code] = len(groups)
		groups = append(groups, Group{Code: code, Marker: m})
	}
	if len(groups) == 0 {
		return nil, cur
	}
	for _, e := range valid {
		if i, ok := at[e.Code]; ok {
			groups[i].Occurrences = append(groups[i].Occurrences, e)
		}
	}
	return groups, cur
}

// Set is an ordered string set, typically a user's codes for the day
type Set struct {
	order []string
	has   map[string]struct{}
}

// NewSet builds a Set from xs, repeated values collapse to the first one
func NewSet(xs []string) Set {
	s := Set{has: make(map[string]struct{}, len(xs))}
	for _, x := range xs {
		s.add(x)
	}
	return s
}

func (s *Set) add(x string) {
	if _, ok := s.has[x]; ok {
		return
	}
	if s.has == nil {
		s.has = map[string]struct{}{}
	}
	s.has[x] = struct{}{}
	s.order = append(s.order, x)
}

// Has reports whether x is in the set
func (s Set) Has(x string) bool {
	_, ok := s.has[x]
	return ok
}

// Len returns the number of members
func (s Set) Len() int { return len(s.order) }

// Slice returns the members in insertion order
func (s Set) Slice() []string { return append([]string(nil), s.order...) }

// Cross splits unique into codes already in prev and codes new for the day
func Cross(unique []string, prev Set) (cross, fresh []string) {
	for _, code := range unique {
		if prev.Has(code) {
			cross = append(cross, code)
		} else {
			fresh = append(fresh, code)
		}
	}
	return cross, fresh
}

// Merge returns prev followed by any fresh code it does not already hold
func Merge(prev Set, fresh []string) []string {
	out := NewSet(prev.order)
	for _, code := range fresh {
		out.add(code)
	}
	return out.Slice()
}
