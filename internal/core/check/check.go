// Package check runs a submission through parsing, duplicate detection and
// the daily merge in one pass
//
// Run is pure. The stateless report is Run with a nil previous set and the
// merged set ignored
package check

import (
	"codecheck/internal/core/codes"
	"codecheck/internal/core/dupes"
	"codecheck/internal/core/report"
)

// Outcome is the full result of checking one submission
type Outcome struct {
	Parsed codes.Result
	Groups []dupes.Group
	Cursor dupes.Cursor

	// Unique is every distinct valid code in first-seen order
	Unique []string
	Cross  []string
	Fresh  []string

	// Merged is the day set to write back
	Merged []string
}

// Run checks text against prev, the codes the user already sent today
func Run(text string, prev []string) Outcome {
	parsed := codes.Parse(text)

	counts := dupes.Count(parsed.Valid)
	groups, cur := counts.Groups(parsed.Valid, 0)

	day := dupes.NewSet(prev)
	unique := counts.Unique()
	cross, fresh := dupes.Cross(unique, day)

	return Outcome{
		Parsed: parsed,
		Groups: groups,
		Cursor: cur,
		Unique: unique,
		Cross:  cross,
		Fresh:  fresh,
		Merged: dupes.Merge(day, fresh),
	}
}

// Report returns the renderable view of o
func (o Outcome) Report() report.Report {
	return report.Report{
		Invalid: o.Parsed.Invalid,
		Groups:  o.Groups,
		Cross:   o.Cross,
		Fresh:   o.Fresh,
	}
}

// Render is a shortcut for report.Render(o.Report(), opt)
func (o Outcome) Render(opt report.Options) string {
	return report.Render(o.Report(), opt)
}
