// Package report renders a checked submission as the chat reply
package report

import (
	"strconv"
	"strings"

	"codecheck/internal/core/codes"
	"codecheck/internal/core/dupes"
)

// Fixed replies
const (
	StartText = "Send me a list of codes.\n\n" +
		"I will:\n" +
		"• Show invalid codes with original numbers\n" +
		"• Show duplicate codes with original numbers\n" +
		"• Show codes you already sent today\n" +
		"• Give final unique valid codes\n\n" +
		"Send /reset to forget today's codes."

	ResetText = "🧹 Today's codes have been cleared."

	TooLongText = "⚠️ Your input is too long.\n\n" +
		"Telegram allows a maximum of 4096 characters.\n"
)

// Section headers and all-clear markers
const (
	InvalidHeader   = "❌ Invalid codes:"
	NoInvalid       = "✅ No invalid code"
	DuplicateHeader = "🎨 Duplicate check:"
	NoDuplicate     = "✅ No duplicate code"
	TodayHeader     = "📅 Already submitted today:"
	NoTodayDupe     = "✅ No duplicate code for today"
)

// Report is everything the reply needs
type Report struct {
	Invalid []codes.Entry
	Groups  []dupes.Group
	Cross   []string
	Fresh   []string
}

// Options tune rendering for the outbound channel
type Options struct {
	// Escape makes user supplied text safe for the reply parse mode, nil leaves it as is
	Escape func(string) string
}

// Render builds the four section reply
func Render(r Report, opt Options) string {
	esc := opt.Escape
	if esc == nil {
		esc = func(s string) string { return s }
	}

	var b strings.Builder

	b.WriteString(InvalidHeader + "\n")
	if len(r.Invalid) > 0 {
		for _, e := range r.Invalid {
			writeEntry(&b, e, esc(e.Code), "")
		}
	} else {
		b.WriteString(NoInvalid + "\n")
	}

	b.WriteString("\n" + DuplicateHeader + "\n")
	if len(r.Groups) > 0 {
		// valid codes never need escaping
		for _, g := range r.Groups {
			for _, e := range g.Occurrences {
				writeEntry(&b, e, e.Code, g.Marker)
			}
			b.WriteString("\n")
		}
	} else {
		b.WriteString(NoDuplicate + "\n\n")
	}

	b.WriteString(TodayHeader + "\n")
	if len(r.Cross) > 0 {
		for _, code := range r.Cross {
			b.WriteString(code + "\n")
		}
	} else {
		b.WriteString(NoTodayDupe + "\n")
	}

	b.WriteString("\n✅ New unique codes today: " + strconv.Itoa(len(r.Fresh)) + "\n\n")
	b.WriteString("```text\n" + strings.Join(r.Fresh, "\n") + "\n```")

	return b.String()
}

func writeEntry(b *strings.Builder, e codes.Entry, code, marker string) {
	b.WriteString(strconv.Itoa(e.Index))
	b.WriteString(". ")
	b.WriteString(code)
	if marker != "" {
		b.WriteString(" " + marker)
	}
	b.WriteString("\n")
}
