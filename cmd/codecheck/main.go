// Command codecheck reads codes on stdin and prints the report without any daily state
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"codecheck/internal/core/check"
	"codecheck/internal/core/report"
	"codecheck/internal/platform/logger"
	pstrings "codecheck/internal/platform/strings"
)

func main() {
	var (
		fMax  = flag.Int("max", 0, "reject input longer than this many UTF-16 units, as Telegram counts (0 = no limit)")
		fJSON = flag.Bool("json", false, "print the outcome as JSON instead of the chat reply")
	)
	flag.Parse()

	l := logger.Named("codecheck")

	in, err := io.ReadAll(bufio.NewReader(os.Stdin))
	if err != nil {
		l.Fatal().Err(err).Msg("read stdin")
	}

	out, err := run(string(in), *fMax, *fJSON)
	if err != nil {
		l.Fatal().Err(err).Msg("check failed")
	}
	fmt.Println(out)
}

// run is the stateless pipeline, a nil previous day set and no persistence
func run(text string, maxUnits int, asJSON bool) (string, error) {
	text = strings.TrimSpace(text)
	if maxUnits > 0 && pstrings.UTF16Len(text) > maxUnits {
		return report.TooLongText, nil
	}
	o := check.Run(text, nil)
	if asJSON {
		return encode(o)
	}
	return o.Render(report.Options{}), nil
}
