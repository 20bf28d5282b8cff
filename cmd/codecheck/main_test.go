package main

import (
	"encoding/json"
	"strings"
	"testing"

	"codecheck/internal/core/report"
	"codecheck/internal/platform/testkit"
)

const input = "1. AAAAAAAAAAAAAAAAAA BBBBBBBBBBBBBBBBBB AAAAAAAAAAAAAAAAAA short"

func TestRun_Report(t *testing.T) {
	out, err := run("\n"+input+"\n", 0, false)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	testkit.MustContain(t, out, "4. short")
	testkit.MustContain(t, out, "1. AAAAAAAAAAAAAAAAAA 🔴")
	testkit.MustContain(t, out, report.NoTodayDupe)
	testkit.MustContain(t, out, "New unique codes today: 2")
}

func TestRun_TooLong(t *testing.T) {
	for _, in := range []string{strings.Repeat("x", 11), strings.Repeat("🟣", 6)} {
		if out, _ := run(in, 10, false); out != report.TooLongText {
			t.Fatalf("run(%q) = %q, want too long", in, out)
		}
	}
	if out, _ := run(strings.Repeat("🟣", 5), 10, false); out == report.TooLongText {
		t.Fatal("ten units is at the limit and must be parsed")
	}
}

func TestRun_JSON(t *testing.T) {
	out, err := run(input, 0, true)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var v struct {
		Invalid []struct {
			Index int    `json:"index"`
			Code  string `json:"code"`
		} `json:"invalid"`
		Duplicates []struct {
			Marker string `json:"marker"`
		} `json:"duplicates"`
		Unique []string `json:"unique"`
	}
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if len(v.Invalid) != 1 || v.Invalid[0].Index != 4 || len(v.Duplicates) != 1 || len(v.Unique) != 2 {
		t.Fatalf("outcome = %+v", v)
	}

	empty, _ := run("", 0, true)
	testkit.MustContain(t, empty, `"invalid": []`)
}
