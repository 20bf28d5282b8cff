package main

import (
	"encoding/json"

	"codecheck/internal/core/check"
	"codecheck/internal/core/codes"
	"codecheck/internal/core/dupes"
	pstrings "codecheck/internal/platform/strings"
)

type outcome struct {
	Invalid []codes.Entry `json:"invalid"`
	Groups  []dupes.Group `json:"duplicates"`
	Unique  []string      `json:"unique"`
}

func encode(o check.Outcome) (string, error) {
	v := outcome{
		Invalid: pstrings.IfEmpty(o.Parsed.Invalid, []codes.Entry{}),
		Groups:  pstrings.IfEmpty(o.Groups, []dupes.Group{}),
		Unique:  pstrings.IfEmpty(o.Fresh, []string{}),
	}
	b, err := json.MarshalIndent(v, "", "  ")
	return string(b), err
}
