// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}

// SequenceInputs merges --sequences values with positionals, expanding
// globs in both, and defaults to stdin when neither names a file.
// Stdin may be named at most once.
func SequenceInputs(flagged, positionals []string) ([]string, error) {
	all := append(append([]string{}, flagged...), positionals...)
	out, err := ExpandPositionals(all)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return []string{"-"}, nil
	}
	stdin := 0
	for _, f := range out {
		if f == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("stdin ('-') given more than once")
	}
	return out, nil
}
