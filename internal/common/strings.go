package common

import "strings"

// UniqueUpper trims/uppercases and de-duplicates strings, preserving order.
// Comma separated items are split first so "LIG,DOC" and "LIG DOC" agree.
func UniqueUpper(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, s := range strings.FieldsFunc(item, func(r rune) bool { return r == ',' || r == ' ' }) {
			u := strings.ToUpper(strings.TrimSpace(s))
			if u == "" {
				continue
			}
			if _, ok := seen[u]; ok {
				continue
			}
			seen[u] = struct{}{}
			out = append(out, u)
		}
	}
	return out
}
