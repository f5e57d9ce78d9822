// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"
)

// Writer registries (format → handler), filled in init() blocks of the
// occurrence and masked writer files.
var (
	OccurrenceWriters = map[string]func(w io.Writer, data interface{}) error{}
	MaskedWriters     = map[string]func(w io.Writer, data interface{}) error{}
)

// Register helpers (idempotent last-wins)
func RegisterOccurrence(format string, fn func(io.Writer, interface{}) error) {
	OccurrenceWriters[format] = fn
}
func RegisterMasked(format string, fn func(io.Writer, interface{}) error) {
	MaskedWriters[format] = fn
}

// Dispatch helpers used by factories / callers.
func WriteOccurrences(format string, w io.Writer, payload interface{}) error {
	fn, ok := OccurrenceWriters[format]
	if !ok {
		return fmt.Errorf("unknown occurrence format %q (no writer registered)", format)
	}
	return fn(w, payload)
}
func WriteMasked(format string, w io.Writer, payload interface{}) error {
	fn, ok := MaskedWriters[format]
	if !ok {
		return fmt.Errorf("unknown mask format %q (no writer registered)", format)
	}
	return fn(w, payload)
}

// Formats lists the registered names of a registry, sorted (for usage text).
func Formats(reg map[string]func(io.Writer, interface{}) error) []string {
	out := make([]string, 0, len(reg))
	for k := range reg {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
