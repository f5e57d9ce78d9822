// Package mask rewrites sequences over disjoint regions.
package mask

import (
	"motifmask/internal/interval"
)

// MaskChar replaces every residue of a hard-masked region.
const MaskChar = 'x'

// Apply returns a copy of seq with every region masked: hard replaces the
// residues with MaskChar, soft lower-cases them. Residues outside the
// regions are unchanged. Regions are clamped to [1, len(seq)], so the
// result always has the length of seq.
func Apply(seq string, regions []interval.Region, hard bool) string {
	b := []byte(seq)
	for _, r := range regions {
		lo, hi := r.Start, r.End
		if lo > hi {
			lo, hi = hi, lo
		}
		lo = max(lo, 1)
		hi = min(hi, len(b))
		for p := lo; p <= hi; p++ {
			if hard {
				b[p-1] = MaskChar
			} else {
				b[p-1] = lower(b[p-1])
			}
		}
	}
	return string(b)
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// Fraction is the share of seq covered by regions (0 for an empty seq).
func Fraction(length int, regions []interval.Region) float64 {
	if length <= 0 {
		return 0
	}
	n := 0
	for _, r := range regions {
		n += interval.Coverage(r.Start, r.End, 1, length)
	}
	return float64(n) / float64(length)
}
