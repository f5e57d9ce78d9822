// Package interval holds 1-based inclusive regions and the overlap and
// run-length helpers shared by the matcher and the coverage collapser.
package interval

import "fmt"

// Region is a 1-based inclusive [Start, End] interval, Start <= End.
type Region struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (r Region) Len() int { return r.End - r.Start + 1 }

func (r Region) String() string { return fmt.Sprintf("%d-%d", r.Start, r.End) }

func order(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// Coverage returns the number of positions shared by [a,b] and [x,y].
// Endpoints may be given in either order.
func Coverage(a, b, x, y int) int {
	a, b = order(a, b)
	x, y = order(x, y)
	lo := max(a, x)
	hi := min(b, y)
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// AnyOverlap reports whether [start,end] shares a position with any region.
func AnyOverlap(start, end int, regions []Region) bool {
	for _, r := range regions {
		if Coverage(start, end, r.Start, r.End) > 0 {
			return true
		}
	}
	return false
}

// RunLengthEncode returns the maximal runs of values (position 1 is
// values[0]) whose value is >= threshold.
//
// With invert set the values are first folded to a mask (value >= 1 → 0,
// otherwise 1) and the threshold is applied to the mask, so an inverted
// encode only yields regions for thresholds <= 1.
func RunLengthEncode[T int | float64](values []T, threshold T, invert bool) []Region {
	var (
		out   []Region
		start = 0 // 1-based start of the open run, 0 when none
	)
	for i, v := range values {
		if invert {
			if v >= 1 {
				v = 0
			} else {
				v = 1
			}
		}
		pos := i + 1
		if v >= threshold {
			if start == 0 {
				start = pos
			}
			continue
		}
		if start != 0 {
			out = append(out, Region{Start: start, End: pos - 1})
			start = 0
		}
	}
	// a run reaching the last position has no closing transition
	if start != 0 {
		out = append(out, Region{Start: start, End: len(values)})
	}
	return out
}
