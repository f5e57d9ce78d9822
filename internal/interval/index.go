// internal/interval/index.go
package interval

import (
	"github.com/biogo/store/interval"
)

// Index answers AnyOverlap queries for a fixed region set using an
// interval tree. The zero Index (or nil) matches nothing.
type Index struct {
	tree interval.IntTree
	n    int
}

// node stores a Region as a half-open tree range.
type node struct {
	uid uintptr
	r   interval.IntRange
}

func (n node) Overlap(b interval.IntRange) bool { return n.r.Start < b.End && b.Start < n.r.End }
func (n node) ID() uintptr { return n.uid }
func (n node) Range() interval.IntRange { return n.r }

// query is a probe range; Overlap is symmetric with node.Overlap.
type query interval.IntRange

func (q query) Overlap(b interval.IntRange) bool { return q.Start < b.End && b.Start < q.End }

func halfOpen(start, end int) interval.IntRange {
	start, end = order(start, end)
	return interval.IntRange{Start: start, End: end + 1}
}

// NewIndex builds an Index over regions.
func NewIndex(regions []Region) (*Index, error) {
	ix := &Index{}
	for i, r := range regions {
		if err := ix.tree.Insert(node{uid: uintptr(i), r: halfOpen(r.Start, r.End)}, true); err != nil {
			return nil, err
		}
	}
	ix.tree.AdjustRanges()
	ix.n = len(regions)
	return ix, nil
}

// Len is the number of indexed regions.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return ix.n
}

// Overlaps reports whether [start,end] shares a position with any indexed region.
func (ix *Index) Overlaps(start, end int) bool {
	if ix == nil || ix.n == 0 {
		return false
	}
	found := false
	ix.tree.DoMatching(func(interval.IntInterface) (done bool) {
		found = true
		return true
	}, query(halfOpen(start, end)))
	return found
}
