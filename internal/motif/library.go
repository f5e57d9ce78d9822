// internal/motif/library.go
package motif

import (
	"sort"
	"strings"
)

// Library is a read-only set of motif classes keyed by identifier.
// Filtering methods return new libraries and never modify the receiver.
type Library struct {
	byID    map[string]*Class
	ordered []*Class // sorted by ID
}

// NewLibrary builds a library; later classes replace earlier ones with the
// same identifier.
func NewLibrary(classes ...*Class) *Library {
	l := &Library{byID: make(map[string]*Class, len(classes))}
	for _, c := range classes {
		if c == nil {
			continue
		}
		l.byID[c.ID] = c
	}
	l.ordered = make([]*Class, 0, len(l.byID))
	for _, c := range l.byID {
		l.ordered = append(l.ordered, c)
	}
	sort.Slice(l.ordered, func(i, j int) bool { return l.ordered[i].ID < l.ordered[j].ID })
	return l
}

func (l *Library) Len() int { return len(l.ordered) }

// Classes returns all classes sorted by identifier. The slice is shared;
// callers must not modify it.
func (l *Library) Classes() []*Class { return l.ordered }

func (l *Library) Get(id string) (*Class, bool) {
	c, ok := l.byID[id]
	return c, ok
}

// NumInstances is the total number of attached instances.
func (l *Library) NumInstances() int {
	n := 0
	for _, c := range l.ordered {
		n += len(c.instances)
	}
	return n
}

func (l *Library) filter(keep func(*Class) bool) *Library {
	out := make([]*Class, 0, len(l.ordered))
	for _, c := range l.ordered {
		if keep(c) {
			out = append(out, c)
		}
	}
	return NewLibrary(out...)
}

func categorySet(codes []string) map[string]bool {
	set := make(map[string]bool, len(codes))
	for _, c := range codes {
		if c = strings.ToUpper(strings.TrimSpace(c)); c != "" {
			set[c] = true
		}
	}
	return set
}

// WithoutCategories drops classes whose category is listed (case-insensitive).
func (l *Library) WithoutCategories(codes ...string) *Library {
	set := categorySet(codes)
	if len(set) == 0 {
		return l
	}
	return l.filter(func(c *Class) bool { return !set[strings.ToUpper(c.Category())] })
}

// OnlyCategories keeps classes whose category is listed. No codes keeps all.
func (l *Library) OnlyCategories(codes ...string) *Library {
	set := categorySet(codes)
	if len(set) == 0 {
		return l
	}
	return l.filter(func(c *Class) bool { return set[strings.ToUpper(c.Category())] })
}

// MaxProbability keeps classes whose annotated probability is <= ceiling.
func (l *Library) MaxProbability(ceiling float64) *Library {
	return l.filter(func(c *Class) bool { return c.Probability <= ceiling })
}

// WithInstances returns a library whose classes carry the given instances
// (appended to any they already have), grouped by MotifID in input order.
// Instances naming an unknown class are returned as orphans.
func (l *Library) WithInstances(ins []Instance) (*Library, []Instance) {
	byMotif := make(map[string][]Instance)
	var orphans []Instance
	for _, in := range ins {
		if _, ok := l.byID[in.MotifID]; !ok {
			orphans = append(orphans, in)
			continue
		}
		byMotif[in.MotifID] = append(byMotif[in.MotifID], in)
	}
	out := make([]*Class, 0, len(l.ordered))
	for _, c := range l.ordered {
		extra, ok := byMotif[c.ID]
		if !ok {
			out = append(out, c)
			continue
		}
		merged := make([]Instance, 0, len(c.instances)+len(extra))
		merged = append(merged, c.instances...)
		merged = append(merged, extra...)
		out = append(out, c.withInstances(merged))
	}
	return NewLibrary(out...), orphans
}
