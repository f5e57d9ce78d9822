// Package motif models the reference motif library: motif classes with
// their regular expressions and the curated instances attached to them.
package motif

import (
	"fmt"
	"regexp"
	"strings"
)

// Logic is the curation label of an Instance.
type Logic int

const (
	Unknown Logic = iota
	FalsePositive
	TrueNegative
	TruePositive
)

var logicNames = map[Logic]string{
	Unknown:       "unknown",
	FalsePositive: "false positive",
	TrueNegative:  "true negative",
	TruePositive:  "true positive",
}

func (l Logic) String() string {
	if s, ok := logicNames[l]; ok {
		return s
	}
	return fmt.Sprintf("Logic(%d)", int(l))
}

// ParseLogic accepts the library spelling ("false positive") as well as
// "false_positive", "FalsePositive" and "false-positive".
func ParseLogic(s string) (Logic, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "", "-", "", " ", "").Replace(norm)
	switch norm {
	case "falsepositive", "fp":
		return FalsePositive, nil
	case "truenegative", "tn":
		return TrueNegative, nil
	case "truepositive", "tp":
		return TruePositive, nil
	case "unknown", "":
		return Unknown, nil
	}
	return Unknown, fmt.Errorf("unknown instance logic %q", s)
}

// Instance is one curated occurrence of a motif class in a protein.
type Instance struct {
	Accession string
	MotifID   string
	ProteinID string
	Start     int // 1-based
	End       int // 1-based, inclusive
	Logic     Logic
	Sequence  string // observed residues; may be empty
}

// Class is a motif class. It is immutable once added to a Library.
type Class struct {
	ID          string
	Accession   string
	Name        string
	Description string
	Pattern     string
	Probability float64

	re        *regexp.Regexp
	instances []Instance
}

// NewClass compiles pattern and returns a Class with no instances.
func NewClass(id, accession, name, description, pattern string, probability float64) (*Class, error) {
	if id == "" {
		return nil, fmt.Errorf("motif: empty identifier")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("motif %s: bad pattern %q: %w", id, pattern, err)
	}
	return &Class{
		ID:          id,
		Accession:   accession,
		Name:        name,
		Description: description,
		Pattern:     pattern,
		Probability: probability,
		re:          re,
	}, nil
}

// Category returns the identifier segment before the first "_" (CLV, DEG,
// DOC, LIG, MOD, TRG for ELM identifiers).
func Category(id string) string {
	if i := strings.IndexByte(id, '_'); i >= 0 {
		return id[:i]
	}
	return id
}

func (c *Class) Category() string { return Category(c.ID) }
func (c *Class) Regexp() *regexp.Regexp { return c.re }
func (c *Class) Instances() []Instance { return c.instances }
func (c *Class) NumInstances() int { return len(c.instances) }

// HasInstance reports whether some instance with the given logic label
// carries exactly the residues seq.
func (c *Class) HasInstance(seq string, logic Logic) bool {
	for _, in := range c.instances {
		if in.Logic == logic && in.Sequence != "" && in.Sequence == seq {
			return true
		}
	}
	return false
}

// withInstances returns a shallow copy of c carrying ins.
func (c *Class) withInstances(ins []Instance) *Class {
	cp := *c
	cp.instances = ins
	return &cp
}
