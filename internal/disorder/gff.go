// internal/disorder/gff.go
package disorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/io/featio"
	"github.com/biogo/biogo/io/featio/gff"
	"github.com/sirupsen/logrus"

	"motifmask/internal/interval"
)

// Feature types read from a precomputed prediction file (case-insensitive).
var (
	disorderTypes = map[string]bool{"disorder": true, "idr": true, "disordered_region": true}
	bindingTypes  = map[string]bool{"binding": true, "morf": true, "binding_site": true}
)

// GFF serves predictions precomputed into a GFF file. Disorder features
// give a probability of 1 to every covered residue.
type GFF struct {
	disorder map[string][]interval.Region
	binding  map[string][]interval.Region
	log      logrus.FieldLogger
}

// LoadGFF reads predictions from path.
func LoadGFF(path string, log logrus.FieldLogger) (*GFF, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()
	g, err := ReadGFF(f, log)
	if err != nil {
		return nil, fmt.Errorf("disorder: read %s: %w", path, err)
	}
	if log != nil {
		log.WithFields(logrus.Fields{"file": path, "sequences": g.Sequences()}).Info("loaded precomputed predictions")
	}
	return g, nil
}

// ReadGFF reads predictions from r, in GFF2 or GFF3. Features of other
// types are ignored.
func ReadGFF(r io.Reader, log logrus.FieldLogger) (*GFF, error) {
	g := &GFF{
		disorder: make(map[string][]interval.Region),
		binding:  make(map[string][]interval.Region),
		log:      log,
	}
	rows := featureRows(r)
	defer rows.Close()
	sc := featio.NewScanner(gff.NewReader(rows))
	for sc.Next() {
		f, ok := sc.Feat().(*gff.Feature)
		if !ok {
			continue
		}
		// biogo holds features zero-based half-open
		reg := interval.Region{Start: f.FeatStart + 1, End: f.FeatEnd}
		switch typ := strings.ToLower(f.Feature); {
		case disorderTypes[typ]:
			g.disorder[f.SeqName] = append(g.disorder[f.SeqName], reg)
		case bindingTypes[typ]:
			g.binding[f.SeqName] = append(g.binding[f.SeqName], reg)
		}
	}
	if err := sc.Error(); err != nil {
		return nil, err
	}
	return g, nil
}

// featureRows streams the feature rows of a GFF2 or GFF3 file cut to the
// eight fixed columns. Comments and metalines are dropped and an embedded
// ##FASTA section ends the stream, so the reader sees a plain GFF2 body
// whatever the declared version. The attribute column carries nothing used
// here and GFF3 attributes do not parse as GFF2.
func featureRows(r io.Reader) io.ReadCloser {
	pr, pw := io.Pipe()
	go func() {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64<<10), 16<<20)
		for sc.Scan() {
			line := strings.TrimRight(sc.Text(), "\r")
			if strings.HasPrefix(line, "##FASTA") {
				break
			}
			if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
				continue
			}
			if cols := strings.SplitN(line, "\t", 9); len(cols) == 9 {
				line = strings.Join(cols[:8], "\t")
			}
			if _, err := io.WriteString(pw, line+"\n"); err != nil {
				return // reader closed
			}
		}
		pw.CloseWithError(sc.Err())
	}()
	return pr
}

// Predict returns the stored prediction for id. A sequence absent from the
// file has no predicted regions.
func (g *GFF) Predict(_ context.Context, id string, residues []byte) (Prediction, error) {
	dis, okD := g.disorder[id]
	bind, okB := g.binding[id]
	if !okD && !okB && g.log != nil {
		g.log.WithField("sequence", id).Warn("no precomputed prediction for sequence")
	}
	series := make([]float64, len(residues))
	for _, r := range dis {
		lo, hi := max(r.Start, 1), min(r.End, len(residues))
		for p := lo; p <= hi; p++ {
			series[p-1] = 1
		}
	}
	return Prediction{Binding: append([]interval.Region(nil), bind...), Disorder: series}, nil
}

// Sequences is the number of sequences with at least one prediction.
func (g *GFF) Sequences() int {
	seen := make(map[string]bool, len(g.disorder)+len(g.binding))
	for id := range g.disorder {
		seen[id] = true
	}
	for id := range g.binding {
		seen[id] = true
	}
	return len(seen)
}
