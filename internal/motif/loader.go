// internal/motif/loader.go
package motif

import (
	"compress/gzip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// ErrNoHeader is returned when a library table has no usable header row.
var ErrNoHeader = errors.New("motif: missing or incomplete header row")

// Column names (matched case-insensitively).
const (
	colAccession   = "accession"
	colIdentifier  = "elmidentifier"
	colSiteName    = "functionalsitename"
	colDescription = "description"
	colRegex       = "regex"
	colProbability = "probability"
	colPrimaryAcc  = "primary_acc"
	colProteinName = "proteinname"
	colStart       = "start"
	colEnd         = "end"
	colLogic       = "instancelogic"
	colSequence    = "sequence"
)

func openTable(path string) (io.ReadCloser, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}

func newTableReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.Comment = '#'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	return cr
}

// table walks a header-led TSV and hands each row to fn as a column lookup.
type table struct {
	src  string
	cols map[string]int
	log  logrus.FieldLogger
}

func (t *table) get(row []string, col string) (string, bool) {
	i, ok := t.cols[col]
	if !ok || i >= len(row) {
		return "", false
	}
	return strings.TrimSpace(row[i]), true
}

func readTable(r io.Reader, src string, required []string, log logrus.FieldLogger, fn func(t *table, line int, row []string) error) error {
	cr := newTableReader(r)
	var t *table
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				log.WithFields(logrus.Fields{"file": src, "line": pe.Line}).Warnf("skipping malformed record: %v", pe.Err)
				continue
			}
			return fmt.Errorf("%s: %w", src, err)
		}
		line, _ := cr.FieldPos(0)
		if t == nil {
			cols := make(map[string]int, len(row))
			for i, name := range row {
				cols[strings.ToLower(strings.TrimSpace(name))] = i
			}
			for _, req := range required {
				if _, ok := cols[req]; !ok {
					return fmt.Errorf("%s: %w (no %q column)", src, ErrNoHeader, req)
				}
			}
			t = &table{src: src, cols: cols, log: log}
			continue
		}
		if err := fn(t, line, row); err != nil {
			log.WithFields(logrus.Fields{"file": src, "line": line}).Warnf("skipping record: %v", err)
		}
	}
	if t == nil {
		return fmt.Errorf("%s: %w", src, ErrNoHeader)
	}
	return nil
}

func parseProb(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	p, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad probability %q", s)
	}
	if p < 0 {
		return 0, fmt.Errorf("negative probability %q", s)
	}
	return p, nil
}

// ReadClasses parses a class table from r. src names the input in errors.
func ReadClasses(r io.Reader, src string, log logrus.FieldLogger) (*Library, error) {
	var classes []*Class
	seen := make(map[string]bool)
	err := readTable(r, src, []string{colIdentifier, colRegex}, log, func(t *table, line int, row []string) error {
		id, _ := t.get(row, colIdentifier)
		if id == "" {
			return errors.New("empty identifier")
		}
		if seen[id] {
			return fmt.Errorf("duplicate identifier %s", id)
		}
		pattern, _ := t.get(row, colRegex)
		if pattern == "" {
			return fmt.Errorf("%s: empty regex", id)
		}
		ps, _ := t.get(row, colProbability)
		prob, err := parseProb(ps)
		if err != nil {
			return fmt.Errorf("%s: %v", id, err)
		}
		acc, _ := t.get(row, colAccession)
		name, _ := t.get(row, colSiteName)
		desc, _ := t.get(row, colDescription)
		c, err := NewClass(id, acc, name, desc, pattern, prob)
		if err != nil {
			return err
		}
		seen[id] = true
		classes = append(classes, c)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return NewLibrary(classes...), nil
}

// ReadInstances parses an instance table from r.
func ReadInstances(r io.Reader, src string, log logrus.FieldLogger) ([]Instance, error) {
	var out []Instance
	err := readTable(r, src, []string{colIdentifier, colStart, colEnd, colLogic}, log, func(t *table, line int, row []string) error {
		var (
			in  Instance
			err error
		)
		in.MotifID, _ = t.get(row, colIdentifier)
		if in.MotifID == "" {
			return errors.New("empty identifier")
		}
		in.Accession, _ = t.get(row, colAccession)
		if in.ProteinID, _ = t.get(row, colPrimaryAcc); in.ProteinID == "" {
			in.ProteinID, _ = t.get(row, colProteinName)
		}
		s, _ := t.get(row, colStart)
		if in.Start, err = strconv.Atoi(s); err != nil {
			return fmt.Errorf("%s: bad start %q", in.MotifID, s)
		}
		e, _ := t.get(row, colEnd)
		if in.End, err = strconv.Atoi(e); err != nil {
			return fmt.Errorf("%s: bad end %q", in.MotifID, e)
		}
		if in.Start < 1 || in.End < in.Start {
			return fmt.Errorf("%s: bad span %d-%d", in.MotifID, in.Start, in.End)
		}
		lg, _ := t.get(row, colLogic)
		if in.Logic, err = ParseLogic(lg); err != nil {
			return fmt.Errorf("%s: %v", in.MotifID, err)
		}
		seq, _ := t.get(row, colSequence)
		in.Sequence = strings.ToUpper(seq)
		out = append(out, in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadClasses reads a class table from path (".gz" is decompressed).
func LoadClasses(path string, log logrus.FieldLogger) (*Library, error) {
	rc, err := openTable(path)
	if err != nil {
		return nil, fmt.Errorf("motif: load classes from %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()
	lib, err := ReadClasses(rc, path, log)
	if err != nil {
		return nil, fmt.Errorf("motif: load classes from %s: %w", path, err)
	}
	return lib, nil
}

// LoadInstances reads an instance table from path.
func LoadInstances(path string, log logrus.FieldLogger) ([]Instance, error) {
	rc, err := openTable(path)
	if err != nil {
		return nil, fmt.Errorf("motif: load instances from %s: %w", path, err)
	}
	defer func() { _ = rc.Close() }()
	ins, err := ReadInstances(rc, path, log)
	if err != nil {
		return nil, fmt.Errorf("motif: load instances from %s: %w", path, err)
	}
	return ins, nil
}

// Load reads the class table and, when instancesPath is set, attaches the
// instance table. Instances of unknown classes are dropped with a warning.
func Load(classesPath, instancesPath string, log logrus.FieldLogger) (*Library, error) {
	lib, err := LoadClasses(classesPath, log)
	if err != nil {
		return nil, err
	}
	if instancesPath == "" {
		return lib, nil
	}
	ins, err := LoadInstances(instancesPath, log)
	if err != nil {
		return nil, err
	}
	lib, orphans := lib.WithInstances(ins)
	if len(orphans) > 0 {
		log.WithField("file", instancesPath).Warnf("%d instance(s) name a motif class that is not loaded", len(orphans))
	}
	log.WithFields(logrus.Fields{"classes": lib.Len(), "instances": lib.NumInstances()}).Info("motif library loaded")
	return lib, nil
}
