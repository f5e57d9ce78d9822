package summary

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"

	"motifmask/internal/annotate"
	"motifmask/internal/engine"
	"motifmask/internal/fasta"
	"motifmask/internal/motif"
	"motifmask/pkg/api"
)

func lib(t *testing.T) *motif.Library {
	t.Helper()
	a, err := motif.NewClass("LIG_AVL_1", "ELME1", "", "", "AVL", 0.01)
	if err != nil {
		t.Fatal(err)
	}
	b, err := motif.NewClass("DOC_W_1", "ELME2", "", "", "W", 0.5)
	if err != nil {
		t.Fatal(err)
	}
	return motif.NewLibrary(a, b)
}

func TestPValue(t *testing.T) {
	if PValue(0, 3) != 1 {
		t.Fatalf("zero observations must give p=1")
	}
	if PValue(2, 0) != 0 {
		t.Fatalf("observations with zero expectation must give p=0")
	}
	// P(X >= 1) = 1 - e^-λ
	if got, want := PValue(1, 0.5), 1-math.Exp(-0.5); math.Abs(got-want) > 1e-12 {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestReport(t *testing.T) {
	s := New(lib(t))
	s.Add(annotate.Result{
		Record:      fasta.Record{ID: "s1", Seq: []byte("MSTAVLPRQAVL")},
		Occurrences: []engine.Occurrence{{MotifID: "LIG_AVL_1"}, {MotifID: "LIG_AVL_1"}},
	})
	s.Add(annotate.Result{Record: fasta.Record{ID: "s2", Seq: []byte("AAAAAAAA")}, LowComplex: true})

	id := NewRunID()
	if _, err := uuid.Parse(id); err != nil {
		t.Fatalf("run id not a uuid: %v", err)
	}
	rep := s.Report(id, "test")
	if rep.Sequences != 2 || rep.Residues != 12 || rep.LowComplex != 1 || rep.Occurrences != 2 || rep.Classes != 2 {
		t.Fatalf("counts: %+v", rep)
	}
	first := rep.Motifs[0]
	if first.MotifID != "LIG_AVL_1" || first.Observed != 2 || math.Abs(first.Expected-0.12) > 1e-12 {
		t.Fatalf("enriched motif should come first: %+v", rep.Motifs)
	}
	if rep.Motifs[1].PValue != 1 {
		t.Fatalf("unobserved motif p-value: %+v", rep.Motifs[1])
	}

	fn := filepath.Join(t.TempDir(), "summary.json")
	if err := WriteFile(fn, rep); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	var back api.SummaryV1
	if err := json.Unmarshal(b, &back); err != nil || back.RunID != id {
		t.Fatalf("summary file: %v %+v", err, back)
	}
}
