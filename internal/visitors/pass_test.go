package visitors

import (
	"testing"

	"motifmask/internal/annotate"
	"motifmask/internal/engine"
	"motifmask/internal/fasta"
	"motifmask/internal/interval"
	"motifmask/internal/motif"
	"motifmask/internal/summary"
)

func TestOccurrencesRecordsSummary(t *testing.T) {
	c, err := motif.NewClass("LIG_AVL_1", "ELME000001", "", "", "AVL", 0.01)
	if err != nil {
		t.Fatal(err)
	}
	sum := summary.New(motif.NewLibrary(c))
	r := annotate.Result{
		Record:      fasta.Record{ID: "s1", Seq: []byte("MSTAVLPRQ")},
		Occurrences: []engine.Occurrence{{SequenceID: "s1", MotifID: "LIG_AVL_1", Start: 4, End: 6}},
	}
	out, err := Occurrences{Summary: sum}.Visit(r)
	if err != nil || len(out) != 1 {
		t.Fatalf("visit: %v %v", out, err)
	}
	rep := sum.Report("run", "test")
	if rep.Sequences != 1 || rep.Occurrences != 1 || rep.Residues != 9 {
		t.Fatalf("summary: %+v", rep)
	}

	if out, _ := (Occurrences{}).Visit(annotate.Result{}); len(out) != 0 {
		t.Fatalf("empty result: %v", out)
	}
}

func TestMaskedCarriesRecord(t *testing.T) {
	r := annotate.Result{
		Record:  fasta.Record{ID: "s1", Desc: "toy", Seq: []byte("MSTAVLPRQ")},
		Regions: []interval.Region{{Start: 4, End: 6}},
		Masked:  "MSTxxxPRQ",
	}
	out, err := Masked{Mode: "motifs"}.Visit(r)
	if err != nil || len(out) != 1 {
		t.Fatalf("visit: %v %v", out, err)
	}
	m := out[0]
	if m.ID != "s1" || m.Desc != "toy" || m.Length != 9 || m.Mode != "motifs" || m.Masked != "MSTxxxPRQ" || len(m.Regions) != 1 {
		t.Fatalf("masked: %+v", m)
	}
}
