package annotate

import (
	"context"
	"errors"
	"testing"

	"motifmask/internal/disorder"
	"motifmask/internal/engine"
	"motifmask/internal/fasta"
	"motifmask/internal/interval"
	"motifmask/internal/motif"
)

type fakePredictor struct {
	pred disorder.Prediction
	err  error
}

func (f fakePredictor) Predict(context.Context, string, []byte) (disorder.Prediction, error) {
	return f.pred, f.err
}

func avlLibrary(t *testing.T) *motif.Library {
	t.Helper()
	c, err := motif.NewClass("LIG_AVL_1", "ELME000001", "AVL", "", "AVL", 0.01)
	if err != nil {
		t.Fatal(err)
	}
	return motif.NewLibrary(c)
}

func rec(s string) fasta.Record { return fasta.Record{ID: "s1", Seq: []byte(s)} }

func TestAnnotateMaskModes(t *testing.T) {
	lib := avlLibrary(t)
	for _, tc := range []struct {
		background, hard bool
		want             string
	}{
		{false, false, "MSTavlPRQ"},
		{true, false, "mstAVLprq"},
		{false, true, "MSTxxxPRQ"},
		{true, true, "xxxAVLxxx"},
	} {
		a, err := New(Config{Library: lib, Mask: true, Background: tc.background, Hard: tc.hard})
		if err != nil {
			t.Fatal(err)
		}
		res, err := a.Annotate(context.Background(), rec("MSTAVLPRQ"))
		if err != nil {
			t.Fatal(err)
		}
		if res.Masked != tc.want {
			t.Fatalf("background=%v hard=%v: got %q want %q", tc.background, tc.hard, res.Masked, tc.want)
		}
		if len(res.Occurrences) != 1 || res.Occurrences[0].SequenceID != "s1" {
			t.Fatalf("occurrences: %+v", res.Occurrences)
		}
	}
}

func TestAnnotateWithoutMask(t *testing.T) {
	a, err := New(Config{Library: avlLibrary(t)})
	if err != nil {
		t.Fatal(err)
	}
	res, err := a.Annotate(context.Background(), rec("MSTAVLPRQ"))
	if err != nil {
		t.Fatal(err)
	}
	if res.Masked != "" || res.Regions != nil {
		t.Fatalf("mask disabled but got %+v", res)
	}
}

func TestAnnotatePredictorRequired(t *testing.T) {
	eng := engine.New(engine.Config{Disorder: true})
	if _, err := New(Config{Library: avlLibrary(t), Engine: eng}); !errors.Is(err, disorder.ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}

func TestAnnotateUsesPrediction(t *testing.T) {
	eng := engine.New(engine.Config{Disorder: true, MoRF: true})
	p := fakePredictor{pred: disorder.Prediction{
		Binding:  []interval.Region{{Start: 5, End: 5}},
		Disorder: []float64{0, 0, 0, 0.9, 0.9, 0, 0, 0, 0},
	}}
	a, err := New(Config{Library: avlLibrary(t), Engine: eng, Predictor: p, DisorderThreshold: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	res, err := a.Annotate(context.Background(), rec("MSTAVLPRQ"))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Occurrences) != 1 {
		t.Fatalf("want occurrence inside predicted regions, got %+v", res.Occurrences)
	}

	p.pred.Binding = []interval.Region{{Start: 8, End: 9}}
	a, _ = New(Config{Library: avlLibrary(t), Engine: eng, Predictor: p, DisorderThreshold: 0.5})
	res, _ = a.Annotate(context.Background(), rec("MSTAVLPRQ"))
	if len(res.Occurrences) != 0 {
		t.Fatalf("binding region misses the match, got %+v", res.Occurrences)
	}
}

func TestAnnotatePredictorErrorIsFatal(t *testing.T) {
	eng := engine.New(engine.Config{Disorder: true})
	a, err := New(Config{Library: avlLibrary(t), Engine: eng, Predictor: fakePredictor{err: disorder.ErrTimeout}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Annotate(context.Background(), rec("MSTAVLPRQ")); !errors.Is(err, disorder.ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
}

func TestAnnotateLowComplexityPassThrough(t *testing.T) {
	a, err := New(Config{Library: avlLibrary(t), Mask: true, MinComplexity: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	poly, err := a.Annotate(context.Background(), rec("AAAAAAAAAAAAAAAAAA"))
	if err != nil {
		t.Fatal(err)
	}
	if !poly.LowComplex || poly.Masked != "AAAAAAAAAAAAAAAAAA" || poly.Occurrences != nil {
		t.Fatalf("homopolymer should pass through: %+v", poly)
	}
}
