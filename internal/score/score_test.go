package score

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

func quietScorer() *Scorer { return New(nil) }

func almost(a, b float64) bool { return math.Abs(a-b) <= 1e-12*math.Max(1, math.Abs(b)) }

func TestSingleResidue(t *testing.T) {
	got, err := quietScorer().Score("A")
	if err != nil {
		t.Fatal(err)
	}
	p := AminoProbs['A']
	want := p * math.Log2(1/p)
	if got.Probability != p {
		t.Fatalf("probability: got %v want %v", got.Probability, p)
	}
	if !almost(got.Entropy, want) || !almost(got.EntropyRate, want) {
		t.Fatalf("entropy: got %+v want %v", got, want)
	}
}

func TestEmptyInput(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	got, err := New(log).Score("")
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("want ErrEmptyInput, got %v", err)
	}
	if got != (Score{}) {
		t.Fatalf("want zero score, got %+v", got)
	}
	if !strings.Contains(buf.String(), "empty") {
		t.Fatalf("expected a warning, log=%q", buf.String())
	}
}

func TestSkipCodesCountTowardsRateOnly(t *testing.T) {
	s := quietScorer()
	plain, _ := s.Score("AV")
	withSkip, _ := s.Score("AUVO")
	if plain.Probability != withSkip.Probability {
		t.Fatalf("skip codes changed probability: %v vs %v", plain.Probability, withSkip.Probability)
	}
	if !almost(plain.Entropy, withSkip.Entropy) {
		t.Fatalf("skip codes changed entropy: %v vs %v", plain.Entropy, withSkip.Entropy)
	}
	if !almost(withSkip.EntropyRate, plain.Entropy/4) {
		t.Fatalf("rate divisor must be the full length: got %v want %v", withSkip.EntropyRate, plain.Entropy/4)
	}
}

func TestAmbiguityCodes(t *testing.T) {
	s := quietScorer()
	b, _ := s.Score("B")
	if !almost(b.Probability, AminoProbs['D']+AminoProbs['N']) {
		t.Fatalf("B: %v", b.Probability)
	}
	j, _ := s.Score("J")
	if !almost(j.Probability, AminoProbs['I']+AminoProbs['L']) {
		t.Fatalf("J: %v", j.Probability)
	}
	x, _ := s.Score("X")
	if x.Probability != 1 || x.Entropy != 0 {
		t.Fatalf("X should carry no information: %+v", x)
	}
}

func TestUnknownResidueFallback(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	got, err := New(log).Score("A*")
	if err != nil {
		t.Fatal(err)
	}
	if got.Probability > 1e-300 {
		t.Fatalf("unknown residue should make probability ~0, got %v", got.Probability)
	}
	if !strings.Contains(buf.String(), "unknown residue") {
		t.Fatalf("expected unknown-residue warning, log=%q", buf.String())
	}
}

func TestCaseInsensitive(t *testing.T) {
	s := quietScorer()
	up, _ := s.Score("AVL")
	lo, _ := s.Score("avl")
	if up != lo {
		t.Fatalf("case changed the score: %+v vs %+v", up, lo)
	}
}
