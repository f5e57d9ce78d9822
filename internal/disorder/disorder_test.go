package disorder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strings"
	"testing"
	"time"

	"motifmask/internal/interval"
)

const iupredOut = `# IUPred2A: context-dependent prediction of protein disorder
# POS	RES	IUPRED2	ANCHOR2
1	M	0.10	0.20
2	S	0.60	0.70
3	T	0.70	0.80
4	A	0.40	0.30
5	V	0.55	0.60
`

func TestParseOutput(t *testing.T) {
	p, err := ParseOutput(strings.NewReader(iupredOut), 5, 0.5)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if want := []float64{0.10, 0.60, 0.70, 0.40, 0.55}; !reflect.DeepEqual(p.Disorder, want) {
		t.Fatalf("disorder: got %v", p.Disorder)
	}
	if want := []interval.Region{{Start: 2, End: 3}, {Start: 5, End: 5}}; !reflect.DeepEqual(p.Binding, want) {
		t.Fatalf("binding: got %v", p.Binding)
	}
	if got := p.DisorderRegions(0.5); !reflect.DeepEqual(got, []interval.Region{{Start: 2, End: 3}, {Start: 5, End: 5}}) {
		t.Fatalf("disorder regions: got %v", got)
	}
}

func TestParseOutputRejectsBadRows(t *testing.T) {
	for _, in := range []string{
		"1\tM\n",
		"x\tM\t0.1\n",
		"9\tM\t0.1\n",
		"1\tM\tnope\n",
	} {
		if _, err := ParseOutput(strings.NewReader(in), 3, 0.5); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

const predGFF = `##gff-version 3
sp1	iupred	IDR	2	4	.	.	.
sp1	anchor	MoRF	3	3	.	.	.
sp1	other	domain	1	5	.	.	.
sp2	anchor	binding	1	2	.	.	.
`

func TestGFFPredictor(t *testing.T) {
	g, err := ReadGFF(strings.NewReader(predGFF), nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if g.Sequences() != 2 {
		t.Fatalf("want 2 sequences, got %d", g.Sequences())
	}
	p, err := g.Predict(context.Background(), "sp1", []byte("MSTAV"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Disorder, []float64{0, 1, 1, 1, 0}) {
		t.Fatalf("disorder series: %v", p.Disorder)
	}
	if !reflect.DeepEqual(p.Binding, []interval.Region{{Start: 3, End: 3}}) {
		t.Fatalf("binding: %v", p.Binding)
	}
	p, _ = g.Predict(context.Background(), "missing", []byte("MST"))
	if len(p.Binding) != 0 || len(p.DisorderRegions(0.5)) != 0 {
		t.Fatalf("unknown sequence should have no regions: %+v", p)
	}
}

const predGFF3 = "##gff-version 3\n" +
	"##sequence-region sp1 1 5\n" +
	"# comment\n" +
	"sp1\tiupred\tdisordered_region\t1\t2\t0.9\t+\t.\tID=d1;Name=IDR 1\n" +
	"\n" +
	"sp1\tanchor\tbinding_site\t4\t5\t.\t.\t.\tID=b1;Parent=d1\n" +
	"##FASTA\n" +
	">sp1\n" +
	"MSTAV\n"

func TestGFF3Metalines(t *testing.T) {
	g, err := ReadGFF(strings.NewReader(predGFF3), nil)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if g.Sequences() != 1 {
		t.Fatalf("want 1 sequence, got %d", g.Sequences())
	}
	p, err := g.Predict(context.Background(), "sp1", []byte("MSTAV"))
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(p.Disorder, []float64{1, 1, 0, 0, 0}) {
		t.Fatalf("disorder series: %v", p.Disorder)
	}
	if !reflect.DeepEqual(p.Binding, []interval.Region{{Start: 4, End: 5}}) {
		t.Fatalf("binding: %v", p.Binding)
	}
}

func TestLoadGFF(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pred.gff3")
	if err := os.WriteFile(fn, []byte(predGFF3), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadGFF(fn, nil)
	if err != nil || g.Sequences() != 1 {
		t.Fatalf("load: %v %v", g, err)
	}
	if _, err := LoadGFF(filepath.Join(t.TempDir(), "none.gff"), nil); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("missing file: %v", err)
	}
}

func script(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts not supported")
	}
	fn := filepath.Join(t.TempDir(), "pred.sh")
	if err := os.WriteFile(fn, []byte("#!/bin/sh\n"+body), 0o755); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestCommandPredict(t *testing.T) {
	// echo one row per residue of the input file
	exe := script(t, `awk '!/^>/ { for (i = 1; i <= length($0); i++) printf "%d\t%s\t0.9\t0.1\n", i, substr($0, i, 1) }' "$1"`+"\n")
	c := &Command{Path: exe}
	if err := Check(c); err != nil {
		t.Fatalf("check: %v", err)
	}
	p, err := c.Predict(context.Background(), "s1", []byte("MSTAV"))
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if len(p.Disorder) != 5 || p.Disorder[4] != 0.9 || len(p.Binding) != 0 {
		t.Fatalf("unexpected prediction: %+v", p)
	}
}

func TestCommandFailure(t *testing.T) {
	c := &Command{Path: script(t, "echo boom >&2\nexit 3\n")}
	_, err := c.Predict(context.Background(), "s1", []byte("MST"))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("want failure carrying stderr, got %v", err)
	}
}

func TestCommandTimeout(t *testing.T) {
	c := &Command{Path: script(t, "exec sleep 5\n"), Timeout: 50 * time.Millisecond}
	_, err := c.Predict(context.Background(), "s1", []byte("MST"))
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("want ErrTimeout, got %v", err)
	}
}

func TestCheckMissingExecutable(t *testing.T) {
	c := &Command{Path: filepath.Join(t.TempDir(), "no-such-predictor")}
	if err := Check(c); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
	if err := Check(&GFF{}); err != nil {
		t.Fatalf("GFF has nothing to check: %v", err)
	}
}
