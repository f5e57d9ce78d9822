// internal/fasta/fasta_test.go
package fasta

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const plain = `>sp1 first protein
MSTAV
LPRQ
>sp2
acdef
`

func writeGz(t *testing.T, name string, data string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), name)
	fh, err := os.Create(fn)
	if err != nil {
		t.Fatalf("tmp: %v", err)
	}
	gw := gzip.NewWriter(fh)
	if _, err := gw.Write([]byte(data)); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	_ = gw.Close()
	_ = fh.Close()
	return fn
}

func TestReadRecords(t *testing.T) {
	var got []Record
	err := Read(context.Background(), strings.NewReader(plain), func(r Record) error {
		got = append(got, r)
		return nil
	})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 records, got %d", len(got))
	}
	if got[0].ID != "sp1" || got[0].Desc != "first protein" || string(got[0].Seq) != "MSTAVLPRQ" {
		t.Fatalf("record 1: %+v (%s)", got[0], got[0].Seq)
	}
	if got[1].ID != "sp2" || string(got[1].Seq) != "acdef" {
		t.Fatalf("record 2 should keep case: %+v (%s)", got[1], got[1].Seq)
	}
}

func readAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ForEach(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func TestForEachGzip(t *testing.T) {
	// no .gz suffix: detected by magic number
	fn := writeGz(t, "seqs.fa", plain)
	recs, err := readAll(context.Background(), fn)
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	if len(recs) != 2 || recs[0].ID != "sp1" || recs[1].ID != "sp2" {
		t.Fatalf("gzip parse failed: %+v", recs)
	}
}

func TestForEachStdin(t *testing.T) {
	orig := os.Stdin
	r, w, _ := os.Pipe()
	os.Stdin = r
	defer func() { os.Stdin = orig }()
	go func() { _, _ = io.WriteString(w, plain); _ = w.Close() }()

	recs, err := readAll(context.Background(), "-")
	if err != nil {
		t.Fatalf("stdin: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records from stdin, got %d", len(recs))
	}
}

func TestForEachMissingFile(t *testing.T) {
	if _, err := readAll(context.Background(), filepath.Join(t.TempDir(), "none.fa")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestWriterWrapsAndKeepsCase(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, 4)
	if err := w.Write(Record{ID: "sp1", Desc: "masked", Seq: []byte("MSTavlPRQ")}); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(buf.String(), "Q\n") {
		t.Fatalf("last record not terminated: %q", buf.String())
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if lines[0] != ">sp1 masked" {
		t.Fatalf("header: %q", lines[0])
	}
	for _, l := range lines[1:] {
		if len(l) > 4 {
			t.Fatalf("line not wrapped: %q", l)
		}
	}
	if got := strings.Join(lines[1:], ""); got != "MSTavlPRQ" {
		t.Fatalf("residues: %q", got)
	}
}
