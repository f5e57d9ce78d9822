package interval

import (
	"reflect"
	"testing"
)

func TestCoverage(t *testing.T) {
	cases := []struct {
		a, b, x, y, want int
	}{
		{1, 5, 6, 10, 0},
		{6, 10, 1, 5, 0},
		{1, 5, 5, 10, 1},
		{1, 10, 3, 4, 2},
		{5, 1, 3, 8, 3}, // reversed endpoints
		{3, 3, 3, 3, 1},
		{2, 9, 2, 9, 8},
	}
	for _, c := range cases {
		if got := Coverage(c.a, c.b, c.x, c.y); got != c.want {
			t.Errorf("Coverage(%d,%d,%d,%d) = %d, want %d", c.a, c.b, c.x, c.y, got, c.want)
		}
	}
	for a := 1; a < 6; a++ {
		for b := 1; b < 6; b++ {
			want := 1 + b - a
			if a > b {
				want = 1 + a - b
			}
			if got := Coverage(a, b, a, b); got != want {
				t.Fatalf("self coverage [%d,%d] = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestAnyOverlap(t *testing.T) {
	regions := []Region{{Start: 3, End: 5}, {Start: 10, End: 12}}
	if !AnyOverlap(5, 7, regions) {
		t.Fatal("5-7 touches 3-5")
	}
	if AnyOverlap(6, 9, regions) {
		t.Fatal("6-9 is in the gap")
	}
	if AnyOverlap(1, 2, nil) {
		t.Fatal("no regions, no overlap")
	}
}

func TestRunLengthEncode(t *testing.T) {
	counts := []int{0, 1, 2, 2, 0, 1, 1}
	got := RunLengthEncode(counts, 1, false)
	want := []Region{{2, 4}, {6, 7}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("threshold 1: got %v want %v", got, want)
	}
	got = RunLengthEncode(counts, 2, false)
	want = []Region{{3, 4}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("threshold 2: got %v want %v", got, want)
	}
}

func TestRunLengthEncode_AllAndNone(t *testing.T) {
	all := []int{3, 1, 2, 5}
	if got := RunLengthEncode(all, 1, false); !reflect.DeepEqual(got, []Region{{1, 4}}) {
		t.Fatalf("all qualifying: got %v", got)
	}
	none := []int{0, 0, 0}
	if got := RunLengthEncode(none, 1, false); len(got) != 0 {
		t.Fatalf("none qualifying: got %v", got)
	}
	if got := RunLengthEncode([]int{}, 1, false); len(got) != 0 {
		t.Fatalf("empty input: got %v", got)
	}
}

func TestRunLengthEncode_Invert(t *testing.T) {
	counts := []int{0, 1, 2, 0, 0, 1}
	got := RunLengthEncode(counts, 1, true)
	want := []Region{{1, 1}, {4, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("invert: got %v want %v", got, want)
	}
	if got := RunLengthEncode(counts, 2, true); len(got) != 0 {
		t.Fatalf("inverted mask never reaches 2, got %v", got)
	}
}

func TestRunLengthEncode_Float(t *testing.T) {
	probs := []float64{0.1, 0.6, 0.7, 0.4, 0.5}
	got := RunLengthEncode(probs, 0.5, false)
	want := []Region{{2, 3}, {5, 5}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("float: got %v want %v", got, want)
	}
}

func TestIndexMatchesAnyOverlap(t *testing.T) {
	regions := []Region{{Start: 3, End: 5}, {Start: 10, End: 12}, {Start: 20, End: 20}}
	ix, err := NewIndex(regions)
	if err != nil {
		t.Fatal(err)
	}
	if ix.Len() != 3 {
		t.Fatalf("len: %d", ix.Len())
	}
	for s := 1; s <= 22; s++ {
		for e := s; e <= 22; e++ {
			if got, want := ix.Overlaps(s, e), AnyOverlap(s, e, regions); got != want {
				t.Fatalf("Overlaps(%d,%d) = %v, AnyOverlap = %v", s, e, got, want)
			}
		}
	}
}

func TestNilIndex(t *testing.T) {
	var ix *Index
	if ix.Overlaps(1, 10) || ix.Len() != 0 {
		t.Fatal("nil index must match nothing")
	}
	empty, err := NewIndex(nil)
	if err != nil {
		t.Fatal(err)
	}
	if empty.Overlaps(1, 10) {
		t.Fatal("empty index must match nothing")
	}
}
