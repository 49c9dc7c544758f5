package fasta

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// collect runs Extract and concatenates the emitted pieces.
func collect(t *testing.T, x *Extractor, e Entry, start, end int, reverse bool) (string, int, error) {
	t.Helper()
	var out bytes.Buffer
	pieces := 0
	err := x.Extract(e, start, end, reverse, func(p []byte) error {
		pieces++
		out.Write(p)
		return nil
	})
	return out.String(), pieces, err
}

func indexOf(t *testing.T, data string) *Index {
	t.Helper()
	idx, err := ScanIndex([]byte(data))
	if err != nil {
		t.Fatalf("ScanIndex: %v", err)
	}
	return idx
}

func TestExtractAcrossLinesAndWindows(t *testing.T) {
	src := wrapped
	idx := indexOf(t, src)
	e, _ := idx.Lookup("chr1") // ACGTACGTACGT
	for _, size := range []int{1, 2, 3, 7, WindowSize} {
		x := newExtractorSize(strings.NewReader(src), size)
		got, pieces, err := collect(t, x, e, 4, 11, false)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		if got != "TACGTACG" {
			t.Fatalf("size %d: forward = %q", size, got)
		}
		if size == 1 && pieces < 8 {
			t.Fatalf("window of 1 byte should emit one base per piece, got %d pieces", pieces)
		}
		got, _, err = collect(t, x, e, 4, 11, true)
		if err != nil {
			t.Fatalf("size %d reverse: %v", size, err)
		}
		if got != "CGTACGTA" {
			t.Fatalf("size %d: reverse = %q", size, got)
		}
	}
}

func TestExtractMinusStrand(t *testing.T) {
	src := ">s\nAAC\nG\n"
	e, _ := indexOf(t, src).Lookup("s")
	got, _, err := collect(t, NewExtractor(strings.NewReader(src)), e, 1, 4, true)
	if err != nil || got != "CGTT" {
		t.Fatalf("got %q err=%v, want CGTT", got, err)
	}
}

func TestExtractCRLF(t *testing.T) {
	src := ">s\r\nACG\r\nTTA\r\nC\r\n"
	e, _ := indexOf(t, src).Lookup("s")
	x := newExtractorSize(strings.NewReader(src), 4)
	got, _, err := collect(t, x, e, 2, 7, false)
	if err != nil || got != "CGTTAC" {
		t.Fatalf("got %q err=%v", got, err)
	}
}

func TestExtractTruncated(t *testing.T) {
	full := ">s\nACGTA\nCGTAC\n"
	e, _ := indexOf(t, full).Lookup("s")

	cases := map[string]string{
		"file cut short":    full[:12],
		"header in span":    ">s\nACGTA\n>x\nAC\n",
		"line width change": ">s\nACG\nTACGT\nAC\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := collect(t, NewExtractor(strings.NewReader(src)), e, 1, 10, false)
			var te *TruncatedSequenceError
			if !errors.As(err, &te) || !errors.Is(err, ErrTruncated) {
				t.Fatalf("err=%v, want TruncatedSequenceError", err)
			}
			if te.Name != "s" || te.Want != 10 {
				t.Fatalf("context = %+v", te)
			}
		})
	}
}

func TestExtractOutOfRange(t *testing.T) {
	e := Entry{Name: "s", Length: 10, Offset: 3, LineBases: 5, LineWidth: 6}
	x := NewExtractor(strings.NewReader(""))
	for _, r := range [][2]int{{0, 3}, {5, 11}, {6, 5}} {
		if err := x.Extract(e, r[0], r[1], false, func([]byte) error { return nil }); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Extract(%d,%d) err=%v", r[0], r[1], err)
		}
	}
}

func TestExtractStopsOnEmitError(t *testing.T) {
	src := wrapped
	e, _ := indexOf(t, src).Lookup("chr1")
	stop := errors.New("stop")
	calls := 0
	err := newExtractorSize(strings.NewReader(src), 2).Extract(e, 1, 12, false, func([]byte) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) || calls != 1 {
		t.Fatalf("err=%v calls=%d", err, calls)
	}
}
