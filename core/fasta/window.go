// core/fasta/window.go
package fasta

import (
	"bytes"
	"fmt"
	"io"
)

// WindowSize is the fixed capacity of the extraction buffer.
const WindowSize = 250_000

// Extractor copies indexed sequence out of a FASTA file through one fixed
// window, so memory use does not depend on sequence length.
type Extractor struct {
	src io.ReaderAt
	win []byte
}

func NewExtractor(src io.ReaderAt) *Extractor {
	return newExtractorSize(src, WindowSize)
}

func newExtractorSize(src io.ReaderAt, size int) *Extractor {
	return &Extractor{src: src, win: make([]byte, size)}
}

// Extract emits bases start..end (1-based, inclusive) of entry e in pieces of at
// most one window. With reverse set the pieces run from end to start and are
// reverse-complemented. A piece is only valid until emit returns.
func (x *Extractor) Extract(e Entry, start, end int, reverse bool, emit func([]byte) error) error {
	if start < 1 || end < start || end > e.Length {
		return fmt.Errorf("%w: %s:%d-%d, length %d", ErrOutOfRange, e.Name, start, end, e.Length)
	}
	first, last := e.ByteOffset(start), e.ByteOffset(end)
	want := end - start + 1
	got := 0
	size := int64(len(x.win))

	read := func(lo, hi int64) ([]byte, error) {
		buf := x.win[:hi-lo+1]
		n, err := x.src.ReadAt(buf, lo)
		if n < len(buf) {
			reason := "short read"
			if err == io.EOF {
				reason = "end of file"
			} else if err != nil {
				return nil, fmt.Errorf("read %s: %w", e.Name, err)
			}
			return nil, &TruncatedSequenceError{Name: e.Name, Start: start, End: end, Want: want, Got: got + n, Reason: reason}
		}
		if bytes.IndexByte(buf, '>') >= 0 {
			return nil, &TruncatedSequenceError{Name: e.Name, Start: start, End: end, Want: want, Got: got, Reason: "header inside sequence"}
		}
		seq := stripNewlines(buf)
		got += len(seq)
		if got > want {
			return nil, &TruncatedSequenceError{Name: e.Name, Start: start, End: end, Want: want, Got: got, Reason: "index does not match file"}
		}
		return seq, nil
	}

	if !reverse {
		for lo := first; lo <= last; lo += size {
			seq, err := read(lo, min(lo+size-1, last))
			if err != nil {
				return err
			}
			if err := emit(seq); err != nil {
				return err
			}
		}
	} else {
		for hi := last; hi >= first; hi -= size {
			seq, err := read(max(hi-size+1, first), hi)
			if err != nil {
				return err
			}
			ReverseComplement(seq)
			if err := emit(seq); err != nil {
				return err
			}
		}
	}
	if got != want {
		return &TruncatedSequenceError{Name: e.Name, Start: start, End: end, Want: want, Got: got, Reason: "index does not match file"}
	}
	return nil
}

// stripNewlines removes '\r' and '\n' from buf in place.
func stripNewlines(buf []byte) []byte {
	out := buf[:0]
	for _, b := range buf {
		if b != '\n' && b != '\r' {
			out = append(out, b)
		}
	}
	return out
}
