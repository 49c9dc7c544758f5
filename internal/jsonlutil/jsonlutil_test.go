package jsonlutil

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

type pt struct{ X, Y int }

func TestStreamWritesLines(t *testing.T) {
	var b bytes.Buffer
	s := Start[pt](&b, 1, func(p pt) any { return map[string]int{"x": p.X} }, func(error) bool { return false })
	for i := 0; i < 3; i++ {
		s.Send(pt{X: i})
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if b.String() != "{\"x\":0}\n{\"x\":1}\n{\"x\":2}\n" {
		t.Fatalf("got %q", b.String())
	}
}

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStreamReportsAndDrains(t *testing.T) {
	boom := errors.New("boom")
	s := Start[pt](failWriter{boom}, 1, func(p pt) any { return p }, func(error) bool { return false })
	for i := 0; i < 10; i++ {
		s.Send(pt{X: i})
	}
	if err := s.Close(); !errors.Is(err, boom) {
		t.Fatalf("err=%v want boom", err)
	}

	s = Start[pt](failWriter{io.ErrClosedPipe}, 1, func(p pt) any { return p },
		func(err error) bool { return errors.Is(err, io.ErrClosedPipe) })
	s.Send(pt{})
	if err := s.Close(); err != nil {
		t.Fatalf("broken pipe should be quiet, got %v", err)
	}
}
