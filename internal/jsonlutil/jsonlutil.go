// internal/jsonlutil/jsonlutil.go
package jsonlutil

import (
	"bufio"
	"encoding/json"
	"io"
)

// Stream encodes values of type T, one JSON document per line, on a
// background goroutine so that producers can keep reading input while
// output drains.
type Stream[T any] struct {
	in   chan T
	done chan error
}

// Start begins streaming to out. conv maps a value to its wire type and
// isBroken recognizes closed-pipe errors, which end the stream quietly.
func Start[T any](out io.Writer, bufSize int, conv func(T) any, isBroken func(error) bool) *Stream[T] {
	if bufSize <= 0 {
		bufSize = 64
	}
	s := &Stream[T]{in: make(chan T, bufSize), done: make(chan error, 1)}

	go func() {
		bw := bufio.NewWriterSize(out, 64<<10)
		enc := json.NewEncoder(bw)
		var err error
		for v := range s.in {
			if err != nil {
				continue // drain so Send never blocks
			}
			err = enc.Encode(conv(v))
		}
		if err == nil {
			err = bw.Flush()
		}
		if err != nil && isBroken(err) {
			err = nil
		}
		s.done <- err
	}()
	return s
}

// Send queues v for encoding.
func (s *Stream[T]) Send(v T) { s.in <- v }

// Close waits for queued values to be written and returns the first error.
func (s *Stream[T]) Close() error {
	close(s.in)
	return <-s.done
}
