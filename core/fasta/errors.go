// core/fasta/errors.go
package fasta

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated  = errors.New("truncated sequence")
	ErrIndex      = errors.New("bad FASTA index")
	ErrOutOfRange = errors.New("position outside sequence")
)

// TruncatedSequenceError means the bytes at an indexed position did not hold the
// expected number of bases: the index does not describe the file.
type TruncatedSequenceError struct {
	Name       string
	Start, End int // 1-based, inclusive
	Want, Got  int // bases
	Reason     string
}

func (e *TruncatedSequenceError) Error() string {
	return fmt.Sprintf("%v %s:%d-%d: want %d bases, got %d (%s)",
		ErrTruncated, e.Name, e.Start, e.End, e.Want, e.Got, e.Reason)
}

func (e *TruncatedSequenceError) Unwrap() error { return ErrTruncated }
