// core/reproject/errors.go
package reproject

import (
	"errors"
	"fmt"
	"strings"

	"tolasm/core/assembly"
)

var (
	ErrCoordinateRange   = errors.New("interval outside sequence bounds")
	ErrUnknownSequence   = errors.New("unknown sequence")
	ErrDuplicateFragment = errors.New("sequence consumed more than once")
	ErrTagging           = errors.New("inconsistent tags")
	ErrNameClash         = errors.New("scaffold name used twice")
)

// CoordinateRangeError is a curated component extending past the end of its sequence.
type CoordinateRangeError struct {
	Scaffold string
	Row      int // 1-based
	Interval assembly.Interval
	Length   int // length of the original sequence
}

func (e *CoordinateRangeError) Error() string {
	return fmt.Sprintf("%v: %s row %d: %s but %s is %d bp",
		ErrCoordinateRange, e.Scaffold, e.Row, e.Interval, e.Interval.Name(), e.Length)
}

func (e *CoordinateRangeError) Unwrap() error { return ErrCoordinateRange }

// UnknownSequenceError is a curated component naming a sequence the original lacks.
type UnknownSequenceError struct {
	Scaffold string
	Row      int
	Interval assembly.Interval
}

func (e *UnknownSequenceError) Error() string {
	return fmt.Sprintf("%v %q: %s row %d: %s",
		ErrUnknownSequence, e.Interval.Name(), e.Scaffold, e.Row, e.Interval)
}

func (e *UnknownSequenceError) Unwrap() error { return ErrUnknownSequence }

// DuplicateFragmentError is two curated components sharing original bases.
type DuplicateFragmentError struct {
	Scaffold      string
	Row           int
	Interval      assembly.Interval
	OtherScaffold string
	OtherRow      int
	Other         assembly.Interval
}

func (e *DuplicateFragmentError) Error() string {
	return fmt.Sprintf("%v: %s row %d: %s overlaps %s row %d: %s",
		ErrDuplicateFragment, e.Scaffold, e.Row, e.Interval, e.OtherScaffold, e.OtherRow, e.Other)
}

func (e *DuplicateFragmentError) Unwrap() error { return ErrDuplicateFragment }

// TaggingError is a curated scaffold whose tags contradict each other or
// break a naming rule.
type TaggingError struct {
	Scaffold string
	Tags     []string
	Reason   string
}

func (e *TaggingError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = strings.Join(e.Tags, ", ")
	}
	return fmt.Sprintf("%v in scaffold %s: %s", ErrTagging, e.Scaffold, msg)
}

func (e *TaggingError) Unwrap() error { return ErrTagging }

// NameClashError is an output scaffold name claimed by two curated scaffolds.
type NameClashError struct {
	Name     string
	Scaffold string
	Other    string
}

func (e *NameClashError) Error() string {
	return fmt.Sprintf("%v: %s from both %s and %s", ErrNameClash, e.Name, e.Other, e.Scaffold)
}

func (e *NameClashError) Unwrap() error { return ErrNameClash }
