package cmdutil

import (
	"context"
	"errors"
	"fmt"

	"tolasm/core/asmfmt"
	"tolasm/core/fasta"
	"tolasm/core/reproject"
)

// Exit codes shared by every tool.
const (
	ExitOK          = 0
	ExitUsage       = 2 // bad arguments or bad input data
	ExitIO          = 3 // read/write failures, truncated sequence, existing output
	ExitInterrupted = 130
)

// UsageError marks a mistake in how a tool was invoked.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError from a format string.
func Usagef(format string, a ...any) error {
	return &UsageError{Err: fmt.Errorf(format, a...)}
}

// inputErrors are problems with the content of input files, as opposed to
// the act of reading or writing them.
var inputErrors = []error{
	asmfmt.ErrColumnCount,
	asmfmt.ErrComponentType,
	asmfmt.ErrGapType,
	asmfmt.ErrInterval,
	asmfmt.ErrLayout,
	reproject.ErrCoordinateRange,
	reproject.ErrUnknownSequence,
	reproject.ErrDuplicateFragment,
	reproject.ErrTagging,
	reproject.ErrNameClash,
	fasta.ErrIndex,
	fasta.ErrCompressed,
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	var ue *UsageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	var fe *asmfmt.FormatError
	if errors.As(err, &fe) {
		return ExitUsage
	}
	for _, sentinel := range inputErrors {
		if errors.Is(err, sentinel) {
			return ExitUsage
		}
	}
	return ExitIO
}
