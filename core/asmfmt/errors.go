// core/asmfmt/errors.go
package asmfmt

import (
	"errors"
	"fmt"

	"tolasm/core/assembly"
)

var (
	ErrColumnCount   = errors.New("wrong column count")
	ErrComponentType = errors.New("unknown component type")
	ErrGapType       = errors.New("bad gap type or linkage")
	ErrInterval      = assembly.ErrInterval
	ErrLayout        = assembly.ErrLayout
)

// FormatError reports the first malformed line of an AGP or TPF file.
type FormatError struct {
	Source string // assembly name, usually the file name
	Line   int    // 1-based
	Text   string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("%s:%d: %v in line %q", e.Source, e.Line, e.Err, e.Text)
}

func (e *FormatError) Unwrap() error { return e.Err }
