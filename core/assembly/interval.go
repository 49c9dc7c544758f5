// core/assembly/interval.go
package assembly

import (
	"errors"
	"fmt"
)

// ErrInterval is returned by NewInterval for impossible coordinates.
var ErrInterval = errors.New("invalid interval")

// Interval is a 1-based, inclusive span of a named sequence with an orientation.
// The zero value is not a valid interval; build one with NewInterval.
type Interval struct {
	name   string
	start  int
	end    int
	strand Strand
}

// NewInterval validates 1 <= start <= end.
func NewInterval(name string, start, end int, strand Strand) (Interval, error) {
	if name == "" {
		return Interval{}, fmt.Errorf("%w: empty sequence name", ErrInterval)
	}
	if start < 1 {
		return Interval{}, fmt.Errorf("%w: %s start %d < 1", ErrInterval, name, start)
	}
	if start > end {
		return Interval{}, fmt.Errorf("%w: %s start %d > end %d", ErrInterval, name, start, end)
	}
	if strand != Plus && strand != Minus {
		return Interval{}, fmt.Errorf("%w: %s bad strand %d", ErrInterval, name, strand)
	}
	return Interval{name: name, start: start, end: end, strand: strand}, nil
}

// MustInterval is NewInterval for literals known to be valid.
func MustInterval(name string, start, end int, strand Strand) Interval {
	iv, err := NewInterval(name, start, end, strand)
	if err != nil {
		panic(err)
	}
	return iv
}

func (iv Interval) Name() string     { return iv.name }
func (iv Interval) Start() int       { return iv.start }
func (iv Interval) End() int         { return iv.end }
func (iv Interval) Strand() Strand   { return iv.strand }
func (iv Interval) Length() int      { return iv.end - iv.start + 1 }
func (iv Interval) Reverse() Interval { iv.strand = iv.strand.Flip(); return iv }

// Key identifies the span irrespective of strand.
func (iv Interval) Key() IntervalKey { return IntervalKey{iv.name, iv.start, iv.end} }

// IntervalKey is an orientation-free (name, start, end) triple usable as a map key.
type IntervalKey struct {
	Name       string
	Start, End int
}

// Overlaps reports whether both spans share at least one base of the same sequence.
func (iv Interval) Overlaps(o Interval) bool {
	return iv.name == o.name && iv.start <= o.end && o.start <= iv.end
}

// OverlapLength is the number of shared bases (0 when disjoint).
func (iv Interval) OverlapLength(o Interval) int {
	if !iv.Overlaps(o) {
		return 0
	}
	lo, hi := max(iv.start, o.start), min(iv.end, o.end)
	return hi - lo + 1
}

// Abuts reports whether the spans are adjacent with no bases between them.
func (iv Interval) Abuts(o Interval) bool {
	return iv.name == o.name && (iv.end+1 == o.start || o.end+1 == iv.start)
}

// Contains reports whether o lies entirely within iv.
func (iv Interval) Contains(o Interval) bool {
	return iv.name == o.name && iv.start <= o.start && o.end <= iv.end
}

// String renders name:start-end(+).
func (iv Interval) String() string {
	return fmt.Sprintf("%s:%d-%d(%s)", iv.name, iv.start, iv.end, iv.strand)
}

// Equal compares all four fields.
func (iv Interval) Equal(o Interval) bool { return iv == o }
