// Package fasta reads FASTA files through their .fai positional index,
// with bounded memory, and writes line-wrapped FASTA.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Entry is one row of a .fai index.
type Entry struct {
	Name      string
	Length    int   // bases
	Offset    int64 // byte offset of the first base
	LineBases int   // bases per full line
	LineWidth int   // bytes per full line, terminator included
}

// ByteOffset is the file offset of 1-based position pos.
func (e Entry) ByteOffset(pos int) int64 {
	p := int64(pos - 1)
	return e.Offset + p/int64(e.LineBases)*int64(e.LineWidth) + p%int64(e.LineBases)
}

// Index maps sequence names to their layout in a FASTA file, in file order.
type Index struct {
	entries []Entry
	byName  map[string]int
}

func NewIndex() *Index { return &Index{byName: map[string]int{}} }

// Add appends an entry; names must be unique.
func (x *Index) Add(e Entry) error {
	if _, dup := x.byName[e.Name]; dup {
		return fmt.Errorf("%w: duplicate sequence name %q", ErrIndex, e.Name)
	}
	x.byName[e.Name] = len(x.entries)
	x.entries = append(x.entries, e)
	return nil
}

func (x *Index) Lookup(name string) (Entry, bool) {
	i, ok := x.byName[name]
	if !ok {
		return Entry{}, false
	}
	return x.entries[i], true
}

// Entries returns the entries in file order.
func (x *Index) Entries() []Entry { return x.entries }

func (x *Index) Len() int { return len(x.entries) }

// ReadIndex parses a .fai file. Rows have five columns, or four, in which case
// the line width is taken to be one more than the line length.
func ReadIndex(r io.Reader) (*Index, error) {
	x := NewIndex()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		f := strings.Split(line, "\t")
		if len(f) != 4 && len(f) != 5 {
			return nil, fmt.Errorf("%w: line %d: %d columns, want 4 or 5", ErrIndex, n, len(f))
		}
		var nums [4]int64
		for i, col := range f[1:] {
			v, err := strconv.ParseInt(col, 10, 64)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w: line %d: bad number %q", ErrIndex, n, col)
			}
			nums[i] = v
		}
		e := Entry{Name: f[0], Length: int(nums[0]), Offset: nums[1], LineBases: int(nums[2])}
		if len(f) == 5 {
			e.LineWidth = int(nums[3])
		} else {
			e.LineWidth = e.LineBases + 1
		}
		if e.Length > 0 && (e.LineBases < 1 || e.LineWidth < e.LineBases) {
			return nil, fmt.Errorf("%w: line %d: line bases %d, line width %d", ErrIndex, n, e.LineBases, e.LineWidth)
		}
		if err := x.Add(e); err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read index: %w", err)
	}
	return x, nil
}

// WriteTo writes the five column .fai form.
func (x *Index) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, e := range x.entries {
		n, err := fmt.Fprintf(bw, "%s\t%d\t%d\t%d\t%d\n", e.Name, e.Length, e.Offset, e.LineBases, e.LineWidth)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, bw.Flush()
}
