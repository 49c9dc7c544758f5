// core/fasta/build.go
package fasta

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// BuildIndex indexes the FASTA file at path. The file is memory mapped and
// scanned once.
func BuildIndex(path string) (*Index, error) {
	fh, err := OpenIndexed(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	st, err := fh.Stat()
	if err != nil {
		return nil, err
	}
	if st.Size() == 0 {
		return NewIndex(), nil
	}
	mm, err := mmap.Map(fh, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer mm.Unmap()

	x, err := ScanIndex(mm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, nil
}

// ScanIndex computes the index of FASTA data held in memory. Every line of a
// record but the last must have the same length.
func ScanIndex(data []byte) (*Index, error) {
	x := NewIndex()
	var (
		cur     *Entry
		short   bool // saw a line shorter than LineBases
		lineNum int
	)
	finish := func() error {
		if cur == nil {
			return nil
		}
		err := x.Add(*cur)
		cur = nil
		return err
	}

	for pos := 0; pos < len(data); {
		lineNum++
		end := bytes.IndexByte(data[pos:], '\n')
		next := len(data)
		if end >= 0 {
			end += pos
			next = end + 1
		} else {
			end = len(data)
		}
		line := data[pos:end]
		width := next - pos
		bases := len(bytes.TrimRight(line, "\r"))

		switch {
		case len(line) > 0 && line[0] == '>':
			if err := finish(); err != nil {
				return nil, err
			}
			cur = &Entry{Name: parseHeaderID(line[1:]), Offset: int64(next)}
			if cur.Name == "" {
				return nil, fmt.Errorf("%w: line %d: empty sequence name", ErrIndex, lineNum)
			}
			short = false
		case cur == nil:
			if bases > 0 {
				return nil, fmt.Errorf("%w: line %d: sequence before first header", ErrIndex, lineNum)
			}
		case bases == 0:
			short = true
		default:
			if short {
				return nil, fmt.Errorf("%w: line %d: %s has inconsistent line lengths", ErrIndex, lineNum, cur.Name)
			}
			if cur.LineBases == 0 {
				cur.LineBases, cur.LineWidth = bases, width
			} else if bases > cur.LineBases || (bases == cur.LineBases && width != cur.LineWidth && next != len(data)) {
				return nil, fmt.Errorf("%w: line %d: %s has inconsistent line lengths", ErrIndex, lineNum, cur.Name)
			} else if bases < cur.LineBases {
				short = true
			}
			cur.Length += bases
		}
		pos = next
	}
	if err := finish(); err != nil {
		return nil, err
	}
	return x, nil
}

func parseHeaderID(hdr []byte) string {
	hdr = bytes.TrimSpace(hdr)
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}

// LoadIndex returns the index for fastaPath, reading "<fastaPath>.fai" when it is
// at least as new as the FASTA file and building (and saving) it otherwise.
// built reports whether a new index was written.
func LoadIndex(fastaPath string) (x *Index, built bool, err error) {
	faiPath := fastaPath + ".fai"
	fa, err := os.Stat(fastaPath)
	if err != nil {
		return nil, false, err
	}
	if fai, err := os.Stat(faiPath); err == nil && !fai.ModTime().Before(fa.ModTime()) {
		fh, err := os.Open(faiPath)
		if err != nil {
			return nil, false, err
		}
		defer fh.Close()
		x, err := ReadIndex(fh)
		if err != nil {
			return nil, false, fmt.Errorf("%s: %w", faiPath, err)
		}
		return x, false, nil
	}
	x, err = BuildIndex(fastaPath)
	if err != nil {
		return nil, false, err
	}
	if err := SaveIndex(x, faiPath); err != nil {
		return nil, false, err
	}
	return x, true, nil
}

// SaveIndex writes x to path, replacing any existing file.
func SaveIndex(x *Index, path string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := x.WriteTo(fh); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
