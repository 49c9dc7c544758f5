// core/fasta/writer.go
package fasta

import (
	"bufio"
	"bytes"
	"io"
)

// DefaultLineWidth is the number of bases per output line.
const DefaultLineWidth = 60

// Writer writes FASTA records, wrapping sequence at a fixed width whatever
// the shape of the pieces it is given.
type Writer struct {
	bw    *bufio.Writer
	width int
	col   int
}

// NewWriter wraps at width bases per line; width <= 0 writes each record on one line.
func NewWriter(w io.Writer, width int) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64<<10), width: width}
}

// Header ends the current record, if any, and starts a new one.
func (fw *Writer) Header(name string) error {
	fw.endLine()
	fw.bw.WriteByte('>')
	fw.bw.WriteString(name)
	_, err := fw.bw.WriteString("\n")
	return err
}

// Write appends sequence bases to the current record.
func (fw *Writer) Write(p []byte) (int, error) {
	total := len(p)
	if fw.width <= 0 {
		fw.col += len(p)
		_, err := fw.bw.Write(p)
		return total, err
	}
	for len(p) > 0 {
		n := min(fw.width-fw.col, len(p))
		if _, err := fw.bw.Write(p[:n]); err != nil {
			return total - len(p), err
		}
		p = p[n:]
		fw.col += n
		if fw.col == fw.width {
			if err := fw.bw.WriteByte('\n'); err != nil {
				return total - len(p), err
			}
			fw.col = 0
		}
	}
	return total, nil
}

var fillBlock = bytes.Repeat([]byte{'N'}, 4096)

// Fill appends n copies of b, as used for gaps.
func (fw *Writer) Fill(b byte, n int) error {
	block := fillBlock
	if b != 'N' {
		block = bytes.Repeat([]byte{b}, min(n, len(fillBlock)))
	}
	for n > 0 {
		k := min(n, len(block))
		if _, err := fw.Write(block[:k]); err != nil {
			return err
		}
		n -= k
	}
	return nil
}

func (fw *Writer) endLine() {
	if fw.col > 0 {
		fw.bw.WriteByte('\n')
		fw.col = 0
	}
}

// Flush terminates the last line and flushes buffered output.
func (fw *Writer) Flush() error {
	fw.endLine()
	return fw.bw.Flush()
}
