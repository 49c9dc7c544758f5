// core/fasta/open.go
package fasta

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrCompressed is returned when random access is needed on a gzip file.
var ErrCompressed = errors.New("compressed file cannot be read by position")

// gzipFile closes the decompressor and then the file under it.
type gzipFile struct {
	*gzip.Reader
	fh *os.File
}

func (g gzipFile) Close() error {
	err := g.Reader.Close()
	if ferr := g.fh.Close(); err == nil {
		err = ferr
	}
	return err
}

func isGzip(fh *os.File, path string) bool {
	var sig [2]byte
	n, _ := fh.ReadAt(sig[:], 0)
	return (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz")
}

// OpenText opens a text input for sequential reading. "-" is stdin and gzip
// input is decompressed transparently.
func OpenText(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if isGzip(fh, path) {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return gzipFile{Reader: gr, fh: fh}, nil
	}
	return fh, nil
}

// OpenIndexed opens an uncompressed FASTA file read-only for positional reads.
func OpenIndexed(path string) (*os.File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if isGzip(fh, path) {
		_ = fh.Close()
		return nil, fmt.Errorf("%s: %w", path, ErrCompressed)
	}
	return fh, nil
}

// CreateExclusive creates path for writing and fails if it already exists.
func CreateExclusive(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
}
