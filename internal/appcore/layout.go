// internal/appcore/layout.go
package appcore

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"tolasm/core/asmfmt"
	"tolasm/core/assembly"
	"tolasm/core/fasta"
)

// Stem is the file name without directory, ".gz" and extension; "stdin" for "-".
func Stem(path string) string {
	if path == "-" || path == "" {
		return "stdin"
	}
	base := strings.TrimSuffix(filepath.Base(path), ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadLayout parses an AGP or TPF file ("-" for stdin, gzip allowed).
// Format errors name path rather than the assembly.
func ReadLayout(path string, f asmfmt.Format, name string) (*assembly.Assembly, error) {
	r, err := fasta.OpenText(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	a, err := asmfmt.Parse(r, f, name)
	var fe *asmfmt.FormatError
	if errors.As(err, &fe) {
		fe.Source = path
	}
	return a, err
}

// CreateFile writes a new file at path through write. path must not exist;
// on failure the partial file is removed.
func CreateFile(path string, write func(io.Writer) error) (err error) {
	fh, err := fasta.CreateExclusive(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			if rerr := os.Remove(path); rerr != nil && !errors.Is(rerr, os.ErrNotExist) {
				err = errors.Join(err, rerr)
			}
		}
	}()
	bw := bufio.NewWriter(fh)
	if err := write(bw); err != nil {
		return err
	}
	return bw.Flush()
}
