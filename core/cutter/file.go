// core/cutter/file.go
package cutter

import (
	"errors"
	"os"

	"tolasm/core/assembly"
	"tolasm/core/fasta"
	"tolasm/core/reproject"
)

// CutToFile writes the FASTA for a to path, which must not exist yet.
// On failure the partial file is removed.
func (c *Cutter) CutToFile(path string, a *assembly.Assembly, ins []reproject.Instruction) (err error) {
	fh, err := fasta.CreateExclusive(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			err = errors.Join(err, removeQuiet(path))
		}
	}()
	return c.Write(fh, a, ins)
}

func removeQuiet(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
