package fasta

import (
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.fa")
	fh, err := CreateExclusive(path)
	if err != nil {
		t.Fatal(err)
	}
	_ = fh.Close()
	if _, err := CreateExclusive(path); !errors.Is(err, os.ErrExist) {
		t.Fatalf("second create err=%v, want ErrExist", err)
	}
}

func TestOpenGzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.agp.gz")
	fh, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gw := gzip.NewWriter(fh)
	_, _ = gw.Write([]byte("hello\n"))
	_ = gw.Close()
	_ = fh.Close()

	rc, err := OpenText(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil || string(b) != "hello\n" {
		t.Fatalf("read %q err=%v", b, err)
	}

	if _, err := OpenIndexed(path); !errors.Is(err, ErrCompressed) {
		t.Fatalf("OpenIndexed err=%v, want ErrCompressed", err)
	}
}
