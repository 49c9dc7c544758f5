// internal/cliutil/cliutil.go
package cliutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"tolasm/core/assembly"
	"tolasm/core/overlap"
)

// SplitFilesAndBaits separates "name:start-end" baits from file paths. An
// argument that names an existing file is always a file, so a file called
// "chr1:1-10" can still be read.
func SplitFilesAndBaits(args []string, exists func(string) bool) (files []string, baits []assembly.Interval, err error) {
	for _, a := range args {
		if exists(a) {
			files = append(files, a)
			continue
		}
		iv, ok, err := overlap.ParseBait(a)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			baits = append(baits, iv)
			continue
		}
		files = append(files, a)
	}
	return files, baits, nil
}

func hasGlobMeta(s string) bool { return strings.ContainsAny(s, "*?[") }

// ExpandPositionals expands any globs among path-like positionals.
func ExpandPositionals(posArgs []string) ([]string, error) {
	var out []string
	for _, a := range posArgs {
		if a == "-" {
			out = append(out, a)
			continue
		}
		if hasGlobMeta(a) {
			m, err := filepath.Glob(a)
			if err != nil {
				return nil, fmt.Errorf("bad glob %q: %v", a, err)
			}
			if len(m) == 0 {
				return nil, fmt.Errorf("no input matched %q", a)
			}
			out = append(out, m...)
		} else {
			out = append(out, a)
		}
	}
	return out, nil
}
