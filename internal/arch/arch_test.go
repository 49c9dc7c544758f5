// internal/arch/arch_test.go
package arch

import (
	"bytes"
	"encoding/json"
	"io"
	"os/exec"
	"strings"
	"testing"
)

type pkg struct {
	ImportPath string
	Imports    []string
	Standard   bool
}

var apps = []string{
	"tolasm/internal/formatapp", "tolasm/internal/overlapapp",
	"tolasm/internal/reprojectapp", "tolasm/internal/indexapp",
	"tolasm/internal/appcore", "tolasm/internal/appshell",
}

func TestImportBoundaries(t *testing.T) {
	cmd := exec.Command("go", "list", "-json", "tolasm/...")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		t.Fatalf("go list: %v", err)
	}
	dec := json.NewDecoder(&out)

	bans := map[string][]string{
		// Domain code never reaches into the tools.
		"tolasm/core/": {"tolasm/internal/", "tolasm/cmd/", "tolasm/pkg/"},
		"tolasm/pkg/":  {"tolasm/core/", "tolasm/internal/", "tolasm/cmd/"},
		"tolasm/internal/output": append([]string{
			"tolasm/internal/cli", "tolasm/internal/writers", "tolasm/cmd/",
		}, apps...),
		"tolasm/internal/writers": append([]string{"tolasm/internal/cli", "tolasm/cmd/"}, apps...),
		"tolasm/internal/cli":     append([]string{"tolasm/internal/writers", "tolasm/cmd/"}, apps...),
		"tolasm/internal/config":  {"tolasm/"},
	}

	var violations []string
	for {
		var p pkg
		if err := dec.Decode(&p); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode: %v", err)
		}
		imp := p.ImportPath
		for prefix, forbidden := range bans {
			if !strings.HasPrefix(imp, prefix) {
				continue
			}
			for _, dep := range p.Imports {
				if !strings.HasPrefix(dep, "tolasm/") {
					continue
				}
				for _, ban := range forbidden {
					if strings.HasPrefix(dep, ban) {
						violations = append(violations, imp+" → "+dep)
					}
				}
			}
		}
	}

	if len(violations) > 0 {
		t.Fatalf("import boundary violations:\n  %s", strings.Join(violations, "\n  "))
	}
}
