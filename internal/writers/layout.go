// internal/writers/layout.go
package writers

import (
	"io"
	"strings"

	"tolasm/core/asmfmt"
	"tolasm/core/assembly"
)

func init() {
	for _, f := range []asmfmt.Format{asmfmt.AGP, asmfmt.TPF, asmfmt.STR} {
		f := f
		RegisterLayout(strings.ToLower(f.String()), func(w io.Writer, a *assembly.Assembly) error {
			return asmfmt.Write(w, a, f)
		})
	}
}
