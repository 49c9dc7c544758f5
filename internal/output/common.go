// internal/output/common.go
package output

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Output formats for overlap reports.
const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

var printer = message.NewPrinter(language.English)

// BasePairs renders n with thousands separators, e.g. "12,345".
func BasePairs(n int) string { return printer.Sprintf("%d", n) }
