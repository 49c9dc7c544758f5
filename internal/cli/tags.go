// internal/cli/tags.go
package cli

import (
	"sort"
	"strings"

	"tolasm/core/assembly"
	"tolasm/internal/cmdutil"
)

// AllowedTags is the built-in vocabulary plus extra, normalized and sorted.
func AllowedTags(extra []string) []string {
	return assembly.NewTags(append(assembly.KnownTags(), extra...)...).List()
}

// ValidateTags rejects tags outside AllowedTags(extra). The returned slice
// holds the canonical spellings.
func ValidateTags(tags, extra []string) ([]string, error) {
	allowed := assembly.NewTags(AllowedTags(extra)...)
	out := make([]string, 0, len(tags))
	var bad []string
	for _, t := range tags {
		if !allowed.Has(t) {
			bad = append(bad, t)
			continue
		}
		out = append(out, assembly.NormalizeTag(t))
	}
	if len(bad) > 0 {
		sort.Strings(bad)
		return nil, cmdutil.Usagef("unknown tag(s) %s; allowed: %s",
			strings.Join(bad, ", "), strings.Join(AllowedTags(extra), ", "))
	}
	return out, nil
}
