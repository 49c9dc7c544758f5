// internal/output/summary.go
package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"tolasm/core/reproject"
	"tolasm/pkg/api"
)

// ToAPISummary converts curation statistics to the v1 schema. names gives the
// output assembly name for each set.
func ToAPISummary(st reproject.Stats, names map[string]string) api.CurationSummaryV1 {
	s := api.CurationSummaryV1{
		Assemblies: make([]api.AssemblySummaryV1, 0, len(st.Sets)),
		Cuts:       st.Cuts,
		Breaks:     st.Breaks,
		Joins:      st.Joins,
	}
	for _, set := range st.Sets {
		s.Assemblies = append(s.Assemblies, api.AssemblySummaryV1{
			Name:       names[set.Name],
			Set:        set.Name,
			Scaffolds:  set.Scaffolds,
			Components: set.Components,
			Length:     set.ComponentsLength,
		})
		if set.Name == reproject.SetHaplotig {
			s.HaplotigRemovals = set.Scaffolds
		}
	}
	return s
}

// WriteSummaryYAML writes s as a YAML document.
func WriteSummaryYAML(w io.Writer, s api.CurationSummaryV1) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return err
	}
	return enc.Close()
}
