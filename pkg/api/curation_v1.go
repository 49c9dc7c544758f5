// pkg/api/curation_v1.go
package api

// CurationSummaryV1 is written next to pretext-to-asm output as <stem>.info.yaml.
// Keys follow the curation pipeline's existing report, so keep them stable.
type CurationSummaryV1 struct {
	Assemblies       []AssemblySummaryV1 `json:"assemblies" yaml:"assemblies"`
	Cuts             int                 `json:"manual_cuts" yaml:"manual_cuts"`
	Breaks           int                 `json:"manual_breaks,omitempty" yaml:"manual_breaks,omitempty"`
	Joins            int                 `json:"manual_joins,omitempty" yaml:"manual_joins,omitempty"`
	HaplotigRemovals int                 `json:"manual_haplotig_removals" yaml:"manual_haplotig_removals"`
}

// AssemblySummaryV1 describes one output assembly.
type AssemblySummaryV1 struct {
	Name       string `json:"name" yaml:"name"`
	Set        string `json:"set,omitempty" yaml:"set,omitempty"`
	Scaffolds  int    `json:"scaffolds" yaml:"scaffolds"`
	Components int    `json:"components" yaml:"components"`
	Length     int    `json:"length" yaml:"length"` // bases in components, gaps excluded
}
