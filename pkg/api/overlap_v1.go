// pkg/api/overlap_v1.go
package api

// OverlapV1 is the stable JSON/JSONL schema for one find-overlaps hit.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type OverlapV1 struct {
	File     string   `json:"file"`
	Scaffold string   `json:"scaffold"`
	Row      int      `json:"row"`      // 1-based
	Position string   `json:"position"` // "only row" | "first row" | "last row" | "row N"
	Name     string   `json:"name"`
	Start    int      `json:"start"`
	End      int      `json:"end"`
	Strand   string   `json:"strand"` // "+" | "-"
	Tags     []string `json:"tags,omitempty"`
	Bait     string   `json:"bait"` // name:start-end
	Overlap  int      `json:"overlap"`
}
