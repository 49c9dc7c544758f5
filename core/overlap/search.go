// core/overlap/search.go
package overlap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"tolasm/core/assembly"
)

// Hit is a component overlapping a bait interval.
type Hit struct {
	Location
	Position string // "only row", "first row", "last row" or "row N"
	Bait     assembly.Interval
	Overlap  int
}

var baitRE = regexp.MustCompile(`^([-\w.|]+):([\d_,]+)-([\d_,]+)$`)

// ParseBait reads "name:start-end". Digit separators "_" and "," are allowed.
// ok is false when txt does not look like a bait, err is set when it does but is invalid.
func ParseBait(txt string) (iv assembly.Interval, ok bool, err error) {
	m := baitRE.FindStringSubmatch(txt)
	if m == nil {
		return assembly.Interval{}, false, nil
	}
	clean := strings.NewReplacer("_", "", ",", "")
	start, err := strconv.Atoi(clean.Replace(m[2]))
	if err != nil {
		return assembly.Interval{}, true, fmt.Errorf("bait %q: %w", txt, err)
	}
	end, err := strconv.Atoi(clean.Replace(m[3]))
	if err != nil {
		return assembly.Interval{}, true, fmt.Errorf("bait %q: %w", txt, err)
	}
	iv, err = assembly.NewInterval(m[1], start, end, assembly.Plus)
	if err != nil {
		return assembly.Interval{}, true, fmt.Errorf("bait %q: %w", txt, err)
	}
	return iv, true, nil
}

// Search reports every component overlapping any of the baits, in layout order.
func Search(a *assembly.Assembly, baits []assembly.Interval) []Hit {
	var out []Hit
	for _, s := range a.Scaffolds() {
		for i, r := range s.Rows {
			c, ok := r.(assembly.Component)
			if !ok {
				continue
			}
			for _, b := range baits {
				n := b.OverlapLength(c.Interval)
				if n == 0 {
					continue
				}
				out = append(out, Hit{
					Location: Location{Scaffold: s.Name, Row: i, Component: c},
					Position: rowPosition(len(s.Rows), i),
					Bait:     b,
					Overlap:  n,
				})
			}
		}
	}
	return out
}

func rowPosition(rows, i int) string {
	switch {
	case rows == 1:
		return "only row"
	case i == 0:
		return "first row"
	case i == rows-1:
		return "last row"
	}
	return fmt.Sprintf("row %d", i+1)
}
