// core/reproject/naming.go
package reproject

import (
	"fmt"
	"sort"
	"strconv"

	"tolasm/core/assembly"
)

// DefaultAutosomePrefix starts the names of painted chromosomes.
const DefaultAutosomePrefix = "SUPER_"

// namer hands out destination scaffold names and refuses to give one name
// to two curated scaffolds.
type namer struct {
	prefix    string
	owner     map[string]string // destination name -> curated scaffold
	haplotigN int
}

func newNamer(prefix string) *namer {
	if prefix == "" {
		prefix = DefaultAutosomePrefix
	}
	return &namer{prefix: prefix, owner: map[string]string{}}
}

func (nm *namer) claim(name, scaffold string) error {
	if other, ok := nm.owner[name]; ok && other != scaffold {
		return &NameClashError{Name: name, Scaffold: scaffold, Other: other}
	}
	nm.owner[name] = scaffold
	return nil
}

// fresh returns the first of format(n+1), format(n+2), ... not yet claimed,
// and claims it.
func (nm *namer) fresh(format string, n *int, scaffold string) string {
	for {
		*n++
		name := fmt.Sprintf(format, *n)
		if _, taken := nm.owner[name]; !taken {
			nm.owner[name] = scaffold
			return name
		}
	}
}

func (nm *namer) haplotig(scaffold string) string {
	return nm.fresh("H_%d", &nm.haplotigN, scaffold)
}

func (nm *namer) chromosome(chr, set string) string {
	name := nm.prefix + chr
	if set != "" {
		name += "_" + set
	}
	return name
}

// nameScaffolds fixes the main destination name of every curated scaffold.
// Unplaced scaffolds keep their curated name and are claimed first, so
// generated names step around them.
func (nm *namer) nameScaffolds(scaffolds []*assembly.Scaffold, groups []Group) error {
	var autosomes []int
	for i, g := range groups {
		switch g.Rank {
		case RankUnplaced:
			if err := nm.claim(g.Scaffold, g.Source); err != nil {
				return err
			}
		case RankAutosome:
			autosomes = append(autosomes, i)
		}
	}
	if err := nm.numberAutosomes(scaffolds, groups, autosomes); err != nil {
		return err
	}
	for i := range groups {
		g := &groups[i]
		if g.Rank == RankNamed {
			g.Scaffold = nm.chromosome(g.Chromosome, g.Set)
		}
		if g.Rank == RankUnplaced {
			continue
		}
		if err := nm.claim(g.Scaffold, g.Source); err != nil {
			return err
		}
	}
	return nil
}

// chrGroup is one autosome across haplotypes. A haplotype holding more than
// one scaffold in a group gets lettered chromosomes: 3A, 3B.
type chrGroup struct {
	byHap  map[string][]int
	length int // of the first haplotype
}

// numberAutosomes groups painted scaffolds that follow each other across
// haplotypes, orders the groups longest first by their first haplotype and
// names them prefix + number (+ "_" + set).
func (nm *namer) numberAutosomes(scaffolds []*assembly.Scaffold, groups []Group, autosomes []int) error {
	if len(autosomes) == 0 {
		return nil
	}
	var haps []string
	seen := map[string]bool{}
	for _, i := range autosomes {
		if h := groups[i].Haplotype; !seen[h] {
			seen[h] = true
			haps = append(haps, h)
		}
	}
	if len(haps) > 1 && seen[""] {
		for _, i := range autosomes {
			if groups[i].Haplotype == "" {
				return &TaggingError{Scaffold: groups[i].Source, Reason: "painted scaffold has no haplotype tag"}
			}
		}
	}

	var (
		chrs []*chrGroup
		cur  *chrGroup
		last int
	)
	for _, i := range autosomes {
		h := groups[i].Haplotype
		split := cur == nil
		if !split && len(cur.byHap[h]) > 0 {
			split = len(haps) == 1 || h != groups[last].Haplotype ||
				scaffolds[last].Tags().Has(assembly.TagSingleton)
		}
		if split {
			cur = &chrGroup{byHap: map[string][]int{}}
			chrs = append(chrs, cur)
		}
		cur.byHap[h] = append(cur.byHap[h], i)
		if h == haps[0] {
			cur.length += plainLength(scaffolds[i])
		}
		last = i
	}

	first := haps[0]
	for _, c := range chrs {
		if len(c.byHap[first]) == 0 {
			i := -1
			for _, idx := range c.byHap {
				if i < 0 || idx[0] < i {
					i = idx[0]
				}
			}
			return &TaggingError{
				Scaffold: groups[i].Source,
				Reason:   fmt.Sprintf("autosome has no counterpart in haplotype %q", first),
			}
		}
	}

	sort.SliceStable(chrs, func(a, b int) bool { return chrs[a].length > chrs[b].length })
	for n, c := range chrs {
		for _, idx := range c.byHap {
			for k, i := range idx {
				chr := strconv.Itoa(n + 1)
				if len(idx) > 1 {
					chr += string(rune('A' + k))
				}
				groups[i].Chromosome = chr
				groups[i].Scaffold = nm.chromosome(chr, groups[i].Set)
			}
		}
	}
	return nil
}

// plainLength is the sequence a scaffold keeps once its haplotigs are removed.
func plainLength(s *assembly.Scaffold) int {
	n := 0
	for _, c := range s.Components() {
		if !c.Tags.Has(assembly.TagHaplotig) {
			n += c.Length()
		}
	}
	return n
}

// renameBySize reorders ds longest first and deals their names back out in
// the original order, so the first name goes to the longest.
func renameBySize(ds []*destination) {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.group.Scaffold
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].length() > ds[j].length() })
	for i, d := range ds {
		d.group.Scaffold = names[i]
	}
}
