// core/reproject/classify.go
package reproject

import (
	"regexp"
	"strings"

	"tolasm/core/assembly"
)

// Rank orders scaffolds by how well they are placed.
type Rank int

const (
	RankAutosome Rank = 1
	RankNamed    Rank = 2
	RankUnplaced Rank = 3
)

func (r Rank) String() string {
	switch r {
	case RankAutosome:
		return "autosome"
	case RankNamed:
		return "named"
	}
	return "unplaced"
}

// Names of the output sets that are not haplotypes.
const (
	SetHaplotig       = "Haplotig"
	SetContaminant    = "Contaminant"
	SetFalseDuplicate = "FalseDuplicate"
)

// Group describes where a destination scaffold belongs.
type Group struct {
	Scaffold   string // destination scaffold name
	Source     string // curated scaffold it came from
	Haplotype  string // "" when the layout has no haplotype tags
	Chromosome string // "X" from a tag, or "3", "3A" once autosomes are numbered
	Rank       Rank
	Set        string // haplotype, "" for primary, or one of the Set constants
	Painted    bool
	Unloc      bool
}

// Localised reports whether the scaffold is a placed chromosome rather than
// an unlocalised piece of one.
func (g Group) Localised() bool { return g.Rank != RankUnplaced && !g.Unloc }

var (
	chromosomeRE = regexp.MustCompile(`^([A-Z]\d*[A-Z]?|[IVX_]+|\d+[A-Z]+)$`)
	prefixRE     = regexp.MustCompile(`^([^_]+)_`)
)

// IsChromosomeTag reports whether tag looks like a chromosome name: "X", "W1", "I_II", "2RL".
func IsChromosomeTag(tag string) bool { return chromosomeRE.MatchString(tag) }

// classifier assigns haplotypes and ranks to curated scaffolds.
type classifier struct {
	known      map[string]bool   // lower case, tags that are never haplotypes
	haplotypes map[string]string // lower case -> first spelling seen
	primary    string            // haplotype written without a suffix
}

func newClassifier(extraKnown []string) *classifier {
	c := &classifier{known: map[string]bool{}, haplotypes: map[string]string{}}
	for _, t := range append(assembly.KnownTags(), extraKnown...) {
		c.known[strings.ToLower(t)] = true
	}
	return c
}

// learn records the haplotype tags used anywhere in the curated layout, then
// which of them the first Primary tag marks.
func (c *classifier) learn(a *assembly.Assembly) error {
	for _, s := range a.Scaffolds() {
		for _, t := range s.Tags().List() {
			if c.isHaplotypeTag(t) {
				c.haplotype(t)
			}
		}
	}
	for _, s := range a.Scaffolds() {
		if !s.Tags().Has(assembly.TagPrimary) {
			continue
		}
		g, err := c.classify(s)
		if err != nil {
			return err
		}
		if g.Haplotype == "" {
			return &TaggingError{Scaffold: s.Name, Reason: "no haplotype to mark as Primary"}
		}
		c.primary = g.Haplotype
		break
	}
	return nil
}

func (c *classifier) isHaplotypeTag(t string) bool {
	return !c.known[strings.ToLower(t)] && !IsChromosomeTag(t)
}

// haplotype returns the spelling of t that was seen first.
func (c *classifier) haplotype(t string) string {
	lc := strings.ToLower(t)
	if h, ok := c.haplotypes[lc]; ok {
		return h
	}
	c.haplotypes[lc] = t
	return t
}

// classify derives the group of a curated scaffold. It runs once per scaffold.
func (c *classifier) classify(s *assembly.Scaffold) (Group, error) {
	g := Group{Source: s.Name, Scaffold: s.Name, Rank: RankUnplaced}
	for _, t := range s.Tags().List() {
		switch {
		case strings.EqualFold(t, assembly.TagPainted):
			g.Painted = true
		case c.known[strings.ToLower(t)]:
		case IsChromosomeTag(t):
			if g.Chromosome != "" && g.Chromosome != t {
				return g, &TaggingError{Scaffold: s.Name, Tags: []string{g.Chromosome, t}}
			}
			g.Chromosome = t
		default:
			h := c.haplotype(t)
			if g.Haplotype != "" && g.Haplotype != h {
				return g, &TaggingError{Scaffold: s.Name, Tags: []string{g.Haplotype, h}}
			}
			g.Haplotype = h
		}
	}
	switch {
	case g.Chromosome != "":
		g.Rank = RankNamed
	case g.Painted:
		g.Rank = RankAutosome
	}
	if g.Rank == RankUnplaced && g.Haplotype == "" {
		g.Haplotype = c.haplotypeFromNames(s)
	}
	if g.Haplotype != c.primary {
		g.Set = g.Haplotype
	}
	return g, nil
}

// haplotypeFromNames matches a "<haplotype>_" prefix of the first component's
// sequence name, or failing that of the scaffold name, against known haplotypes.
func (c *classifier) haplotypeFromNames(s *assembly.Scaffold) string {
	names := []string{s.Name}
	if comps := s.Components(); len(comps) > 0 {
		names = []string{comps[0].Name(), s.Name}
	}
	for _, n := range names {
		if m := prefixRE.FindStringSubmatch(n); m != nil {
			if h, ok := c.haplotypes[strings.ToLower(m[1])]; ok {
				return h
			}
		}
	}
	return ""
}
