// core/assembly/tags.go
package assembly

import (
	"slices"
	"strings"
)

// Well-known tags used by curation. Any other token is allowed and kept as written.
const (
	TagContaminant    = "Contaminant"
	TagCut            = "Cut"
	TagFalseDuplicate = "FalseDuplicate"
	TagHaplotig       = "Haplotig"
	TagPainted        = "Painted"
	TagPrimary        = "Primary"
	TagSingleton      = "Singleton"
	TagTarget         = "Target"
	TagUnloc          = "Unloc"
)

var knownTags = map[string]string{}

func init() {
	for _, t := range KnownTags() {
		knownTags[strings.ToLower(t)] = t
	}
}

// KnownTags lists the canonical spellings of the well-known tags.
func KnownTags() []string {
	return []string{
		TagContaminant, TagCut, TagFalseDuplicate, TagHaplotig, TagPainted,
		TagPrimary, TagSingleton, TagTarget, TagUnloc,
	}
}

// IsKnownTag reports whether t is a well-known tag in any letter case.
func IsKnownTag(t string) bool {
	_, ok := knownTags[strings.ToLower(t)]
	return ok
}

// NormalizeTag returns the canonical spelling of a well-known tag, or t unchanged.
func NormalizeTag(t string) string {
	if c, ok := knownTags[strings.ToLower(t)]; ok {
		return c
	}
	return t
}

// Tags is an immutable set of tag tokens kept sorted case-insensitively.
// Membership ignores case; the first spelling added wins.
type Tags struct {
	list []string
}

func NewTags(tags ...string) Tags {
	var ts Tags
	return ts.With(tags...)
}

func (ts Tags) Len() int { return len(ts.list) }

// List returns a copy of the tags in sorted order.
func (ts Tags) List() []string { return slices.Clone(ts.list) }

func (ts Tags) Has(t string) bool {
	_, found := ts.find(t)
	return found
}

func (ts Tags) find(t string) (int, bool) {
	return slices.BinarySearchFunc(ts.list, t, func(e, target string) int {
		return strings.Compare(strings.ToLower(e), strings.ToLower(target))
	})
}

// With returns a new set with the given tags added. Empty tokens are ignored.
func (ts Tags) With(tags ...string) Tags {
	out := Tags{list: slices.Clone(ts.list)}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		t = NormalizeTag(t)
		i, found := out.find(t)
		if found {
			continue
		}
		out.list = slices.Insert(out.list, i, t)
	}
	return out
}

// Without returns a new set with the given tags removed.
func (ts Tags) Without(tags ...string) Tags {
	out := Tags{list: slices.Clone(ts.list)}
	for _, t := range tags {
		if i, found := out.find(t); found {
			out.list = slices.Delete(out.list, i, i+1)
		}
	}
	return out
}

// Union merges two sets.
func (ts Tags) Union(o Tags) Tags { return ts.With(o.list...) }

func (ts Tags) Equal(o Tags) bool { return slices.Equal(ts.list, o.list) }

func (ts Tags) String() string { return strings.Join(ts.list, " ") }
