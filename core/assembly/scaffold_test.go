package assembly

import (
	"errors"
	"strings"
	"testing"
)

func comp(name string, start, end int, s Strand, tags ...string) Component {
	return NewComponent(MustInterval(name, start, end, s), tags...)
}

func TestScaffoldValidate(t *testing.T) {
	g := DefaultGap()
	ok := NewScaffold("chr1", comp("a", 1, 10, Plus), g, comp("b", 1, 5, Minus))
	if err := ok.Validate(); err != nil {
		t.Fatalf("valid scaffold: %v", err)
	}
	bad := map[string]*Scaffold{
		"empty":         NewScaffold("e"),
		"leading gap":   NewScaffold("l", g, comp("a", 1, 10, Plus)),
		"trailing gap":  NewScaffold("t", comp("a", 1, 10, Plus), g),
		"adjacent gaps": NewScaffold("g", comp("a", 1, 10, Plus), g, g, comp("b", 1, 2, Plus)),
		"adjacent comp": NewScaffold("c", comp("a", 1, 10, Plus), comp("b", 1, 2, Plus)),
	}
	for name, s := range bad {
		if err := s.Validate(); !errors.Is(err, ErrLayout) {
			t.Errorf("%s: err=%v, want ErrLayout", name, err)
		}
	}
}

func TestScaffoldLengthsAndReverse(t *testing.T) {
	s := NewScaffold("chr1", comp("a", 1, 10, Plus, "Painted"), DefaultGap(), comp("b", 5, 9, Minus, "X"))
	if s.Length() != 215 || s.ComponentsLength() != 15 {
		t.Fatalf("Length=%d ComponentsLength=%d", s.Length(), s.ComponentsLength())
	}
	if got := s.Tags().String(); got != "Painted X" {
		t.Fatalf("Tags = %q", got)
	}
	r := s.Reverse()
	first := r.Rows[0].(Component)
	if first.Name() != "b" || first.Strand() != Plus || !first.Tags.Has("X") {
		t.Fatalf("Reverse first row = %v", first)
	}
	if s.Rows[0].(Component).Strand() != Plus {
		t.Fatalf("Reverse must not modify the receiver")
	}
	if !strings.Contains(s.String(), "          1          10  a:1-10(+) Painted") {
		t.Fatalf("String:\n%s", s)
	}
}

func TestAssemblyDuplicateAndSort(t *testing.T) {
	a := New("asm")
	for _, n := range []string{"chr10", "chr2", "chr1", "chrX"} {
		if err := a.AddScaffold(NewScaffold(n, comp(n, 1, 1, Plus))); err != nil {
			t.Fatal(err)
		}
	}
	if err := a.AddScaffold(NewScaffold("chr2")); !errors.Is(err, ErrDuplicateScaffold) {
		t.Fatalf("err=%v, want ErrDuplicateScaffold", err)
	}
	a.SortByName()
	var got []string
	for _, s := range a.Scaffolds() {
		got = append(got, s.Name)
	}
	if strings.Join(got, ",") != "chr1,chr2,chr10,chrX" {
		t.Fatalf("sorted = %v", got)
	}
	if _, ok := a.Scaffold("chr10"); !ok {
		t.Fatalf("lookup failed")
	}
}

func TestNaturalLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"chr2", "chr10", true},
		{"chr10", "chr2", false},
		{"H_2", "H_11", true},
		{"scaffold_1", "scaffold_1_unloc_1", true},
		{"a", "a", false},
	}
	for _, tc := range cases {
		if got := NaturalLess(tc.a, tc.b); got != tc.want {
			t.Errorf("NaturalLess(%q,%q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
