package assembly

import (
	"errors"
	"testing"
)

func TestNewIntervalRejects(t *testing.T) {
	cases := []struct {
		name       string
		start, end int
	}{
		{"zero start", 0, 10},
		{"start after end", 11, 10},
		{"negative", -5, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewInterval("s", tc.start, tc.end, Plus); !errors.Is(err, ErrInterval) {
				t.Fatalf("NewInterval(%d,%d) err=%v, want ErrInterval", tc.start, tc.end, err)
			}
		})
	}
	if _, err := NewInterval("", 1, 1, Plus); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestIntervalGeometry(t *testing.T) {
	a := MustInterval("s", 10, 20, Plus)
	b := MustInterval("s", 20, 30, Minus)
	c := MustInterval("s", 21, 30, Plus)
	d := MustInterval("t", 10, 20, Plus)

	if a.Length() != 11 {
		t.Errorf("Length = %d, want 11", a.Length())
	}
	if !a.Overlaps(b) || a.OverlapLength(b) != 1 {
		t.Errorf("a/b should overlap by 1, got %v/%d", a.Overlaps(b), a.OverlapLength(b))
	}
	if a.Overlaps(c) || !a.Abuts(c) || !c.Abuts(a) {
		t.Errorf("a/c should abut without overlapping")
	}
	if a.Overlaps(d) || a.Abuts(d) {
		t.Errorf("different sequences never overlap or abut")
	}
	if !MustInterval("s", 1, 100, Plus).Contains(a) || a.Contains(b) {
		t.Errorf("Contains wrong")
	}
	if r := a.Reverse(); r.Strand() != Minus || r.Key() != a.Key() {
		t.Errorf("Reverse = %v", r)
	}
	if got := b.String(); got != "s:20-30(-)" {
		t.Errorf("String = %q", got)
	}
}

func TestParseStrand(t *testing.T) {
	for in, want := range map[string]Strand{"+": Plus, "PLUS": Plus, "-": Minus, "MINUS": Minus} {
		got, err := ParseStrand(in)
		if err != nil || got != want {
			t.Errorf("ParseStrand(%q) = %v,%v", in, got, err)
		}
	}
	if _, err := ParseStrand("."); err == nil {
		t.Errorf("expected error for unoriented strand")
	}
	if Minus.TPF() != "MINUS" || Plus.String() != "+" {
		t.Errorf("strand spellings wrong")
	}
}
