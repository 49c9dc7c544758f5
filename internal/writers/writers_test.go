package writers

import (
	"bytes"
	"errors"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tolasm/core/assembly"
	"tolasm/core/overlap"
	"tolasm/internal/output"
)

func TestRegisteredFormats(t *testing.T) {
	if diff := cmp.Diff([]string{"agp", "str", "tpf"}, Formats(LayoutWriters)); diff != "" {
		t.Fatalf("layout formats (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"json", "jsonl", "text"}, Formats(ReportWriters)); diff != "" {
		t.Fatalf("report formats (-want +got):\n%s", diff)
	}
}

func TestUnknownFormatErrors(t *testing.T) {
	var b bytes.Buffer
	if err := WriteLayout("gff", &b, assembly.New("x")); err == nil || !strings.Contains(err.Error(), "unknown layout format") {
		t.Fatalf("want 'unknown layout format', got %v", err)
	}
	if _, err := NewReportWriter("csv", &b); err == nil || !strings.Contains(err.Error(), "unknown report format") {
		t.Fatalf("want 'unknown report format', got %v", err)
	}
}

func TestWriteLayoutAGP(t *testing.T) {
	a := assembly.New("x")
	_ = a.AddScaffold(assembly.NewScaffold("S1",
		assembly.NewComponent(assembly.MustInterval("c", 1, 10, assembly.Plus))))
	var b bytes.Buffer
	if err := WriteLayout("agp", &b, a); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "S1\t1\t10\t1\tW\tc\t1\t10\t+") {
		t.Fatalf("agp:\n%s", b.String())
	}
}

func report(file string, n int) output.FileReport {
	rep := output.FileReport{File: file}
	c := assembly.NewComponent(assembly.MustInterval("c", 1, 10, assembly.Plus))
	for i := 0; i < n; i++ {
		rep.Hits = append(rep.Hits, overlap.Hit{
			Location: overlap.Location{Scaffold: "S", Component: c},
			Position: "only row",
			Bait:     assembly.MustInterval("c", 5, 6, assembly.Plus),
			Overlap:  2,
		})
	}
	return rep
}

func TestReportWriters(t *testing.T) {
	for format, check := range map[string]func(string) bool{
		output.FormatJSONL: func(s string) bool { return strings.Count(s, "\n") == 3 && strings.Count(s, `"file":"b.agp"`) == 2 },
		output.FormatJSON:  func(s string) bool { return strings.HasPrefix(s, "[") && strings.Count(s, `"overlap": 2`) == 3 },
		output.FormatText:  func(s string) bool { return strings.Count(s, "File: ") == 2 && strings.Count(s, "overlaps c:5-6 by 2 bp") == 3 },
	} {
		var b bytes.Buffer
		rw, err := NewReportWriter(format, &b)
		if err != nil {
			t.Fatal(err)
		}
		for _, rep := range []output.FileReport{report("a.agp", 1), report("b.agp", 2)} {
			if err := rw.Write(rep); err != nil {
				t.Fatal(err)
			}
		}
		if err := rw.Close(); err != nil {
			t.Fatal(err)
		}
		if !check(b.String()) {
			t.Errorf("%s output:\n%s", format, b.String())
		}
	}
}

func TestEmptyJSONReportIsArray(t *testing.T) {
	var b bytes.Buffer
	rw, _ := NewReportWriter(output.FormatJSON, &b)
	if err := rw.Close(); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(b.String()) != "[]" {
		t.Fatalf("got %q", b.String())
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatal("IsBrokenPipe misclassifies")
	}
	if err := DropBrokenPipe(errors.Join(errors.New("write stdout"), syscall.EPIPE)); err != nil {
		t.Fatalf("wrapped EPIPE not dropped: %v", err)
	}
	other := errors.New("disk full")
	if err := DropBrokenPipe(other); err != other {
		t.Fatalf("got %v, want %v", err, other)
	}
}
