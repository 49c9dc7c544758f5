package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"tolasm/core/asmfmt"
	"tolasm/core/assembly"
	"tolasm/core/overlap"
	"tolasm/core/reproject"
	"tolasm/pkg/api"
)

func sampleReport() FileReport {
	c := assembly.NewComponent(assembly.MustInterval("chr1", 1, 5000, assembly.Minus), "Painted")
	return FileReport{
		File: "curated.agp",
		Hits: []overlap.Hit{{
			Location: overlap.Location{Scaffold: "Scaffold_1", Row: 2, Component: c},
			Position: "last row",
			Bait:     assembly.MustInterval("chr1", 2001, 9000, assembly.Plus),
			Overlap:  3000,
		}},
	}
}

func TestWriteOverlapText(t *testing.T) {
	var b bytes.Buffer
	if err := WriteOverlapText(&b, sampleReport()); err != nil {
		t.Fatal(err)
	}
	want := "\nFile: curated.agp\n" +
		"  last row of Scaffold_1: " + sampleReport().Hits[0].Component.String() + "\n" +
		"    overlaps chr1:2001-9000 by 3,000 bp\n"
	if b.String() != want {
		t.Fatalf("got:\n%q\nwant:\n%q", b.String(), want)
	}
}

func TestToAPIOverlaps(t *testing.T) {
	got := ToAPIOverlaps(sampleReport())
	want := []api.OverlapV1{{
		File: "curated.agp", Scaffold: "Scaffold_1", Row: 3, Position: "last row",
		Name: "chr1", Start: 1, End: 5000, Strand: "-", Tags: []string{"Painted"},
		Bait: "chr1:2001-9000", Overlap: 3000,
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if empty := ToAPIOverlaps(FileReport{File: "x"}); empty == nil {
		t.Fatal("want empty slice, not nil")
	}
}

func TestEncodePrettyOmitsEmptyTags(t *testing.T) {
	v := ToAPIOverlaps(sampleReport())
	v[0].Tags = nil
	var b bytes.Buffer
	if err := EncodePretty(&b, v); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(b.String(), "tags") || !strings.Contains(b.String(), `"overlap": 3000`) {
		t.Fatalf("json:\n%s", b.String())
	}
	var back []api.OverlapV1
	if err := json.Unmarshal(b.Bytes(), &back); err != nil || len(back) != 1 {
		t.Fatalf("decode: %v %v", back, err)
	}
}

func TestSummaryYAML(t *testing.T) {
	st := reproject.Stats{
		Cuts: 2, Breaks: 1, Joins: 3,
		Sets: []reproject.SetStats{
			{Name: "", Scaffolds: 2, Components: 5, ComponentsLength: 1000},
			{Name: reproject.SetHaplotig, Scaffolds: 4, Components: 4, ComponentsLength: 80},
		},
	}
	names := map[string]string{"": "asm", reproject.SetHaplotig: "asm_haplotig"}
	var b bytes.Buffer
	if err := WriteSummaryYAML(&b, ToAPISummary(st, names)); err != nil {
		t.Fatal(err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(b.Bytes(), &doc); err != nil {
		t.Fatalf("yaml: %v\n%s", err, b.String())
	}
	for key, want := range map[string]int{
		"manual_cuts":              2,
		"manual_breaks":            1,
		"manual_joins":             3,
		"manual_haplotig_removals": 4,
	} {
		if doc[key] != want {
			t.Errorf("%s = %v, want %d", key, doc[key], want)
		}
	}
	asms, _ := doc["assemblies"].([]any)
	if len(asms) != 2 {
		t.Fatalf("assemblies: %v", doc["assemblies"])
	}
	first := asms[0].(map[string]any)
	if first["name"] != "asm" || first["length"] != 1000 {
		t.Fatalf("first assembly %v", first)
	}
	if _, ok := first["set"]; ok {
		t.Fatalf("empty set name should be omitted: %v", first)
	}
}

func TestBasePairs(t *testing.T) {
	for n, want := range map[int]string{0: "0", 999: "999", 1000: "1,000", 1234567: "1,234,567"} {
		if got := BasePairs(n); got != want {
			t.Errorf("BasePairs(%d)=%q want %q", n, got, want)
		}
	}
}

func chromosomeResult(t *testing.T) (*reproject.Result, []reproject.Part) {
	t.Helper()
	agp := strings.Join([]string{
		"Scaffold_1\t1\t100\t1\tW\ta\t1\t100\t+\tPainted\tHap1",
		"Scaffold_1\t101\t200\t2\tU\t100\tscaffold\tyes\tproximity_ligation",
		"Scaffold_1\t201\t250\t3\tW\ta\t101\t150\t+\tPainted\tUnloc\tHap1",
		"Scaffold_2\t1\t80\t1\tW\ta\t151\t230\t+\tPainted\tX\tHap2",
		"Scaffold_3\t1\t20\t1\tW\ta\t231\t250\t+\tHap1",
	}, "\n") + "\n"
	curated, err := asmfmt.ParseAGP(strings.NewReader(agp), "asm")
	if err != nil {
		t.Fatal(err)
	}
	u := reproject.NewUniverse()
	u.AddSequence("a", 250)
	res, err := reproject.Reproject(curated, u, reproject.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return res, res.Split()
}

func TestChromosomeRows(t *testing.T) {
	res, parts := chromosomeResult(t)
	got := ChromosomeRows(res, parts)
	want := map[string][]ChromosomeRow{
		"Hap1": {
			{Assembly: "Hap1", Name: "SUPER_1_Hap1", Chromosome: "1", Localised: true, Source: "Scaffold_1", Length: 100, LengthMinusGaps: 100},
			{Assembly: "Hap1", Name: "SUPER_1_Hap1_unloc_1", Chromosome: "1", Source: "Scaffold_1", Length: 50, LengthMinusGaps: 50},
		},
		"Hap2": {
			{Assembly: "Hap2", Name: "SUPER_X_Hap2", Chromosome: "X", Localised: true, Source: "Scaffold_2", Length: 80, LengthMinusGaps: 80},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("rows (-want +got):\n%s", diff)
	}
}

func TestChromosomeCSV(t *testing.T) {
	res, parts := chromosomeResult(t)
	rows := ChromosomeRows(res, parts)

	var b bytes.Buffer
	if err := WriteChromosomeList(&b, rows["Hap1"]); err != nil {
		t.Fatal(err)
	}
	want := "SUPER_1_Hap1,1,yes\nSUPER_1_Hap1_unloc_1,1,no\n"
	if b.String() != want {
		t.Fatalf("list:\n%s\nwant:\n%s", b.String(), want)
	}

	b.Reset()
	if err := WriteChromosomeReport(&b, append(rows["Hap1"], rows["Hap2"]...)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("report:\n%s", b.String())
	}
	if lines[0] != "assembly,seq_name,chromosome,localised,pretext_scaffold,length,length_minus_gaps" {
		t.Errorf("header %q", lines[0])
	}
	if lines[3] != "Hap2,SUPER_X_Hap2,X,true,Scaffold_2,80,80" {
		t.Errorf("last row %q", lines[3])
	}
}
