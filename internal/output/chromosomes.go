// internal/output/chromosomes.go
package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"tolasm/core/reproject"
)

// ChromosomeRow is one placed or unlocalised chromosome scaffold.
type ChromosomeRow struct {
	Assembly        string // set, "Primary" for the primary assembly
	Name            string
	Chromosome      string
	Localised       bool
	Source          string // curated scaffold
	Length          int
	LengthMinusGaps int
}

// ChromosomeRows lists the chromosome scaffolds of each part in output order.
// Unplaced scaffolds, haplotigs and contaminants are left out.
func ChromosomeRows(res *reproject.Result, parts []reproject.Part) map[string][]ChromosomeRow {
	rows := map[string][]ChromosomeRow{}
	for _, p := range parts {
		asm := p.Set
		if asm == "" {
			asm = "Primary"
		}
		for _, s := range p.Assembly.Scaffolds() {
			g, ok := res.Group(s.Name)
			if !ok || g.Rank == reproject.RankUnplaced {
				continue
			}
			rows[p.Set] = append(rows[p.Set], ChromosomeRow{
				Assembly:        asm,
				Name:            s.Name,
				Chromosome:      g.Chromosome,
				Localised:       g.Localised(),
				Source:          g.Source,
				Length:          s.Length(),
				LengthMinusGaps: s.ComponentsLength(),
			})
		}
	}
	return rows
}

// WriteChromosomeList writes the name,chromosome,yes|no rows expected by
// submission tooling. There is no header.
func WriteChromosomeList(w io.Writer, rows []ChromosomeRow) error {
	cw := csv.NewWriter(w)
	for _, r := range rows {
		loc := "no"
		if r.Localised {
			loc = "yes"
		}
		if err := cw.Write([]string{r.Name, r.Chromosome, loc}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

var reportHeader = []string{
	"assembly", "seq_name", "chromosome", "localised",
	"pretext_scaffold", "length", "length_minus_gaps",
}

// WriteChromosomeReport writes every row with a header line.
func WriteChromosomeReport(w io.Writer, rows []ChromosomeRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.Assembly, r.Name, r.Chromosome, strconv.FormatBool(r.Localised),
			r.Source, strconv.Itoa(r.Length), strconv.Itoa(r.LengthMinusGaps),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
