// internal/reprojectapp/app.go
package reprojectapp

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tolasm/core/asmfmt"
	"tolasm/core/assembly"
	"tolasm/core/cutter"
	"tolasm/core/fasta"
	"tolasm/core/reproject"
	"tolasm/internal/appcore"
	"tolasm/internal/cli"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/output"
	"tolasm/internal/writers"
)

const long = `Rebuild an assembly from the curated layout saved by PretextView.

The curated AGP is expressed in the coordinates of the assembly that was loaded
into PretextView (--assembly). Each curated component is mapped back onto that
assembly, and the new layout (and, for FASTA output, the new sequence) is written.

Scaffolds tagged Painted become numbered chromosomes, longest first, and tags that
look like chromosome names (X, W1, B2, I_II) name them; both take the
--autosome-prefix. Each Haplotig piece becomes H_1..H_n and each Unloc piece
<chromosome>_unloc_n, longest first. Any other tag names a haplotype, and each
haplotype, the haplotigs and the contaminants are written to their own files:
out.fa, out_hap2.fa, out_haplotig.fa, out_contaminant.fa.

Output files must not exist. A <stem>.info.yaml curation summary, a
<stem>.chr_report.csv and a chromosome.list.csv per assembly are written next
to them.`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := config.New()
	var opt cli.ReprojectOptions
	cmd := cli.NewCommand("pretext-to-asm -a original -p curated.agp [-o out.fa]", "Reproject a curated PretextView layout onto its original assembly", long, v)
	cmd.Args = cli.ArgsRange(0, 0)
	cmd.Example = `  pretext-to-asm -a original.fa -p pretext.agp -o curated.fa
  pretext-to-asm -a original.tpf -p pretext.agp -o curated.tpf --known-tags Target`
	cli.RegisterReprojectFlags(cmd, v, &opt)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		env, err := appcore.Setup(cmd, v)
		if err != nil {
			return err
		}
		return run(cmd.Context(), env, opt)
	}
	return appcore.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// source is the assembly before curation.
type source struct {
	layout *assembly.Assembly // nil for FASTA input
	index  *fasta.Index       // nil for AGP/TPF input
	u      *reproject.Universe
}

func loadSource(env *appcore.Env, path string) (*source, error) {
	f := asmfmt.FromPath(path, asmfmt.TPF)
	switch {
	case f == asmfmt.FASTA:
		idx, built, err := fasta.LoadIndex(path)
		if err != nil {
			return nil, err
		}
		if built {
			env.Log.Info("Created: '" + path + ".fai'")
		}
		u := reproject.NewUniverse()
		for _, e := range idx.Entries() {
			u.AddSequence(e.Name, e.Length)
		}
		return &source{index: idx, u: u}, nil
	case f.IsLayout():
		a, err := appcore.ReadLayout(path, f, appcore.Stem(path))
		if err != nil {
			return nil, err
		}
		return &source{layout: a, u: reproject.UniverseFromAssembly(a)}, nil
	}
	return nil, cmdutil.Usagef("--assembly %q: want FASTA, AGP or TPF", path)
}

func run(ctx context.Context, env *appcore.Env, opt cli.ReprojectOptions) error {
	if err := opt.Validate(); err != nil {
		return err
	}
	outFmt, err := opt.OutputFormat()
	if err != nil {
		return err
	}

	src, err := loadSource(env, opt.Assembly)
	if err != nil {
		return err
	}
	if outFmt == asmfmt.FASTA && src.index == nil {
		return cmdutil.Usagef("FASTA output needs a FASTA --assembly, not %q", opt.Assembly)
	}
	env.Log.Debug("original assembly", "file", opt.Assembly, "sequences", src.u.Len())

	pf := asmfmt.FromPath(opt.Pretext, asmfmt.AGP)
	if !pf.IsLayout() {
		return cmdutil.Usagef("--pretext %q: want AGP or TPF", opt.Pretext)
	}
	name := "stdout"
	if opt.Output != "" {
		name = appcore.Stem(opt.Output)
	}
	curated, err := appcore.ReadLayout(opt.Pretext, pf, name)
	if err != nil {
		return err
	}

	if err := appcore.Stage(ctx); err != nil {
		return err
	}
	res, err := reproject.Reproject(curated, src.u, reproject.Options{
		KnownTags:      env.Config.KnownTags,
		AutosomePrefix: env.Config.AutosomePrefix,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", opt.Pretext, err)
	}
	parts := res.Split()

	if err := appcore.Stage(ctx); err != nil {
		return err
	}
	if outFmt == asmfmt.STR {
		for _, p := range parts {
			if _, err := io.WriteString(env.Stdout, "\n"); err != nil {
				return err
			}
			if err := writers.WriteLayout(outFmt.String(), env.Stdout, p.Assembly); err != nil {
				return err
			}
		}
	} else if err := writeParts(ctx, env, opt, outFmt, src, parts); err != nil {
		return err
	}

	st := reproject.CurationStats(src.layout, res)
	logStats(env, st)
	if opt.Output == "" {
		return nil
	}
	names := map[string]string{}
	for _, p := range parts {
		names[p.Set] = p.Assembly.Name
	}
	info := filepath.Join(filepath.Dir(opt.Output), name+".info.yaml")
	if err := appcore.CreateFile(info, func(w io.Writer) error {
		return output.WriteSummaryYAML(w, output.ToAPISummary(st, names))
	}); err != nil {
		return err
	}
	env.Log.Info("Created: '" + info + "'")
	return writeChromosomes(env, opt.Output, res, parts)
}

// writeChromosomes writes a <stem>[.<set>].chromosome.list.csv per assembly
// holding chromosomes, and one <stem>.chr_report.csv covering them all.
func writeChromosomes(env *appcore.Env, out string, res *reproject.Result, parts []reproject.Part) error {
	dir, stem := filepath.Dir(out), appcore.Stem(out)
	bySet := output.ChromosomeRows(res, parts)
	var all []output.ChromosomeRow
	for _, p := range parts {
		rows := bySet[p.Set]
		if len(rows) == 0 {
			continue
		}
		all = append(all, rows...)
		name := stem
		if p.Set != "" {
			name += "." + strings.ToLower(p.Set)
		}
		path := filepath.Join(dir, name+".chromosome.list.csv")
		if err := appcore.CreateFile(path, func(w io.Writer) error {
			return output.WriteChromosomeList(w, rows)
		}); err != nil {
			return err
		}
		env.Log.Info("Created: '" + path + "'")
	}
	if len(all) == 0 {
		return nil
	}
	path := filepath.Join(dir, stem+".chr_report.csv")
	if err := appcore.CreateFile(path, func(w io.Writer) error {
		return output.WriteChromosomeReport(w, all)
	}); err != nil {
		return err
	}
	env.Log.Info("Created: '" + path + "'")
	return nil
}

// writeParts writes one file per output set, named after its assembly and
// carrying the extension of --output.
func writeParts(ctx context.Context, env *appcore.Env, opt cli.ReprojectOptions, f asmfmt.Format, src *source, parts []reproject.Part) error {
	dir, ext := filepath.Dir(opt.Output), filepath.Ext(opt.Output)

	var cut *cutter.Cutter
	if f == asmfmt.FASTA {
		fh, err := fasta.OpenIndexed(opt.Assembly)
		if err != nil {
			return err
		}
		defer fh.Close()
		cut = cutter.New(src.index, fh, cutter.Options{
			LineWidth: env.Config.LineWidth,
			GapChar:   env.Config.GapByte(),
		})
		cut.Debugf = func(format string, args ...any) { env.Log.Debug(fmt.Sprintf(format, args...)) }
	}

	for _, p := range parts {
		if err := appcore.Stage(ctx); err != nil {
			return err
		}
		base := filepath.Join(dir, p.Assembly.Name)
		if f != asmfmt.FASTA {
			path := base + ext
			if err := appcore.CreateFile(path, func(w io.Writer) error {
				return writers.WriteLayout(f.String(), w, p.Assembly)
			}); err != nil {
				return err
			}
			env.Log.Info("Created: '" + path + "'")
			continue
		}

		path := base + ext
		if err := cut.CutToFile(path, p.Assembly, p.Instructions); err != nil {
			return err
		}
		env.Log.Info("Created: '" + path + "'")
		agp := base + ".agp"
		if err := appcore.CreateFile(agp, func(w io.Writer) error {
			return writers.WriteLayout(asmfmt.AGP.String(), w, p.Assembly)
		}); err != nil {
			return err
		}
		env.Log.Info("Created: '" + agp + "'")
	}
	return nil
}

func logStats(env *appcore.Env, st reproject.Stats) {
	env.Log.Info("curation", "cuts", st.Cuts, "breaks", st.Breaks, "joins", st.Joins)
	for _, s := range st.Sets {
		set := s.Name
		if set == "" {
			set = "primary"
		}
		env.Log.Info("assembly", "set", set, "scaffolds", s.Scaffolds,
			"components", s.Components, "length", output.BasePairs(s.ComponentsLength))
	}
}
