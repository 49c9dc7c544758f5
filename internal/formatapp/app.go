// internal/formatapp/app.go
package formatapp

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tolasm/core/asmfmt"
	"tolasm/core/assembly"
	"tolasm/core/overlap"
	"tolasm/internal/appcore"
	"tolasm/internal/cli"
	"tolasm/internal/cliutil"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/output"
	"tolasm/internal/writers"
)

const long = `Parse and reformat Tree of Life AGP and TPF files. Reads the files given
on the command line, or stdin when there are none, and writes each one in the
output format. STR is a human readable dump of the parsed layout.`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := config.New()
	var opt cli.FormatOptions
	cmd := cli.NewCommand("asm-format [flags] [files...]", "Parse and reformat AGP and TPF assembly files", long, v)
	cmd.Example = `  asm-format -f tpf curated.agp > curated.tpf
  asm-format --check-overlap -o fixed.agp *.agp
  zcat asm.agp.gz | asm-format -f str`
	cli.RegisterFormatFlags(cmd, v, &opt)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		env, err := appcore.Setup(cmd, v)
		if err != nil {
			return err
		}
		return run(cmd.Context(), env, opt, args)
	}
	return appcore.Execute(parent, cmd, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func run(ctx context.Context, env *appcore.Env, opt cli.FormatOptions, args []string) (err error) {
	inFmt, outFmt, err := opt.Formats(env.Config)
	if err != nil {
		return err
	}
	tags, err := cli.ValidateTags(opt.Tags, env.Config.KnownTags)
	if err != nil {
		return err
	}
	files, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return &cmdutil.UsageError{Err: err}
	}
	if len(files) == 0 {
		files = []string{"-"}
	}

	out := env.Stdout
	if opt.OutputFile != "" {
		fh, ferr := os.Create(opt.OutputFile)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := fh.Close(); err == nil {
				err = cerr
			}
		}()
		env.Log.Info("Created: '" + opt.OutputFile + "'")
		out = fh
	}

	for _, path := range files {
		if err := appcore.Stage(ctx); err != nil {
			return err
		}
		f := inFmt
		if f == asmfmt.Unknown {
			f = asmfmt.FromPath(path, asmfmt.AGP)
			if !f.IsLayout() {
				f = asmfmt.AGP
			}
		}
		name := opt.Name
		if name == "" {
			name = appcore.Stem(path)
		}
		a, err := appcore.ReadLayout(path, f, name)
		if err != nil {
			return err
		}
		env.Log.Debug("parsed", "file", path, "format", f, "scaffolds", a.Len())

		if opt.CheckOverlap {
			for _, r := range overlap.Find(a) {
				cmdutil.Warnf(env.Stderr, env.Config.Quiet, "%s: %s", path, output.OverlapWarning(r))
			}
		}
		if len(tags) > 0 {
			a = filterByTags(a, tags)
		}
		if err := writers.WriteLayout(outFmt.String(), out, a); err != nil {
			return err
		}
	}
	return nil
}

// filterByTags keeps the scaffolds where any component carries one of tags.
func filterByTags(a *assembly.Assembly, tags []string) *assembly.Assembly {
	out := assembly.New(a.Name)
	out.Header = a.Header
	for _, s := range a.Scaffolds() {
		st := s.Tags()
		for _, t := range tags {
			if st.Has(t) {
				// Names are already unique.
				_ = out.AddScaffold(s)
				break
			}
		}
	}
	return out
}
