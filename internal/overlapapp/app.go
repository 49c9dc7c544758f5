// internal/overlapapp/app.go
package overlapapp

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tolasm/core/asmfmt"
	"tolasm/core/overlap"
	"tolasm/internal/appcore"
	"tolasm/internal/cli"
	"tolasm/internal/cliutil"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/output"
	"tolasm/internal/writers"
)

const long = `Find the components overlapping each '<name>:<start>-<end>' bait in every
AGP or TPF file listed. Files and baits may be given in any order; digits in
baits may be grouped with '_' or ','.`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := config.New()
	var opt cli.OverlapOptions
	cmd := cli.NewCommand("find-overlaps [flags] files... name:start-end...", "Report components overlapping sequence intervals", long, v)
	cmd.Args = cli.ArgsMin(1)
	cmd.Example = `  find-overlaps curated.agp original.tpf SUPER_1:1_000_000-1_250_000
  find-overlaps -o jsonl *.agp scaffold_12:1-5000`
	cli.RegisterOverlapFlags(cmd, v, &opt)
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

func exists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

func run(ctx context.Context, env *appcore.Env, opt cli.OverlapOptions, args []string) error {
	format, err := opt.ReportFormat(env.Config)
	if err != nil {
		return err
	}
	files, baits, err := cliutil.SplitFilesAndBaits(args, exists)
	if err != nil {
		return &cmdutil.UsageError{Err: err}
	}
	if files, err = cliutil.ExpandPositionals(files); err != nil {
		return &cmdutil.UsageError{Err: err}
	}
	if len(baits) == 0 {
		return cmdutil.Usagef("no '<name>:<start>-<end>' baits given")
	}
	if len(files) == 0 {
		return cmdutil.Usagef("no assembly files given")
	}
	for _, path := range files {
		if f := asmfmt.FromPath(path, asmfmt.Unknown); !f.IsLayout() {
			return cmdutil.Usagef("cannot tell the format of %q from its extension (want .agp or .tpf)", path)
		}
	}

	rw, err := writers.NewReportWriter(format, env.Stdout)
	if err != nil {
		return err
	}
	for _, path := range files {
		if err := appcore.Stage(ctx); err != nil {
			_ = rw.Close()
			return err
		}
		a, err := appcore.ReadLayout(path, asmfmt.FromPath(path, asmfmt.Unknown), appcore.Stem(path))
		if err != nil {
			_ = rw.Close()
			return err
		}
		hits := overlap.Search(a, baits)
		env.Log.Debug("searched", "file", path, "hits", len(hits))
		if err := rw.Write(output.FileReport{File: path, Hits: hits}); err != nil {
			_ = rw.Close()
			return err
		}
	}
	return rw.Close()
}
