// internal/indexapp/app.go
package indexapp

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"tolasm/core/fasta"
	"tolasm/internal/appcore"
	"tolasm/internal/cli"
	"tolasm/internal/cliutil"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/output"
)

const long = `Write the samtools-compatible .fai index next to each FASTA file. An index
at least as new as its FASTA is kept unless --force is given. Compressed
FASTA cannot be indexed.`

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	v := config.New()
	var opt cli.IndexOptions
	cmd := cli.NewCommand("fasta-index [flags] files.fa...", "Build or refresh FASTA .fai indexes", long, v)
	cmd.Args = cli.ArgsMin(1)
	cmd.Example = `  fasta-index genome.fa
  fasta-index --force *.fasta`
	cli.RegisterIndexFlags(cmd, v, &opt)
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

func run(ctx context.Context, env *appcore.Env, opt cli.IndexOptions, args []string) error {
	files, err := cliutil.ExpandPositionals(args)
	if err != nil {
		return &cmdutil.UsageError{Err: err}
	}
	for _, path := range files {
		if path == "-" {
			return cmdutil.Usagef("cannot index stdin")
		}
		if err := appcore.Stage(ctx); err != nil {
			return err
		}
		idx, built, err := index(path, opt.Force)
		if err != nil {
			return err
		}
		if built {
			env.Log.Info("Created: '" + path + ".fai'")
		} else {
			env.Log.Debug("up to date", "file", path+".fai")
		}
		total := 0
		for _, e := range idx.Entries() {
			total += e.Length
		}
		if _, err := fmt.Fprintf(env.Stdout, "%s\t%d sequences\t%s bp\n", path, idx.Len(), output.BasePairs(total)); err != nil {
			return err
		}
	}
	return nil
}

func index(path string, force bool) (*fasta.Index, bool, error) {
	if !force {
		return fasta.LoadIndex(path)
	}
	idx, err := fasta.BuildIndex(path)
	if err != nil {
		return nil, false, err
	}
	return idx, true, fasta.SaveIndex(idx, path+".fai")
}
