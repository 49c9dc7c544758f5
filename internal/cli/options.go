// internal/cli/options.go
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tolasm/core/asmfmt"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/output"
)

// FormatOptions are the asm-format flags not held in config.Config.
type FormatOptions struct {
	InputFormat  string
	OutputFile   string
	Name         string
	Tags         []string
	CheckOverlap bool
}

func RegisterFormatFlags(cmd *cobra.Command, v *viper.Viper, o *FormatOptions) {
	fs := cmd.Flags()
	fs.StringVarP(&o.InputFormat, "input-format", "i", "", "agp | tpf (default: from each file's extension, else agp)")
	fs.StringVarP(&o.OutputFile, "output", "o", "", "output file (default: stdout)")
	fs.StringP(config.KeyOutputFormat, "f", "", "agp | tpf | str (default: from --output extension, else agp)")
	fs.StringVarP(&o.Name, "name", "n", "", "assembly name (default: file name or 'stdin')")
	fs.StringSliceVar(&o.Tags, "tag", nil, "keep only scaffolds with a component carrying this tag (repeatable)")
	fs.BoolVar(&o.CheckOverlap, "check-overlap", false, "warn about components sharing sequence")
	Bind(v, fs, config.KeyOutputFormat)
}

// Formats resolves the input override (Unknown when per-file detection
// applies) and the output format.
func (o FormatOptions) Formats(c config.Config) (in, out asmfmt.Format, err error) {
	if o.InputFormat != "" {
		if in, err = layoutFormat(o.InputFormat, "--input-format"); err != nil {
			return
		}
	}
	switch {
	case c.OutputFormat != "":
		out, err = asmfmt.ParseFormat(c.OutputFormat)
		if err != nil || (!out.IsLayout() && out != asmfmt.STR) {
			return in, out, cmdutil.Usagef("--output-format %q: want agp, tpf or str", c.OutputFormat)
		}
	case o.OutputFile != "":
		out = asmfmt.FromPath(o.OutputFile, asmfmt.AGP)
		if !out.IsLayout() {
			out = asmfmt.AGP
		}
	default:
		out = asmfmt.AGP
	}
	return in, out, nil
}

func layoutFormat(name, flag string) (asmfmt.Format, error) {
	f, err := asmfmt.ParseFormat(name)
	if err != nil || !f.IsLayout() {
		return asmfmt.Unknown, cmdutil.Usagef("%s %q: want agp or tpf", flag, name)
	}
	return f, nil
}

// OverlapOptions are the find-overlaps flags.
type OverlapOptions struct{}

func RegisterOverlapFlags(cmd *cobra.Command, v *viper.Viper, _ *OverlapOptions) {
	fs := cmd.Flags()
	fs.StringP(config.KeyOutputFormat, "o", output.FormatText, "text | json | jsonl")
	Bind(v, fs, config.KeyOutputFormat)
}

// ReportFormat checks the configured overlap output format.
func (OverlapOptions) ReportFormat(c config.Config) (string, error) {
	switch c.OutputFormat {
	case "":
		return output.FormatText, nil
	case output.FormatText, output.FormatJSON, output.FormatJSONL:
		return c.OutputFormat, nil
	}
	return "", cmdutil.Usagef("--output %q: want text, json or jsonl", c.OutputFormat)
}

// ReprojectOptions are the pretext-to-asm flags not held in config.Config.
type ReprojectOptions struct {
	Assembly string
	Pretext  string
	Output   string
}

func RegisterReprojectFlags(cmd *cobra.Command, v *viper.Viper, o *ReprojectOptions) {
	fs := cmd.Flags()
	fs.StringVarP(&o.Assembly, "assembly", "a", "", "assembly before curation: FASTA (indexed on demand), AGP or TPF [required]")
	fs.StringVarP(&o.Pretext, "pretext", "p", "", "curated layout from PretextView, AGP or TPF [required]")
	fs.StringVarP(&o.Output, "output", "o", "", "output file; .fa/.fasta also writes .agp (default: STR on stdout)")
	fs.Int(config.KeyLineWidth, 60, "bases per line of FASTA output")
	fs.String(config.KeyGapChar, "N", "symbol filling gaps in FASTA output")
	fs.StringP(config.KeyAutosomePrefix, "c", "SUPER_", "prefix for naming painted chromosomes")
	Bind(v, fs, config.KeyLineWidth, config.KeyGapChar, config.KeyAutosomePrefix)
}

// Validate checks the required flags.
func (o ReprojectOptions) Validate() error {
	if o.Assembly == "" || o.Pretext == "" {
		return cmdutil.Usagef("both --assembly and --pretext are required")
	}
	if o.Assembly == o.Pretext {
		return cmdutil.Usagef("--assembly and --pretext name the same file")
	}
	return nil
}

// OutputFormat is the format written to o.Output; STR when writing to stdout.
func (o ReprojectOptions) OutputFormat() (asmfmt.Format, error) {
	if o.Output == "" {
		return asmfmt.STR, nil
	}
	if strings.HasSuffix(o.Output, ".gz") {
		return asmfmt.Unknown, cmdutil.Usagef("--output %q: compressed output is not supported", o.Output)
	}
	switch f := asmfmt.FromPath(o.Output, asmfmt.AGP); f {
	case asmfmt.AGP, asmfmt.TPF, asmfmt.FASTA:
		return f, nil
	default:
		return asmfmt.Unknown, cmdutil.Usagef("--output %q: want .agp, .tpf or .fa", o.Output)
	}
}

// IndexOptions are the fasta-index flags.
type IndexOptions struct {
	Force bool
}

func RegisterIndexFlags(cmd *cobra.Command, _ *viper.Viper, o *IndexOptions) {
	cmd.Flags().BoolVar(&o.Force, "force", false, "rebuild even when the .fai is up to date")
}
