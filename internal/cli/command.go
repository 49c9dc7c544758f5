// internal/cli/command.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/version"
)

const footer = `
Settings may also come from --config (YAML or TOML) or TOLASM_* environment
variables, e.g. TOLASM_LINE_WIDTH=80.
`

// NewCommand returns the root command of one tool with the flags every tool
// shares (--config, --log-level, --quiet, --version) bound into v.
func NewCommand(use, short, long string, v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		Long:          long + footer,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate(fmt.Sprintf("%s version {{.Version}}\n", cmd.Name()))
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cmdutil.UsageError{Err: err}
	})

	fs := cmd.Flags()
	fs.SortFlags = false
	fs.String(config.KeyConfig, "", "read settings from this YAML/TOML file")
	fs.String(config.KeyLogLevel, "info", "debug | info | warn | error")
	fs.BoolP(config.KeyQuiet, "q", false, "only report errors")
	fs.StringSlice(config.KeyKnownTags, nil, "extra tags to accept, which never name a haplotype (repeatable)")
	Bind(v, fs, config.KeyConfig, config.KeyLogLevel, config.KeyQuiet, config.KeyKnownTags)
	return cmd
}

// Bind ties each named flag to the viper key of the same name.
func Bind(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, n := range names {
		if err := v.BindPFlag(n, fs.Lookup(n)); err != nil {
			panic(fmt.Sprintf("binding flag %q: %v", n, err))
		}
	}
}

// ArgsRange is cobra.RangeArgs reporting a UsageError.
func ArgsRange(min, max int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.RangeArgs(min, max)(cmd, args); err != nil {
			return &cmdutil.UsageError{Err: err}
		}
		return nil
	}
}

// ArgsMin is cobra.MinimumNArgs reporting a UsageError.
func ArgsMin(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return &cmdutil.UsageError{Err: err}
		}
		return nil
	}
}
