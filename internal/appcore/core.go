// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
	"tolasm/internal/writers"
)

// Env is what a command body needs once flags are parsed.
type Env struct {
	Config config.Config
	Log    *slog.Logger
	Stdout io.Writer
	Stderr io.Writer
}

// Setup decodes the settings in v and builds the logger.
func Setup(cmd *cobra.Command, v *viper.Viper) (*Env, error) {
	c, err := config.Load(v)
	if err != nil {
		if errors.Is(err, config.ErrConfig) {
			return nil, &cmdutil.UsageError{Err: err}
		}
		return nil, err
	}
	log, err := cmdutil.NewLogger(cmd.ErrOrStderr(), c.LogLevel, c.Quiet)
	if err != nil {
		return nil, err
	}
	return &Env{Config: c, Log: log, Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}, nil
}

// Execute runs cmd with argv, buffering stdout, and maps the outcome to an
// exit code. A closed stdout pipe is not an error.
func Execute(ctx context.Context, cmd *cobra.Command, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	cmd.SetOut(outw)
	cmd.SetErr(stderr)
	cmd.SetArgs(argv)

	err := cmd.ExecuteContext(ctx)
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	err = writers.DropBrokenPipe(err)
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "%s: error: %v\n", cmd.Name(), err)
		var ue *cmdutil.UsageError
		if errors.As(err, &ue) {
			_, _ = fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", cmd.Name())
		}
	}
	return cmdutil.ExitCode(err)
}

// Stage returns ctx.Err() when the run was interrupted; tools call it
// between pipeline stages.
func Stage(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	return nil
}
