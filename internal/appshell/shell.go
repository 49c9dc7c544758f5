package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"tolasm/internal/cmdutil"
)

// RunFunc is the testable entry point of a tool.
type RunFunc func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Option adjusts Main.
type Option func(*settings)

type settings struct{ helpOnEmpty bool }

// ReadsStdin keeps an empty command line as is instead of showing help, for
// tools that read stdin when given no files.
func ReadsStdin() Option { return func(s *settings) { s.helpOnEmpty = false } }

func Main(run RunFunc, opts ...Option) {
	s := settings{helpOnEmpty: true}
	for _, o := range opts {
		o(&s)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 && s.helpOnEmpty {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == 0 {
		code = cmdutil.ExitInterrupted
	}

	stop()
	os.Exit(code)
}
