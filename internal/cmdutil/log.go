// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}

// ParseLevel accepts debug, info, warn (or warning) and error in any case.
func ParseLevel(name string) (slog.Level, error) {
	var lvl slog.Level
	if strings.EqualFold(name, "warning") {
		name = "warn"
	}
	if err := lvl.UnmarshalText([]byte(name)); err != nil {
		return lvl, Usagef("unknown log level %q", name)
	}
	return lvl, nil
}

// NewLogger writes plain "LEVEL msg key=value" lines to dst. quiet keeps
// only errors.
func NewLogger(dst io.Writer, level string, quiet bool) (*slog.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if quiet {
		lvl = slog.LevelError
	}
	h := slog.NewTextHandler(dst, &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	return slog.New(h), nil
}
