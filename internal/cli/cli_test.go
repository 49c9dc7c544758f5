package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"tolasm/core/asmfmt"
	"tolasm/internal/cmdutil"
	"tolasm/internal/config"
)

func isUsage(err error) bool {
	var ue *cmdutil.UsageError
	return errors.As(err, &ue)
}

func TestValidateTags(t *testing.T) {
	got, err := ValidateTags([]string{"painted", "HAP1"}, []string{"Hap1"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"Painted", "HAP1"}, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
	if _, err := ValidateTags([]string{"Painted", "Bogus"}, nil); !isUsage(err) {
		t.Fatalf("want usage error, got %v", err)
	}
}

func TestFormatOptionsFormats(t *testing.T) {
	cases := []struct {
		opt     FormatOptions
		cfg     config.Config
		in, out asmfmt.Format
		usage   bool
	}{
		{FormatOptions{}, config.Config{}, asmfmt.Unknown, asmfmt.AGP, false},
		{FormatOptions{OutputFile: "x.tpf"}, config.Config{}, asmfmt.Unknown, asmfmt.TPF, false},
		{FormatOptions{OutputFile: "x.tpf"}, config.Config{OutputFormat: "STR"}, asmfmt.Unknown, asmfmt.STR, false},
		{FormatOptions{InputFormat: "TPF"}, config.Config{}, asmfmt.TPF, asmfmt.AGP, false},
		{FormatOptions{InputFormat: "fasta"}, config.Config{}, 0, 0, true},
		{FormatOptions{}, config.Config{OutputFormat: "fasta"}, 0, 0, true},
	}
	for i, c := range cases {
		in, out, err := c.opt.Formats(c.cfg)
		if c.usage {
			if !isUsage(err) {
				t.Errorf("case %d: want usage error, got %v", i, err)
			}
			continue
		}
		if err != nil || in != c.in || out != c.out {
			t.Errorf("case %d: got %v %v %v, want %v %v", i, in, out, err, c.in, c.out)
		}
	}
	_, _, err := FormatOptions{}.Formats(config.Config{OutputFormat: "fasta"})
	if err == nil || !strings.Contains(err.Error(), "--output-format") {
		t.Fatalf("error should name the --output-format flag: %v", err)
	}
}

func TestReprojectOptions(t *testing.T) {
	if err := (ReprojectOptions{Pretext: "p.agp"}).Validate(); !isUsage(err) {
		t.Fatalf("missing --assembly: %v", err)
	}
	for path, want := range map[string]asmfmt.Format{"": asmfmt.STR, "o.fa": asmfmt.FASTA, "o.tpf": asmfmt.TPF, "o.out": asmfmt.AGP} {
		got, err := ReprojectOptions{Output: path}.OutputFormat()
		if err != nil || got != want {
			t.Errorf("%q: got %v %v, want %v", path, got, err, want)
		}
	}
	if _, err := (ReprojectOptions{Output: "o.fai"}).OutputFormat(); !isUsage(err) {
		t.Fatalf("fai output: %v", err)
	}
}

func TestNewCommandBindsSharedFlags(t *testing.T) {
	v := config.New()
	cmd := NewCommand("tool", "short", "long", v)
	var ran bool
	cmd.RunE = func(*cobra.Command, []string) error { ran = true; return nil }
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-q", "--log-level", "debug"})
	if err := cmd.Execute(); err != nil || !ran {
		t.Fatalf("execute: ran=%v err=%v", ran, err)
	}
	c, err := config.Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if !c.Quiet || c.LogLevel != "debug" {
		t.Fatalf("config %+v", c)
	}

	cmd.SetArgs([]string{"--no-such-flag"})
	if err := cmd.Execute(); !isUsage(err) {
		t.Fatalf("unknown flag: %v", err)
	}
}
