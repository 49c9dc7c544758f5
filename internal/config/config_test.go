package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaults(t *testing.T) {
	c, err := Load(New())
	if err != nil {
		t.Fatal(err)
	}
	want := Config{LineWidth: 60, GapChar: "N", LogLevel: "info", AutosomePrefix: "SUPER_"}
	if diff := cmp.Diff(want, c, cmpopts.EquateEmpty()); diff != "" {
		t.Fatalf("defaults (-want +got):\n%s", diff)
	}
	if c.GapByte() != 'N' {
		t.Fatalf("gap byte %q", c.GapByte())
	}
}

func TestFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tolasm.yaml")
	yml := "line-width: 80\ngap-char: n\nknown-tags:\n  - Hap1\n  - Hap2\n"
	if err := os.WriteFile(path, []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOLASM_LINE_WIDTH", "100")

	v := New()
	v.Set(KeyConfig, path)
	c, err := Load(v)
	if err != nil {
		t.Fatal(err)
	}
	if c.LineWidth != 100 {
		t.Fatalf("env should override file: line-width=%d", c.LineWidth)
	}
	if c.GapChar != "n" {
		t.Fatalf("gap-char=%q", c.GapChar)
	}
	if diff := cmp.Diff([]string{"Hap1", "Hap2"}, c.KnownTags); diff != "" {
		t.Fatalf("known-tags (-want +got):\n%s", diff)
	}
}

func TestMissingConfigFile(t *testing.T) {
	v := New()
	v.Set(KeyConfig, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(v); err == nil {
		t.Fatal("want error for missing config file")
	}
}

func TestValidate(t *testing.T) {
	bad := []Config{
		{LineWidth: -1, GapChar: "N", AutosomePrefix: "SUPER_"},
		{LineWidth: 0, GapChar: "N", AutosomePrefix: "SUPER_"},
		{LineWidth: 60, GapChar: "NN", AutosomePrefix: "SUPER_"},
		{LineWidth: 60, GapChar: ">", AutosomePrefix: "SUPER_"},
		{LineWidth: 60, GapChar: " ", AutosomePrefix: "SUPER_"},
		{LineWidth: 60, GapChar: "N", AutosomePrefix: ""},
		{LineWidth: 60, GapChar: "N", AutosomePrefix: "chr "},
		{LineWidth: 60, GapChar: "N", AutosomePrefix: "SUPER_", KnownTags: []string{"two words"}},
	}
	for _, c := range bad {
		if err := c.Validate(); !errors.Is(err, ErrConfig) {
			t.Errorf("%+v: err=%v, want ErrConfig", c, err)
		}
	}
	good := Config{LineWidth: 1, GapChar: "n", AutosomePrefix: "chr"}
	if err := good.Validate(); err != nil {
		t.Errorf("%+v: %v", good, err)
	}
}
