// Package config holds the settings shared by every tool. Values come, in
// increasing priority, from the built-in defaults, an optional config file
// (--config), TOLASM_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Keys understood by every tool.
const (
	KeyConfig       = "config"
	KeyLineWidth    = "line-width"
	KeyGapChar      = "gap-char"
	KeyLogLevel     = "log-level"
	KeyQuiet        = "quiet"
	KeyKnownTags    = "known-tags"
	KeyOutputFormat = "output-format"

	KeyAutosomePrefix = "autosome-prefix"
)

// EnvPrefix is prepended to upper-cased keys, with '-' as '_': TOLASM_LINE_WIDTH.
const EnvPrefix = "TOLASM"

// ErrConfig wraps every invalid setting.
var ErrConfig = errors.New("invalid configuration")

// Config is the decoded view of a tool's viper instance.
type Config struct {
	// bases per line of FASTA output
	LineWidth int `mapstructure:"line-width"`

	// symbol used to fill gaps in FASTA output
	GapChar string `mapstructure:"gap-char"`

	// debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	Quiet bool `mapstructure:"quiet"`

	// tags accepted in addition to the built-in ones
	KnownTags []string `mapstructure:"known-tags"`

	// tool specific, e.g. agp/tpf/str for asm-format
	OutputFormat string `mapstructure:"output-format"`

	// starts the names of painted chromosomes
	AutosomePrefix string `mapstructure:"autosome-prefix"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Each tool run gets its own so that runs stay independent.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyConfig, "")
	v.SetDefault(KeyLineWidth, 60)
	v.SetDefault(KeyGapChar, "N")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyQuiet, false)
	v.SetDefault(KeyKnownTags, []string{})
	v.SetDefault(KeyOutputFormat, "")
	v.SetDefault(KeyAutosomePrefix, "SUPER_")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file named by the "config" key, if any, and decodes
// the merged settings.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return c, fmt.Errorf("reading config %q: %w", path, err)
		}
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	return c, c.Validate()
}

// Validate checks values that cannot be expressed as defaults.
func (c Config) Validate() error {
	if c.LineWidth < 1 {
		return fmt.Errorf("%w: line-width %d must be at least 1", ErrConfig, c.LineWidth)
	}
	if len(c.GapChar) != 1 || c.GapChar[0] <= ' ' || c.GapChar[0] == '>' || c.GapChar[0] > '~' {
		return fmt.Errorf("%w: gap-char %q must be a single printable character", ErrConfig, c.GapChar)
	}
	if c.AutosomePrefix == "" || strings.ContainsAny(c.AutosomePrefix, " \t\n") {
		return fmt.Errorf("%w: autosome-prefix %q must be non-empty without spaces", ErrConfig, c.AutosomePrefix)
	}
	for _, t := range c.KnownTags {
		if t == "" || strings.ContainsAny(t, " \t\n") {
			return fmt.Errorf("%w: known tag %q", ErrConfig, t)
		}
	}
	return nil
}

// GapByte is the gap symbol as a byte.
func (c Config) GapByte() byte { return c.GapChar[0] }
