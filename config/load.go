package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvbayes/bayeserr"
)

// Format is a configuration file syntax.
type Format int

const (
	// TOML is selected by the .toml extension.
	TOML Format = iota + 1
	// YAML is selected by the .yaml and .yml extensions.
	YAML
)

func (f Format) String() string {
	switch f {
	case TOML:
		return "toml"
	case YAML:
		return "yaml"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// FormatOf picks the Format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, bayeserr.Invalidf("config: unsupported file extension %q", filepath.Ext(path))
	}
}

// Load reads, decodes and validates a configuration file.
func Load(path string) (RunConfig, error) {
	f, err := FormatOf(path)
	if err != nil {
		return RunConfig{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return RunConfig{}, fmt.Errorf("config: %w", err)
	}

	return Parse(data, f)
}

// Parse decodes data over Default() and validates the result.
//
// Errors:
//   - bayeserr.ErrInvalidParameter for syntax errors, unknown keys and failed validation.
func Parse(data []byte, f Format) (RunConfig, error) {
	cfg := Default()
	switch f {
	case TOML:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return RunConfig{}, fmt.Errorf("%w: config: decode toml: %w", bayeserr.ErrInvalidParameter, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return RunConfig{}, bayeserr.Invalidf("config: unknown keys %v", undecoded)
		}
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return RunConfig{}, fmt.Errorf("%w: config: decode yaml: %w", bayeserr.ErrInvalidParameter, err)
		}
	default:
		return RunConfig{}, bayeserr.Invalidf("config: unsupported format %v", f)
	}
	if err := cfg.Validate(); err != nil {
		return RunConfig{}, err
	}

	return cfg, nil
}
