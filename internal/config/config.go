// Package config loads spectral2rgb settings from TOML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/cwbudde/algo-spectral/spectral/sampling"
	"github.com/pelletier/go-toml/v2"
)

// Config holds experiment settings. Command-line flags override file values.
type Config struct {
	// DataDir holds one CSV per spectrum, named after the file.
	DataDir string `toml:"data_dir"`
	// CMFPath points to a CIE CMF CSV. Empty selects the built-in analytic
	// CIE 1931 observer.
	CMFPath string `toml:"cmf"`

	Method    string  `toml:"method"`
	Count     int     `toml:"count"`
	Gamma     bool    `toml:"gamma"`
	Normalize bool    `toml:"normalize"`
	Seed      *uint64 `toml:"seed"`
	Trials    int     `toml:"trials"`

	// Lamps and Reflectances select the table rows and columns.
	Lamps        []string `toml:"lamps"`
	Reflectances []string `toml:"reflectances"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir: "data",
		Method:  "random",
		Count:   100,
		Gamma:   true,
		Trials:  1,
		Lamps:   []string{"illuminant_A", "illuminant_D65", "F11"},
		Reflectances: []string{
			"E2_dark_skin", "F4_green", "G4_red", "H4_yellow", "J4_cyan", "A1_white",
		},
	}
}

// Load reads path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var sme *toml.StrictMissingError
		if errors.As(err, &sme) {
			return Config{}, fmt.Errorf("config: %s", sme.String())
		}
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Validate checks field ranges. Count is ignored by the hero method.
func (c Config) Validate() error {
	m, err := c.SamplingMethod()
	if err != nil {
		return err
	}
	if _, hero := m.(sampling.Hero); !hero && c.Count < 1 {
		return fmt.Errorf("count must be >= 1: %d", c.Count)
	}
	if c.Trials < 1 {
		return fmt.Errorf("trials must be >= 1: %d", c.Trials)
	}
	return nil
}

// SamplingMethod returns the configured Method.
func (c Config) SamplingMethod() (sampling.Method, error) {
	return sampling.ParseMethod(c.Method, c.Count)
}
