package convert

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/timrozday-mgnify/ena-submission-dataharmonizer/internal/linkml"
)

// Default locations used when neither flags nor a config file say
// otherwise.
const (
	DefaultInputDir  = "assets/ena_schema"
	DefaultOutputDir = "schemas"
)

// Config controls where checklists are read from, where schemas are
// written, and the metadata stamped on every schema.
type Config struct {
	// InputDir is scanned for *.xml checklist documents.
	InputDir string `yaml:"input_dir"`

	// OutputDir receives one <accession>.yaml file per checklist.
	OutputDir string `yaml:"output_dir"`

	// BaseURI forms each schema id together with the accession.
	BaseURI string `yaml:"base_uri"`

	// SchemaVersion is the version stamp carried by every schema.
	SchemaVersion string `yaml:"schema_version"`

	// Imports override the default schema import list.
	Imports []string `yaml:"imports,omitempty"`

	// Prefixes override the default namespace bindings, in file order.
	Prefixes []linkml.Prefix `yaml:"prefixes,omitempty"`

	// FailFast stops a batch at its first failure instead of continuing
	// with the remaining files.
	FailFast bool `yaml:"fail_fast"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	opts := linkml.DefaultOptions()

	return Config{
		InputDir:      DefaultInputDir,
		OutputDir:     DefaultOutputDir,
		BaseURI:       opts.BaseURI,
		SchemaVersion: opts.Version,
		Imports:       opts.Imports,
		Prefixes:      opts.Prefixes,
	}
}

// LoadConfig reads a YAML configuration file. Unset values fall back to
// defaults; unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// ParseConfig parses YAML configuration data. Empty input yields the
// default configuration.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// applyDefaults fills in default values for unset fields.
func (c *Config) applyDefaults() {
	def := DefaultConfig()

	if c.InputDir == "" {
		c.InputDir = def.InputDir
	}

	if c.OutputDir == "" {
		c.OutputDir = def.OutputDir
	}

	if c.BaseURI == "" {
		c.BaseURI = def.BaseURI
	}

	if c.SchemaVersion == "" {
		c.SchemaVersion = def.SchemaVersion
	}

	if c.Imports == nil {
		c.Imports = def.Imports
	}

	if c.Prefixes == nil {
		c.Prefixes = def.Prefixes
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir must not be empty")
	}

	if c.OutputDir == "" {
		return errors.New("output_dir must not be empty")
	}

	if c.BaseURI == "" {
		return errors.New("base_uri must not be empty")
	}

	return nil
}

// BuildOptions returns the schema metadata this configuration implies.
func (c Config) BuildOptions() linkml.Options {
	return linkml.Options{
		BaseURI:  c.BaseURI,
		Version:  c.SchemaVersion,
		Imports:  c.Imports,
		Prefixes: c.Prefixes,
	}
}
