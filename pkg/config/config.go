package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/pseudomuto/prettify/pkg/consts"
	"github.com/pseudomuto/prettify/pkg/format"
	"github.com/pseudomuto/prettify/pkg/minify"
	"gopkg.in/yaml.v3"
)

type (
	// Formatting holds the options used when pretty-printing.
	Formatting struct {
		// Indent is the string added once per nesting level (default two spaces)
		Indent string `yaml:"indent,omitempty" toml:"indent,omitempty"`

		// MaxDepth is the number of nesting levels the indent table holds
		MaxDepth int `yaml:"max_depth,omitempty" toml:"max_depth,omitempty"`

		// DepthOverflow is either "clamp" (reuse the deepest indentation) or
		// "error" (fail when nesting goes deeper than MaxDepth)
		DepthOverflow string `yaml:"depth_overflow,omitempty" toml:"depth_overflow,omitempty"`
	}

	// Minify holds the options used when minifying.
	Minify struct {
		// PreserveComments keeps XML and CSS comments
		PreserveComments bool `yaml:"preserve_comments,omitempty" toml:"preserve_comments,omitempty"`
	}

	// Config represents the prettify configuration file.
	Config struct {
		// Format contains pretty-printing settings
		Format Formatting `yaml:"format" toml:"format"`

		// Minify contains minification settings
		Minify Minify `yaml:"minify" toml:"minify"`

		// Concurrency bounds how many files of a directory are processed at once
		Concurrency int `yaml:"concurrency,omitempty" toml:"concurrency,omitempty"`

		// Extensions maps a language name to the file extensions that use it.
		// Entries are merged over format.DefaultExtensions.
		Extensions map[string][]string `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

		// Exclude lists doublestar patterns (e.g. "**/vendor/**") matched against
		// paths relative to a directory being processed
		Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
	}
)

// Default returns the configuration used when no configuration file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// The function expects YAML-formatted configuration data. Missing values are
// filled with their defaults, and the depth overflow policy and extension
// mappings are validated.
//
// Example:
//
//	yamlData := `
//	format:
//	  indent: "    "
//	  depth_overflow: error
//	extensions:
//	  xml: [.plist]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	out, err := cfg.GetFormatter().XML(input)
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal prettify config")
	}

	return cfg.validate()
}

// LoadConfigTOML parses a TOML-formatted configuration from the provided
// io.Reader. Keys are the same as in the YAML format.
func LoadConfigTOML(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal prettify config")
	}

	return cfg.validate()
}

// LoadConfigFile loads a configuration from the specified file path. Files
// ending in .toml are parsed as TOML, anything else as YAML.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return LoadConfigTOML(f)
	}

	return LoadConfig(f)
}

func (c *Config) validate() (*Config, error) {
	c.setDefaults()

	if _, err := format.ParseOverflowPolicy(c.Format.DepthOverflow); err != nil {
		return nil, errors.Wrap(err, "invalid format config")
	}

	if _, err := c.extensionMap(); err != nil {
		return nil, errors.Wrap(err, "invalid extensions config")
	}

	for _, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid exclude pattern: %q", pattern)
		}
	}

	return c, nil
}

func (c *Config) setDefaults() {
	if c.Format.Indent == "" {
		c.Format.Indent = consts.DefaultIndentUnit
	}
	if c.Format.MaxDepth < 1 {
		c.Format.MaxDepth = consts.DefaultMaxDepth
	}
	if c.Format.DepthOverflow == "" {
		c.Format.DepthOverflow = format.ClampDepth.String()
	}
	if c.Concurrency < 1 {
		c.Concurrency = consts.DefaultConcurrency
	}
}

// FormatterOptions converts the configuration into format options.
func (c *Config) FormatterOptions() format.FormatterOptions {
	// LoadConfig has validated the policy already.
	policy, _ := format.ParseOverflowPolicy(c.Format.DepthOverflow)

	return format.FormatterOptions{
		IndentUnit: c.Format.Indent,
		MaxDepth:   c.Format.MaxDepth,
		Overflow:   policy,
	}
}

// GetFormatter builds a formatter for this configuration.
func (c *Config) GetFormatter() *format.Formatter {
	return format.New(c.FormatterOptions())
}

// MinifyOptions converts the configuration into minify options.
func (c *Config) MinifyOptions() minify.Options {
	return minify.Options{PreserveComments: c.Minify.PreserveComments}
}

// ExtensionMap returns the configured extension overrides keyed by lower-case
// extension including the leading dot.
func (c *Config) ExtensionMap() map[string]format.Language {
	m, _ := c.extensionMap()
	return m
}

func (c *Config) extensionMap() (map[string]format.Language, error) {
	m := make(map[string]format.Language)
	for name, exts := range c.Extensions {
		lang, err := format.ParseLanguage(name)
		if err != nil {
			return nil, err
		}

		for _, ext := range exts {
			ext = strings.ToLower(strings.TrimSpace(ext))
			if ext == "" {
				continue
			}
			if !strings.HasPrefix(ext, ".") {
				ext = "." + ext
			}
			m[ext] = lang
		}
	}

	return m, nil
}
