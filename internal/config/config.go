package config

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io"
	"net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"wintz-generator/internal/gen"
)

// Defaults for a bare invocation.
const (
	DefaultURL     = "https://raw.githubusercontent.com/unicode-org/cldr/main/common/supplemental/windowsZones.xml"
	DefaultOutput  = "lib/windows/windows_tznames.zig"
	DefaultPackage = "wintz"
	DefaultTimeout = 30 * time.Second
)

// Config is the full pipeline configuration.
type Config struct {
	// URL locates the windowsZones.xml document (http, https, file or a path).
	URL string `yaml:"url"`
	// Output is the generated file path. Its parent directory must exist.
	Output string `yaml:"output"`
	// Format selects the generated language.
	Format gen.Format `yaml:"format"`
	// Package is the package clause used by the go format.
	Package string `yaml:"package"`
	// Timeout bounds the fetch.
	Timeout time.Duration `yaml:"timeout"`
	// DryRun renders to stdout instead of writing Output.
	DryRun bool `yaml:"dry_run"`
	// DebugDir receives the unformatted source when Go formatting fails.
	DebugDir string `yaml:"debug_dir"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		URL:     DefaultURL,
		Output:  DefaultOutput,
		Format:  gen.FormatZig,
		Package: DefaultPackage,
		Timeout: DefaultTimeout,
	}
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, starting from Default so omitted
// fields keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return cfg, nil
}

// applyDefaults fills in values explicitly blanked in a config file.
func applyDefaults(cfg *Config) {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	if cfg.Package == "" {
		cfg.Package = DefaultPackage
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	var errs []error

	if u, err := url.Parse(c.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	} else {
		switch u.Scheme {
		case "http", "https":
			if u.Host == "" {
				errs = append(errs, fmt.Errorf("url %q has no host", c.URL))
			}
		case "file":
			if u.Host != "" && u.Host != "localhost" {
				errs = append(errs, fmt.Errorf("url %q: file host must be empty or localhost", c.URL))
			}
		case "":
		default:
			errs = append(errs, fmt.Errorf("url %q: unsupported scheme %q", c.URL, u.Scheme))
		}
	}

	if c.Output == "" && !c.DryRun {
		errs = append(errs, errors.New("output path is empty"))
	}

	if c.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout %s must be positive", c.Timeout))
	}

	if _, err := gen.ParseFormat(c.Format.String()); err != nil {
		errs = append(errs, err)
	}

	if c.Format == gen.FormatGo && !token.IsIdentifier(c.Package) {
		errs = append(errs, fmt.Errorf("package %q is not a valid Go identifier", c.Package))
	}

	return errors.Join(errs...)
}
