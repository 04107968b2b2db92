package config

import (
	"github.com/arthur-debert/dotprov/pkg/errors"
	"github.com/pelletier/go-toml/v2"
)

// Output formats accepted by output.format
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config is the effective configuration
type Config struct {
	Provision Provision `koanf:"provision" toml:"provision"`
	Output    Output    `koanf:"output" toml:"output"`
	Logging   Logging   `koanf:"logging" toml:"logging"`
}

// Provision holds settings for provisioning runs
type Provision struct {
	Sources     []string `koanf:"sources" toml:"sources"`
	FailOnError bool     `koanf:"fail_on_error" toml:"fail_on_error"`
}

// Output holds result rendering settings
type Output struct {
	Format  string `koanf:"format" toml:"format"`
	NoColor bool   `koanf:"no_color" toml:"no_color"`
}

// Logging holds log destination settings
type Logging struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks values that cannot be expressed in the types
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatJSON, FormatText:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.format must be %q or %q, got %q",
			FormatJSON, FormatText, c.Output.Format).
			WithDetail("key", "output.format")
	}
	return nil
}

// TOML renders the configuration in the user file format
func (c *Config) TOML() ([]byte, error) {
	return toml.Marshal(c)
}
