// Package config loads the run configuration: the solution, the word list
// and the query patterns, plus output and logging settings.
//
// Values are layered, lowest precedence first:
//  1. Defaults (NewConfig)
//  2. Config file (.wordle-patterns.yaml, or an explicit path)
//  3. WORDLE_* environment variables
//  4. Command-line flags, applied by the caller before Validate
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	perrors "github.com/benjaminjkraft/wordle-patterns/internal/errors"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".wordle-patterns.yaml"

// DefaultPatterns is the pattern block used when none is configured.
const DefaultPatterns = `??*??
?XXX?
???X?
?X?X?
???X?
GGGGG
`

// Config is the complete run configuration.
type Config struct {
	// Solution is the secret word every guess is scored against.
	Solution string `yaml:"solution" json:"solution" validate:"required,alpha"`
	// WordList is the path of the candidate word list.
	WordList string `yaml:"wordlist" json:"wordlist" validate:"required"`
	// Patterns holds one query pattern per line.
	Patterns string `yaml:"patterns" json:"patterns"`
	// Strict aborts on the first invalid pattern line instead of skipping it.
	Strict bool `yaml:"strict" json:"strict"`
	// Workers shards index construction; 0 or 1 builds sequentially.
	Workers int `yaml:"workers" json:"workers" validate:"gte=0,lte=256"`

	Output OutputConfig `yaml:"output" json:"output"`
	Log    LogConfig    `yaml:"log" json:"log"`
}

// OutputConfig configures the report.
type OutputConfig struct {
	Format string `yaml:"format" json:"format" validate:"oneof=text json"`
	// All lists every match instead of the first and a count.
	All   bool   `yaml:"all" json:"all"`
	Color string `yaml:"color" json:"color" validate:"oneof=auto always never"`
}

// LogConfig configures diagnostics on stderr or in a file.
type LogConfig struct {
	Level string `yaml:"level" json:"level" validate:"oneof=debug info warn warning error"`
	File  string `yaml:"file" json:"file"`
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	return &Config{
		Solution: "ideal",
		WordList: "wordlist.txt",
		Patterns: DefaultPatterns,
		Workers:  1,
		Output: OutputConfig{
			Format: "text",
			Color:  "auto",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load returns the defaults merged with the config file and environment.
// An empty path looks for DefaultFileName and ignores it if absent; an
// explicit path must exist. Load does not validate: apply flags, then call
// Validate.
func Load(path string) (*Config, error) {
	cfg := NewConfig()

	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}
	if _, err := os.Stat(path); err == nil || explicit {
		if err := cfg.loadYAML(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// loadYAML merges non-zero values from the file at path into c.
func (c *Config) loadYAML(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return perrors.New(perrors.ErrCodeConfigUnreadable,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return perrors.New(perrors.ErrCodeConfigUnreadable,
			fmt.Sprintf("failed to parse config file %s: %v", path, err), err)
	}

	c.mergeWith(&parsed)
	return nil
}

// mergeWith merges non-zero values from other into c.
func (c *Config) mergeWith(other *Config) {
	if other.Solution != "" {
		c.Solution = other.Solution
	}
	if other.WordList != "" {
		c.WordList = other.WordList
	}
	if other.Patterns != "" {
		c.Patterns = other.Patterns
	}
	if other.Strict {
		c.Strict = true
	}
	if other.Workers != 0 {
		c.Workers = other.Workers
	}
	if other.Output.Format != "" {
		c.Output.Format = other.Output.Format
	}
	if other.Output.All {
		c.Output.All = true
	}
	if other.Output.Color != "" {
		c.Output.Color = other.Output.Color
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.File != "" {
		c.Log.File = other.Log.File
	}
}

// applyEnvOverrides applies WORDLE_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("WORDLE_SOLUTION"); v != "" {
		c.Solution = v
	}
	if v := os.Getenv("WORDLE_WORDLIST"); v != "" {
		c.WordList = v
	}
	if v := os.Getenv("WORDLE_PATTERNS"); v != "" {
		c.Patterns = v
	}
	if v := os.Getenv("WORDLE_STRICT"); v != "" {
		c.Strict = parseBool(v)
	}
	if v := os.Getenv("WORDLE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Workers = n
		}
	}
	if v := os.Getenv("WORDLE_FORMAT"); v != "" {
		c.Output.Format = v
	}
	if v := os.Getenv("WORDLE_COLOR"); v != "" {
		c.Output.Color = v
	}
	if v := os.Getenv("WORDLE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("WORDLE_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

func parseBool(v string) bool {
	return strings.EqualFold(v, "true") || v == "1"
}

// Normalize trims the solution and lower-cases it along with the
// enumerated settings.
func (c *Config) Normalize() {
	c.Solution = strings.ToLower(strings.TrimSpace(c.Solution))
	c.WordList = strings.TrimSpace(c.WordList)
	c.Output.Format = strings.ToLower(c.Output.Format)
	c.Output.Color = strings.ToLower(c.Output.Color)
	c.Log.Level = strings.ToLower(c.Log.Level)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their YAML names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate normalizes c and checks it.
func (c *Config) Validate() error {
	c.Normalize()

	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return perrors.ConfigError("invalid configuration", err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return perrors.ConfigError("invalid configuration: "+strings.Join(msgs, "; "), err)
}

// describe renders a validation failure with the field's dotted YAML path.
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "alpha":
		return fmt.Sprintf("%s must contain only letters, got %q", field, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "gte", "lte":
		return fmt.Sprintf("%s must be %s %s, got %v", field, fe.Tag(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %s", field, fe.Tag())
	}
}

// YAML renders c as a config file.
func (c *Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
