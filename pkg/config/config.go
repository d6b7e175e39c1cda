package config

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
	"github.com/jeremyhahn/go-password-toolkit/pkg/crypto/argon2"
	"github.com/jeremyhahn/go-password-toolkit/pkg/generator"
	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/jeremyhahn/go-password-toolkit/pkg/wordlist"
)

var (
	ErrInvalidArgon2    = errors.New("config: invalid argon2 section")
	ErrInvalidGenerator = errors.New("config: invalid generator section")
	ErrInvalidStrength  = errors.New("config: invalid strength section")
	ErrInvalidWordList  = errors.New("config: invalid wordlist section")
)

type Config struct {
	Debug        bool                `yaml:"debug" json:"debug" mapstructure:"debug"`
	DebugSecrets bool                `yaml:"debug-secrets" json:"debug_secrets" mapstructure:"debug-secrets"`
	LogDir       string              `yaml:"log-dir" json:"log_dir" mapstructure:"log-dir"`
	Argon2       argon2.Argon2Config `yaml:"argon2" json:"argon2" mapstructure:"argon2"`
	Generator    Generator           `yaml:"generator" json:"generator" mapstructure:"generator"`
	Strength     strength.Config     `yaml:"strength" json:"strength" mapstructure:"strength"`
	WordList     wordlist.Config     `yaml:"wordlist" json:"wordlist" mapstructure:"wordlist"`
}

// Generator settings as they appear in the configuration file.
// Classes are listed by name.
type Generator struct {
	Length  int      `yaml:"length" json:"length" mapstructure:"length"`
	Classes []string `yaml:"classes" json:"classes" mapstructure:"classes"`
	Include string   `yaml:"include" json:"include" mapstructure:"include"`
	Exclude string   `yaml:"exclude" json:"exclude" mapstructure:"exclude"`
}

// Converts the named classes into generator parameters
func (g Generator) Params() (generator.Params, error) {
	classes, err := charset.ParseFlags(g.Classes)
	if err != nil {
		return generator.Params{}, err
	}
	return generator.Params{
		Length:  g.Length,
		Classes: classes,
		Include: g.Include,
		Exclude: g.Exclude,
	}, nil
}

// Returns the built-in configuration used when no
// configuration file is found
func Default() *Config {
	params := generator.DefaultParams()
	return &Config{
		LogDir: DEFAULT_LOG_DIR,
		Argon2: argon2.DefaultConfig(),
		Generator: Generator{
			Length:  params.Length,
			Classes: params.Classes.Names(),
		},
		Strength: strength.DefaultConfig(),
		WordList: wordlist.DefaultConfig(),
	}
}

// Validates every section, returning one wrapped error per
// invalid section
func (c *Config) Validate() error {
	var errs []error
	if err := c.Argon2.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidArgon2, err))
	}
	if params, err := c.Generator.Params(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidGenerator, err))
	} else if err := params.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidGenerator, err))
	}
	if err := c.Strength.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidStrength, err))
	}
	if err := c.WordList.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidWordList, err))
	}
	return errors.Join(errs...)
}
