package config

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/serializer"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	Name            = "password-toolkit"
	CONFIG_NAME     = "config"
	DEFAULT_LOG_DIR = "./log"
)

// Sets the built-in defaults on the viper instance so keys missing
// from the configuration file keep their default values
func SetDefaults(v *viper.Viper) {
	defaults := Default()
	v.SetDefault("debug", defaults.Debug)
	v.SetDefault("debug-secrets", defaults.DebugSecrets)
	v.SetDefault("log-dir", defaults.LogDir)
	v.SetDefault("argon2.memory", defaults.Argon2.Memory)
	v.SetDefault("argon2.iterations", defaults.Argon2.Iterations)
	v.SetDefault("argon2.parallelism", defaults.Argon2.Parallelism)
	v.SetDefault("argon2.saltLen", defaults.Argon2.SaltLength)
	v.SetDefault("argon2.keyLen", defaults.Argon2.KeyLength)
	v.SetDefault("generator.length", defaults.Generator.Length)
	v.SetDefault("generator.classes", defaults.Generator.Classes)
	v.SetDefault("generator.include", defaults.Generator.Include)
	v.SetDefault("generator.exclude", defaults.Generator.Exclude)
	v.SetDefault("strength.target-bits", defaults.Strength.TargetBits)
	v.SetDefault("strength.crack-speed", defaults.Strength.CrackSpeed)
	v.SetDefault("strength.hash-algorithm", defaults.Strength.HashAlgorithm)
	v.SetDefault("wordlist.backend", defaults.WordList.Backend)
	v.SetDefault("wordlist.passwords", defaults.WordList.Passwords)
	v.SetDefault("wordlist.names", defaults.WordList.Names)
}

// Reads config.yaml from the config directory, the user's home
// directory or the working directory. If none is found, the
// environment specific config.<env>.yaml is tried before falling
// back to the built-in defaults.
func Load(v *viper.Viper, fs afero.Fs, configDir, env string) (*Config, error) {

	if v == nil {
		v = viper.New()
	}
	if fs != nil {
		v.SetFs(fs)
	}

	SetDefaults(v)

	v.SetConfigName(CONFIG_NAME)
	v.SetConfigType("yaml")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	v.AddConfigPath(fmt.Sprintf("$HOME/.%s/", Name))
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if !isNotFound(err) {
			return nil, err
		}
		if env != "" {
			// Try to load a config based on the environment flag
			v.SetConfigName(fmt.Sprintf("%s.%s", CONFIG_NAME, env))
			if err := v.ReadInConfig(); err != nil && !isNotFound(err) {
				return nil, err
			}
		}
	}

	config := new(Config)
	if err := v.Unmarshal(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Writes the configuration to path using the serializer matching
// the requested format
func Write(fs afero.Fs, path string, config *Config, format serializer.SerializerType) error {
	s, err := serializer.NewSerializer[*Config](format)
	if err != nil {
		return err
	}
	data, err := s.Serialize(config)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, path, data, 0644)
}

func isNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}
