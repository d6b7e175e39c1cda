package config

import (
	"errors"
	"testing"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
	"github.com/jeremyhahn/go-password-toolkit/pkg/crypto/argon2"
	"github.com/jeremyhahn/go-password-toolkit/pkg/generator"
	"github.com/jeremyhahn/go-password-toolkit/pkg/serializer"
	"github.com/jeremyhahn/go-password-toolkit/pkg/strength"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testConfigDir = "/etc/password-toolkit"

var testConfig = []byte(`
debug: true
log-dir: /var/log/password-toolkit
argon2:
  memory: 131072
  iterations: 4
  parallelism: 4
  saltLen: 32
  keyLen: 64
generator:
  length: 24
  classes:
    - lower
    - digits
  exclude: "0O1l"
strength:
  target-bits: 96
  crack-speed: very-fast
  hash-algorithm: bcrypt-12
wordlist:
  backend: AFERO_MEMORY
  passwords: /lists/passwords.txt
  names: /lists/names.txt
`)

func TestLoadDefaults(t *testing.T) {

	config, err := Load(viper.New(), afero.NewMemMapFs(), testConfigDir, "")
	assert.Nil(t, err)
	assert.Equal(t, Default(), config)
	assert.Nil(t, config.Validate())
}

func TestLoadFile(t *testing.T) {

	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, testConfigDir+"/config.yaml", testConfig, 0644))

	config, err := Load(viper.New(), fs, testConfigDir, "")
	assert.Nil(t, err)
	assert.Nil(t, config.Validate())

	assert.True(t, config.Debug)
	assert.False(t, config.DebugSecrets)
	assert.Equal(t, "/var/log/password-toolkit", config.LogDir)
	assert.Equal(t, argon2.Argon2Config{
		Memory:      131072,
		Iterations:  4,
		Parallelism: 4,
		SaltLength:  32,
		KeyLength:   64,
	}, config.Argon2)
	assert.Equal(t, strength.Config{
		TargetBits:    96,
		CrackSpeed:    "very-fast",
		HashAlgorithm: "bcrypt-12",
	}, config.Strength)
	assert.Equal(t, "AFERO_MEMORY", config.WordList.Backend)

	params, err := config.Generator.Params()
	assert.Nil(t, err)
	assert.Equal(t, generator.Params{
		Length:  24,
		Classes: charset.Lowercase | charset.Digits,
		Exclude: "0O1l",
	}, params)
}

func TestLoadEnvironment(t *testing.T) {

	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, testConfigDir+"/config.dev.yaml",
		[]byte("generator:\n  length: 32\n"), 0644))

	config, err := Load(viper.New(), fs, testConfigDir, "dev")
	assert.Nil(t, err)
	assert.Equal(t, 32, config.Generator.Length)

	// unspecified keys keep their defaults
	assert.Equal(t, argon2.DefaultConfig(), config.Argon2)
	assert.Equal(t, strength.DefaultConfig(), config.Strength)
}

func TestLoadMalformed(t *testing.T) {

	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, testConfigDir+"/config.yaml",
		[]byte("argon2: [unterminated"), 0644))

	_, err := Load(viper.New(), fs, testConfigDir, "")
	assert.NotNil(t, err)
}

func TestValidate(t *testing.T) {

	config := Default()
	config.Argon2.Iterations = 100
	config.Generator.Length = 4
	config.Strength.CrackSpeed = "warp"
	config.WordList.Backend = "S3"

	err := config.Validate()
	assert.True(t, errors.Is(err, ErrInvalidArgon2))
	assert.True(t, errors.Is(err, argon2.ErrInvalidIterations))
	assert.True(t, errors.Is(err, ErrInvalidGenerator))
	assert.True(t, errors.Is(err, generator.ErrInvalidLength))
	assert.True(t, errors.Is(err, ErrInvalidStrength))
	assert.True(t, errors.Is(err, strength.ErrUnknownCrackSpeed))
	assert.True(t, errors.Is(err, ErrInvalidWordList))

	config = Default()
	config.Generator.Classes = []string{"emoji"}
	err = config.Validate()
	assert.True(t, errors.Is(err, ErrInvalidGenerator))
	assert.True(t, errors.Is(err, charset.ErrInvalidClass))
}

func TestWrite(t *testing.T) {

	fs := afero.NewMemMapFs()
	expected := Default()
	expected.Generator.Length = 20
	expected.Strength.HashAlgorithm = strength.Argon2id64MBT3.Name

	assert.Nil(t, Write(fs, testConfigDir+"/config.yaml", expected, serializer.SERIALIZER_YAML))

	actual, err := Load(viper.New(), fs, testConfigDir, "")
	assert.Nil(t, err)
	assert.Equal(t, expected, actual)
}
