package argon2

import (
	"errors"
	"fmt"

	"github.com/jeremyhahn/go-password-toolkit/pkg/secret"
)

const (
	ALGORITHM = "argon2id"

	MIN_ITERATIONS  = 1
	MAX_ITERATIONS  = 10
	MIN_MEMORY      = 8 * 1024
	MAX_MEMORY      = 512 * 1024
	MIN_PARALLELISM = 1
	MAX_PARALLELISM = 12
	MIN_SALT_LENGTH = 16
	MAX_SALT_LENGTH = 64
	MIN_KEY_LENGTH  = 16
	MAX_KEY_LENGTH  = 64
)

var (
	ErrNullArgument        = errors.New("argon2id: null argument")
	ErrInvalidConfig       = errors.New("argon2id: invalid configuration")
	ErrInvalidIterations   = fmt.Errorf("%w: iterations must be between %d and %d", ErrInvalidConfig, MIN_ITERATIONS, MAX_ITERATIONS)
	ErrInvalidMemory       = fmt.Errorf("%w: memory must be between %d and %d KB", ErrInvalidConfig, MIN_MEMORY, MAX_MEMORY)
	ErrInvalidParallelism  = fmt.Errorf("%w: parallelism must be between %d and %d", ErrInvalidConfig, MIN_PARALLELISM, MAX_PARALLELISM)
	ErrInvalidSaltLength   = fmt.Errorf("%w: salt length must be between %d and %d bytes", ErrInvalidConfig, MIN_SALT_LENGTH, MAX_SALT_LENGTH)
	ErrInvalidKeyLength    = fmt.Errorf("%w: key length must be between %d and %d bytes", ErrInvalidConfig, MIN_KEY_LENGTH, MAX_KEY_LENGTH)
	ErrUnexpectedSaltBytes = errors.New("argon2id: unexpected number of bytes from RNG")
)

// Argon2Config holds the cost parameters used to derive new hashes.
// Memory is expressed in KB.
type Argon2Config struct {
	Memory      uint32 `yaml:"memory" json:"memory" mapstructure:"memory"`
	Iterations  uint32 `yaml:"iterations" json:"iterations" mapstructure:"iterations"`
	Parallelism uint8  `yaml:"parallelism" json:"parallelism" mapstructure:"parallelism"`
	SaltLength  uint32 `yaml:"saltLen" json:"saltLen" mapstructure:"saltLen"`
	KeyLength   uint32 `yaml:"keyLen" json:"keyLen" mapstructure:"keyLen"`
}

// Returns the default Argon2id parameters:
//
// Memory: 65536
// Iterations: 3
// Parallelism: 2
// SaltLength: 16
// KeyLength: 32
func DefaultConfig() Argon2Config {
	return Argon2Config{
		Memory:      64 * 1024,
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

// Returns nil if every parameter is within range, otherwise
// an error joining one entry per out of range field.
func (config Argon2Config) Validate() error {
	var errs []error
	if !inRange(int64(config.Iterations), MIN_ITERATIONS, MAX_ITERATIONS) {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidIterations, config.Iterations))
	}
	if !inRange(int64(config.Memory), MIN_MEMORY, MAX_MEMORY) {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidMemory, config.Memory))
	}
	if !inRange(int64(config.Parallelism), MIN_PARALLELISM, MAX_PARALLELISM) {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidParallelism, config.Parallelism))
	}
	if !inRange(int64(config.SaltLength), MIN_SALT_LENGTH, MAX_SALT_LENGTH) {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidSaltLength, config.SaltLength))
	}
	if !inRange(int64(config.KeyLength), MIN_KEY_LENGTH, MAX_KEY_LENGTH) {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidKeyLength, config.KeyLength))
	}
	return errors.Join(errs...)
}

type Argon2 interface {
	Hash(password secret.Password) (string, error)
	Verify(encodedHash string, password secret.Password) (bool, error)
	NeedsRehash(encodedHash string) bool
	Config() Argon2Config
}

// KeyFunc derives a digest of keyLen bytes. It has the signature
// of golang.org/x/crypto/argon2.IDKey.
type KeyFunc func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte

func inRange(value, min, max int64) bool {
	return value >= min && value <= max
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
