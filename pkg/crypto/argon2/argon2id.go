package argon2

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-password-toolkit/pkg/secret"
	"golang.org/x/crypto/argon2"
)

type Argon2Hasher struct {
	random  io.Reader
	config  Argon2Config
	keyFunc KeyFunc
}

// Creates a new Argon2id password hasher using default parameters:
//
// Memory: 65536
// Iterations: 3
// Parallelism: 2
// SaltLength: 16
// KeyLength: 32
func NewArgon2(random io.Reader) Argon2 {
	return NewBuilder().Random(random).Build()
}

// Creates a new Argon2id password hasher using user-defined
// parameters. Unlike the Builder, out of range parameters are
// returned as an error instead of being clamped.
func CreateArgon2(random io.Reader, config Argon2Config) (Argon2, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}
	return &Argon2Hasher{
		random:  random,
		config:  config,
		keyFunc: argon2.IDKey}, nil
}

// Returns the parameters used to derive new hashes
func (hasher *Argon2Hasher) Config() Argon2Config {
	return hasher.config
}

// Hashes the password using Argon2id and returns the encoded hash
func (hasher *Argon2Hasher) Hash(password secret.Password) (string, error) {
	pwd, err := passwordBytes(password)
	if err != nil {
		return "", err
	}
	salt, err := hasher.createSalt()
	if err != nil {
		return "", err
	}
	digest := hasher.keyFunc(pwd, salt,
		hasher.config.Iterations,
		hasher.config.Memory,
		hasher.config.Parallelism,
		hasher.config.KeyLength)
	encoded := EncodedHash{
		Memory:      hasher.config.Memory,
		Iterations:  hasher.config.Iterations,
		Parallelism: hasher.config.Parallelism,
		Salt:        salt,
		Digest:      digest,
	}
	return encoded.String(), nil
}

// Verifies the password against an encoded hash. The digest is
// recomputed using the parameters, salt and digest length parsed
// from the encoded hash, never the hasher's own configuration.
// Malformed hashes return false without an error.
func (hasher *Argon2Hasher) Verify(encodedHash string, password secret.Password) (bool, error) {
	pwd, err := passwordBytes(password)
	if err != nil {
		return false, err
	}
	decoded, ok := Decode(encodedHash)
	if !ok {
		return false, nil
	}
	otherDigest := hasher.keyFunc(pwd, decoded.Salt,
		decoded.Iterations,
		decoded.Memory,
		decoded.Parallelism,
		uint32(len(decoded.Digest)))
	return ConstantTimeEquals(decoded.Digest, otherDigest), nil
}

// Returns true if the encoded hash was produced with parameters
// other than the hasher's current configuration, or can't be parsed.
func (hasher *Argon2Hasher) NeedsRehash(encodedHash string) bool {
	decoded, ok := Decode(encodedHash)
	if !ok {
		return true
	}
	return decoded.Memory != hasher.config.Memory ||
		decoded.Iterations != hasher.config.Iterations ||
		decoded.Parallelism != hasher.config.Parallelism ||
		uint32(len(decoded.Salt)) != hasher.config.SaltLength ||
		uint32(len(decoded.Digest)) != hasher.config.KeyLength
}

// Creates a random salt
func (hasher *Argon2Hasher) createSalt() ([]byte, error) {
	b := make([]byte, hasher.config.SaltLength)
	n, err := io.ReadFull(hasher.random, b)
	if err != nil {
		return nil, fmt.Errorf("argon2id: failed to generate salt: %w", err)
	}
	if len(b) != n {
		return nil, ErrUnexpectedSaltBytes
	}
	return b, nil
}

func passwordBytes(password secret.Password) ([]byte, error) {
	if password == nil {
		return nil, ErrNullArgument
	}
	pwd, err := password.Bytes()
	if err != nil {
		if errors.Is(err, secret.ErrPasswordRequired) {
			return nil, fmt.Errorf("%w: %w", ErrNullArgument, err)
		}
		return nil, err
	}
	return pwd, nil
}
