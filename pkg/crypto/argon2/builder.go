package argon2

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/argon2"
)

// Builder configures an Argon2Hasher. Every setter clamps its
// argument to the documented range and returns the builder:
//
// Iterations: 1 - 10
// MemoryKB: 8192 - 524288
// Parallelism: 1 - 12
// SaltLength: 16 - 64 bytes
// HashLength: 16 - 64 bytes
type Builder struct {
	random  io.Reader
	config  Argon2Config
	keyFunc KeyFunc
}

func NewBuilder() *Builder {
	return &Builder{
		random:  rand.Reader,
		config:  DefaultConfig(),
		keyFunc: argon2.IDKey,
	}
}

// Starts a builder from an existing configuration. Each field is
// clamped as if passed to its setter.
func NewBuilderFromConfig(config Argon2Config) *Builder {
	return NewBuilder().
		Iterations(int(config.Iterations)).
		MemoryKB(int(config.Memory)).
		Parallelism(int(config.Parallelism)).
		SaltLength(int(config.SaltLength)).
		HashLength(int(config.KeyLength))
}

func (b *Builder) Iterations(count int) *Builder {
	b.config.Iterations = uint32(clamp(count, MIN_ITERATIONS, MAX_ITERATIONS))
	return b
}

func (b *Builder) MemoryKB(kb int) *Builder {
	b.config.Memory = uint32(clamp(kb, MIN_MEMORY, MAX_MEMORY))
	return b
}

func (b *Builder) Parallelism(threads int) *Builder {
	b.config.Parallelism = uint8(clamp(threads, MIN_PARALLELISM, MAX_PARALLELISM))
	return b
}

func (b *Builder) SaltLength(length int) *Builder {
	b.config.SaltLength = uint32(clamp(length, MIN_SALT_LENGTH, MAX_SALT_LENGTH))
	return b
}

func (b *Builder) HashLength(length int) *Builder {
	b.config.KeyLength = uint32(clamp(length, MIN_KEY_LENGTH, MAX_KEY_LENGTH))
	return b
}

// Sets the source used to generate salts. Nil selects crypto/rand.
func (b *Builder) Random(random io.Reader) *Builder {
	if random == nil {
		random = rand.Reader
	}
	b.random = random
	return b
}

// Replaces the key derivation function. Nil selects argon2.IDKey.
func (b *Builder) KeyFunc(keyFunc KeyFunc) *Builder {
	if keyFunc == nil {
		keyFunc = argon2.IDKey
	}
	b.keyFunc = keyFunc
	return b
}

func (b *Builder) Config() Argon2Config {
	return b.config
}

func (b *Builder) Build() Argon2 {
	return &Argon2Hasher{
		random:  b.random,
		config:  b.config,
		keyFunc: b.keyFunc,
	}
}
