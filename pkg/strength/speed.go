package strength

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownCrackSpeed    = errors.New("strength: unknown crack speed")
	ErrUnknownHashAlgorithm = errors.New("strength: unknown hash algorithm")
)

// Assumed attacker throughput in guesses per second
type CrackSpeed struct {
	Name string
	Rate uint64
}

func (s CrackSpeed) String() string {
	return s.Name
}

// A divisor applied to the attacker's raw rate that models the
// cost of computing one guess against the target hashing scheme
type HashAlgorithm struct {
	Name       string
	Multiplier uint64
}

func (a HashAlgorithm) String() string {
	return a.Name
}

var (
	VerySlow  = CrackSpeed{Name: "very-slow", Rate: 1}
	Slow      = CrackSpeed{Name: "slow", Rate: 100}
	Medium    = CrackSpeed{Name: "medium", Rate: 10_000}
	Fast      = CrackSpeed{Name: "fast", Rate: 1_000_000}
	VeryFast  = CrackSpeed{Name: "very-fast", Rate: 100_000_000}
	UltraFast = CrackSpeed{Name: "ultra-fast", Rate: 10_000_000_000}
	Insane    = CrackSpeed{Name: "insane", Rate: 1_000_000_000_000}

	RawHash         = HashAlgorithm{Name: "raw", Multiplier: 1}
	PBKDF2Medium    = HashAlgorithm{Name: "pbkdf2-medium", Multiplier: 200}
	Bcrypt12        = HashAlgorithm{Name: "bcrypt-12", Multiplier: 800}
	PBKDF2High      = HashAlgorithm{Name: "pbkdf2-high", Multiplier: 1000}
	Argon2id64MBT3  = HashAlgorithm{Name: "argon2id-64mb-t3", Multiplier: 20_000}
	Argon2id512MBT4 = HashAlgorithm{Name: "argon2id-512mb-t4", Multiplier: 200_000}
)

// Returns every crack speed from slowest to fastest
func CrackSpeeds() []CrackSpeed {
	return []CrackSpeed{VerySlow, Slow, Medium, Fast, VeryFast, UltraFast, Insane}
}

// Returns every hash algorithm from cheapest to most expensive
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{RawHash, PBKDF2Medium, Bcrypt12, PBKDF2High, Argon2id64MBT3, Argon2id512MBT4}
}

// Parses a crack speed name. Matching ignores case, dashes
// and underscores so "VeryFast", "very_fast" and "very-fast"
// are equivalent.
func ParseCrackSpeed(name string) (CrackSpeed, error) {
	for _, speed := range CrackSpeeds() {
		if normalize(speed.Name) == normalize(name) {
			return speed, nil
		}
	}
	return CrackSpeed{}, fmt.Errorf("%w: %s", ErrUnknownCrackSpeed, name)
}

// Parses a hash algorithm name using the same rules as ParseCrackSpeed
func ParseHashAlgorithm(name string) (HashAlgorithm, error) {
	for _, algorithm := range HashAlgorithms() {
		if normalize(algorithm.Name) == normalize(name) {
			return algorithm, nil
		}
	}
	return HashAlgorithm{}, fmt.Errorf("%w: %s", ErrUnknownHashAlgorithm, name)
}

// Returns the number of guesses per second after dividing the
// attacker's raw rate by the algorithm's multiplier, never less
// than one.
func EffectiveRate(speed CrackSpeed, algorithm HashAlgorithm) uint64 {
	multiplier := algorithm.Multiplier
	if multiplier < 1 {
		multiplier = 1
	}
	rate := speed.Rate / multiplier
	if rate < 1 {
		rate = 1
	}
	return rate
}

func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
}
