package strength

import (
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
)

const (
	DefaultTargetBits = 128.0
)

// Returns charsetSize^length, or zero if either argument is
// not positive
func PossibleCombinations(length, charsetSize int) *big.Int {
	if length <= 0 || charsetSize <= 0 {
		return new(big.Int)
	}
	return new(big.Int).Exp(big.NewInt(int64(charsetSize)), big.NewInt(int64(length)), nil)
}

// Returns the keyspace of the password: the combined size of every
// character class it draws from, raised to its length in runes
func PossibleCombinationsFor(password string) *big.Int {
	return PossibleCombinations(utf8.RuneCountInString(password), charset.Length(password))
}

// Returns log2(combinations) / targetBits clamped to [0, 1].
// Combinations of one or less have no strength. A non-positive
// target selects DefaultTargetBits.
func Strength(combinations *big.Int, targetBits float64) float64 {
	if combinations == nil || combinations.Cmp(big.NewInt(1)) <= 0 {
		return 0
	}
	if targetBits <= 0 {
		targetBits = DefaultTargetBits
	}
	strength := Bits(combinations) / targetBits
	return math.Max(0, math.Min(1, strength))
}

// Returns the strength of the password against DefaultTargetBits
func PasswordStrength(password string) float64 {
	return Strength(PossibleCombinationsFor(password), DefaultTargetBits)
}

// Returns log2 of the combinations, or zero if the combinations
// are not positive
func Bits(combinations *big.Int) float64 {
	if combinations == nil || combinations.Sign() <= 0 {
		return 0
	}
	bitLen := combinations.BitLen()
	if bitLen <= 64 {
		f, _ := new(big.Float).SetInt(combinations).Float64()
		return math.Log2(f)
	}
	// keep the 64 most significant bits and add the shifted
	// exponent back
	shift := uint(bitLen - 64)
	top := new(big.Int).Rsh(combinations, shift)
	f, _ := new(big.Float).SetInt(top).Float64()
	return math.Log2(f) + float64(shift)
}

// Returns the number of distinct runes in the password
func DistinctChars(password string) int {
	seen := make(map[rune]struct{}, len(password))
	for _, r := range password {
		seen[r] = struct{}{}
	}
	return len(seen)
}
