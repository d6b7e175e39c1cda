package util

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var (
	ErrInvalidRange = errors.New("util: random range must be greater than zero")
)

// Returns a uniformly distributed integer in [0, max) read from
// the provided random source. crypto/rand.Int rejects samples
// outside of the largest multiple of max, so the result has no
// modulo bias.
func RandomIndex(random io.Reader, max int) (int, error) {
	if max <= 0 {
		return 0, ErrInvalidRange
	}
	if random == nil {
		random = rand.Reader
	}
	n, err := rand.Int(random, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}

// Returns n bytes read from the provided random source
func RandomBytes(random io.Reader, n int) ([]byte, error) {
	if random == nil {
		random = rand.Reader
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(random, b); err != nil {
		return nil, err
	}
	return b, nil
}
