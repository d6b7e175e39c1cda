package util

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

func NewID(input []byte) uint64 {
	return xxhash.Sum64(input)
}

// Returns the xxhash ID of the input as a fixed width hex string
func Fingerprint(input []byte) string {
	return fmt.Sprintf("%016x", NewID(input))
}
