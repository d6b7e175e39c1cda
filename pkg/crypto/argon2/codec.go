package argon2

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

// EncodedHash is the parsed form of
//
//	$argon2id$v=19$m=<memoryKB>,t=<iterations>,p=<parallelism>$<salt>$<digest>
type EncodedHash struct {
	Memory      uint32
	Iterations  uint32
	Parallelism uint8
	Salt        []byte
	Digest      []byte
}

// Returns the canonical encoded form. Salt and digest use the
// standard base64 alphabet with padding.
func (h EncodedHash) String() string {
	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		ALGORITHM, argon2.Version, h.Memory, h.Iterations, h.Parallelism,
		base64.StdEncoding.EncodeToString(h.Salt),
		base64.StdEncoding.EncodeToString(h.Digest))
}

// Decodes an Argon2id encoded hash. Returns false for any
// malformed input.
func Decode(encodedHash string) (*EncodedHash, bool) {

	vals := splitSegments(encodedHash)
	if len(vals) != 5 {
		return nil, false
	}
	if !strings.EqualFold(vals[0], ALGORITHM) {
		return nil, false
	}
	if !strings.EqualFold(vals[1], fmt.Sprintf("v=%d", argon2.Version)) {
		return nil, false
	}

	h, ok := parseParams(vals[2])
	if !ok {
		return nil, false
	}

	salt, err := base64.StdEncoding.DecodeString(vals[3])
	if err != nil {
		return nil, false
	}
	digest, err := base64.StdEncoding.DecodeString(vals[4])
	if err != nil || len(digest) == 0 {
		return nil, false
	}

	h.Salt = salt
	h.Digest = digest
	return h, true
}

// Compares two buffers without exiting early on the first differing
// byte. Buffers of different lengths return false before any byte
// is inspected.
func ConstantTimeEquals(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Splits on '$' and discards empty segments
func splitSegments(encodedHash string) []string {
	return strings.FieldsFunc(encodedHash, func(r rune) bool {
		return r == '$'
	})
}

// Parses "m=<int>,t=<int>,p=<int>". Each key must appear exactly once
// and no other keys are permitted. Values below the KDF minimums are
// raised to the minimum. Values that don't fit the KDF argument types
// are rejected.
func parseParams(segment string) (*EncodedHash, bool) {

	var memory, iterations, parallelism int
	seen := make(map[string]bool, 3)

	for _, pair := range strings.Split(segment, ",") {
		if pair == "" {
			continue
		}
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) != 2 {
			return nil, false
		}
		key := kv[0]
		if seen[key] {
			return nil, false
		}
		value, err := strconv.Atoi(kv[1])
		if err != nil {
			return nil, false
		}
		switch key {
		case "m":
			memory = value
		case "t":
			iterations = value
		case "p":
			parallelism = value
		default:
			return nil, false
		}
		seen[key] = true
	}
	if len(seen) != 3 {
		return nil, false
	}

	memory = max(memory, MIN_MEMORY)
	iterations = max(iterations, MIN_ITERATIONS)
	parallelism = max(parallelism, MIN_PARALLELISM)

	if int64(memory) > math.MaxUint32 || int64(iterations) > math.MaxUint32 || parallelism > math.MaxUint8 {
		return nil, false
	}

	return &EncodedHash{
		Memory:      uint32(memory),
		Iterations:  uint32(iterations),
		Parallelism: uint8(parallelism),
	}, true
}
