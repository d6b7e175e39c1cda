package util

import (
	"bytes"
	"crypto/rand"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomIndex(t *testing.T) {

	counts := make([]int, 5)
	for i := 0; i < 1000; i++ {
		n, err := RandomIndex(rand.Reader, 5)
		assert.Nil(t, err)
		assert.True(t, n >= 0 && n < 5)
		counts[n]++
	}
	for i, count := range counts {
		assert.NotZero(t, count, "index %d never drawn", i)
	}

	_, err := RandomIndex(rand.Reader, 0)
	assert.True(t, errors.Is(err, ErrInvalidRange))
}

func TestRandomIndexShortReader(t *testing.T) {
	_, err := RandomIndex(bytes.NewReader(nil), 10)
	assert.NotNil(t, err)
}

func TestRandomBytes(t *testing.T) {

	b, err := RandomBytes(nil, 16)
	assert.Nil(t, err)
	assert.Len(t, b, 16)

	_, err = RandomBytes(bytes.NewReader([]byte{1, 2}), 16)
	assert.NotNil(t, err)
}

func TestFingerprint(t *testing.T) {

	a := Fingerprint([]byte("password\n123456\n"))
	b := Fingerprint([]byte("password\n123456\n"))
	c := Fingerprint([]byte("password\n"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}
