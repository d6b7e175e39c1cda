package generator

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
	"github.com/stretchr/testify/assert"
)

func containsClass(password string, class charset.Class) bool {
	return strings.ContainsAny(password, class.Members())
}

func TestGenerateDefaults(t *testing.T) {

	generator := NewGenerator(rand.Reader)

	for i := 0; i < 100; i++ {
		password, err := generator.Generate()
		assert.Nil(t, err)
		assert.Equal(t, MIN_LENGTH, utf8.RuneCountInString(password))
		for _, class := range charset.All.Classes() {
			assert.True(t, containsClass(password, class),
				"%q missing %s", password, class)
		}
	}
}

func TestGenerateLengths(t *testing.T) {

	generator := NewGenerator(nil)

	tests := []struct {
		length   int
		expected int
	}{
		{0, MIN_LENGTH},
		{-5, MIN_LENGTH},
		{16, 16},
		{64, 64},
		{4096, 4096},
		{10000, MAX_LENGTH},
	}

	for _, test := range tests {
		password, err := generator.SetLength(test.length).Generate()
		assert.Nil(t, err)
		assert.Equal(t, test.expected, utf8.RuneCountInString(password),
			"SetLength(%d)", test.length)
	}
}

func TestGenerateClassesAndExclusions(t *testing.T) {

	generator := NewGenerator(rand.Reader).
		SetLength(32).
		RemoveClasses(charset.Symbols | charset.Digits).
		ExcludeCharset("abcdefghijklmnopqrstuvwxy")

	for i := 0; i < 50; i++ {
		password, err := generator.Generate()
		assert.Nil(t, err)
		assert.False(t, containsClass(password, charset.Symbol))
		assert.False(t, containsClass(password, charset.Digit))
		assert.False(t, strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxy"))
		// only 'z' survives in the lower class so it must appear
		assert.Contains(t, password, "z")
		assert.True(t, containsClass(password, charset.Upper))
	}
}

func TestGenerateIncludeOnly(t *testing.T) {

	generator := NewGenerator(rand.Reader).
		SetClasses(charset.None).
		IncludeCharset("äöü")

	password, err := generator.Generate()
	assert.Nil(t, err)
	assert.Equal(t, MIN_LENGTH, utf8.RuneCountInString(password))
	for _, r := range password {
		assert.Contains(t, "äöü", string(r))
	}
}

func TestGenerateCharsetEmpty(t *testing.T) {

	generator := NewGenerator(rand.Reader).
		SetClasses(charset.Digits).
		ExcludeCharset(charset.DIGITS)

	_, err := generator.Generate()
	assert.True(t, errors.Is(err, ErrCharsetEmpty))
}

func TestGenerateClassExcluded(t *testing.T) {

	// digits are entirely excluded but lower letters remain, so
	// the charset is not empty while the digit class is unsatisfiable
	generator := NewGenerator(rand.Reader).
		SetClasses(charset.Digits | charset.Lowercase).
		ExcludeCharset(charset.DIGITS)

	_, err := generator.Generate()
	assert.True(t, errors.Is(err, ErrClassExcluded))
	assert.Contains(t, err.Error(), "digits")
}

func TestGenerateRandomFailure(t *testing.T) {

	generator := NewGenerator(bytes.NewReader([]byte{1, 2, 3}))

	_, err := generator.Generate()
	assert.NotNil(t, err)
}

func TestGenerateN(t *testing.T) {

	generator := NewGenerator(rand.Reader)

	passwords, err := generator.GenerateN(5)
	assert.Nil(t, err)
	assert.Len(t, passwords, 5)

	unique := make(map[string]struct{})
	for _, password := range passwords {
		unique[password] = struct{}{}
	}
	assert.Len(t, unique, 5)

	_, err = generator.GenerateN(0)
	assert.True(t, errors.Is(err, ErrInvalidQuantity))
}

func TestEffectiveCharset(t *testing.T) {

	generator := NewGenerator(rand.Reader).
		SetClasses(charset.Digits).
		IncludeCharset("xy1").
		ExcludeCharset("0y")

	set, err := generator.EffectiveCharset()
	assert.Nil(t, err)
	assert.Equal(t, "123456789x", set.String())
}

func TestCreateGeneratorValidation(t *testing.T) {

	_, err := CreateGenerator(rand.Reader, Params{
		Length:  8,
		Classes: charset.Flags(1 << 6),
	})
	assert.True(t, errors.Is(err, ErrInvalidLength))
	assert.True(t, errors.Is(err, ErrInvalidClasses))

	_, err = CreateGenerator(rand.Reader, Params{
		Length:  20,
		Classes: charset.Digits,
		Exclude: charset.DIGITS,
	})
	assert.True(t, errors.Is(err, ErrCharsetEmpty))

	generator, err := CreateGenerator(rand.Reader, Params{
		Length:  20,
		Classes: charset.Lowercase,
	})
	assert.Nil(t, err)
	password, err := generator.Generate()
	assert.Nil(t, err)
	assert.Len(t, password, 20)
}
