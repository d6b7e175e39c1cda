package charset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const (
	DIGITS  = "0123456789"
	UPPER   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LOWER   = "abcdefghijklmnopqrstuvwxyz"
	SYMBOLS = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

var (
	ErrInvalidClass = errors.New("charset: invalid character class")
)

// One of the four fixed character classes
type Class int

const (
	Digit Class = iota
	Upper
	Lower
	Symbol
)

// The order required characters are drawn in by the generator
var classOrder = []Class{Lower, Upper, Digit, Symbol}

// Returns the ordered member sequence of the class
func (c Class) Members() string {
	switch c {
	case Digit:
		return DIGITS
	case Upper:
		return UPPER
	case Lower:
		return LOWER
	case Symbol:
		return SYMBOLS
	default:
		return ""
	}
}

// Returns the number of members in the class
func (c Class) Size() int {
	return len(c.Members())
}

func (c Class) Flag() Flags {
	switch c {
	case Digit:
		return Digits
	case Upper:
		return Uppercase
	case Lower:
		return Lowercase
	case Symbol:
		return Symbols
	default:
		return None
	}
}

func (c Class) Contains(r rune) bool {
	return strings.ContainsRune(c.Members(), r)
}

func (c Class) String() string {
	switch c {
	case Digit:
		return "digits"
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	case Symbol:
		return "symbols"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// Returns the class the rune belongs to. Runes outside the
// four fixed classes return false.
func ClassOf(r rune) (Class, bool) {
	for _, class := range classOrder {
		if class.Contains(r) {
			return class, true
		}
	}
	return 0, false
}

// Returns the sum of the class sizes for every class that has
// at least one member present in the password.
func Length(password string) int {
	var present Flags
	for _, r := range password {
		if class, ok := ClassOf(r); ok {
			present = present.Set(class.Flag())
		}
	}
	size := 0
	for _, class := range present.Classes() {
		size += class.Size()
	}
	return size
}

// Set is a deduplicated set of runes
type Set struct {
	runes map[rune]struct{}
}

func NewSet(members ...string) Set {
	set := Set{runes: make(map[rune]struct{})}
	for _, m := range members {
		set.Add(m)
	}
	return set
}

func (s *Set) Add(members string) {
	if s.runes == nil {
		s.runes = make(map[rune]struct{})
	}
	for _, r := range members {
		s.runes[r] = struct{}{}
	}
}

func (s *Set) Remove(members string) {
	for _, r := range members {
		delete(s.runes, r)
	}
}

func (s Set) Contains(r rune) bool {
	_, ok := s.runes[r]
	return ok
}

func (s Set) Len() int {
	return len(s.runes)
}

// Returns the members of the set in ascending order so
// index draws over the set are reproducible for a given
// random source.
func (s Set) Runes() []rune {
	runes := make([]rune, 0, len(s.runes))
	for r := range s.runes {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

func (s Set) String() string {
	return string(s.Runes())
}
