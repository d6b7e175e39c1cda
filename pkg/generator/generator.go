package generator

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/jeremyhahn/go-password-toolkit/pkg/charset"
	"github.com/jeremyhahn/go-password-toolkit/pkg/util"
)

const (
	MIN_LENGTH = 16
	MAX_LENGTH = 4096

	// Number of times a required character is redrawn from its class
	// before falling back to the class members that survived exclusion
	MaxResampleAttempts = 64
)

var (
	ErrCharsetEmpty    = errors.New("generator: charset empty")
	ErrClassExcluded   = errors.New("generator: every member of an active character class is excluded")
	ErrInvalidLength   = fmt.Errorf("generator: length must be between %d and %d", MIN_LENGTH, MAX_LENGTH)
	ErrInvalidClasses  = errors.New("generator: unknown character class flags")
	ErrInvalidQuantity = errors.New("generator: quantity must be greater than zero")
)

type Params struct {
	Length  int           `yaml:"length" json:"length" mapstructure:"length"`
	Classes charset.Flags `yaml:"classes" json:"classes" mapstructure:"classes"`
	Include string        `yaml:"include" json:"include" mapstructure:"include"`
	Exclude string        `yaml:"exclude" json:"exclude" mapstructure:"exclude"`
}

// Returns the default generator parameters:
//
// Length: 16
// Classes: digits, upper, lower, symbols
func DefaultParams() Params {
	return Params{
		Length:  MIN_LENGTH,
		Classes: charset.All,
	}
}

// Validates the parameters without clamping. The returned error
// joins one error per invalid field.
func (p Params) Validate() error {
	var errs []error
	if p.Length < MIN_LENGTH || p.Length > MAX_LENGTH {
		errs = append(errs, fmt.Errorf("%w: got %d", ErrInvalidLength, p.Length))
	}
	if !p.Classes.Valid() {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidClasses, int(p.Classes)))
	}
	if len(errs) == 0 && effectiveCharset(p).Len() == 0 {
		errs = append(errs, ErrCharsetEmpty)
	}
	return errors.Join(errs...)
}

type Generator struct {
	random io.Reader
	params Params
}

// Creates a new password generator using the default parameters.
// A nil random source defaults to crypto/rand.
func NewGenerator(random io.Reader) *Generator {
	if random == nil {
		random = rand.Reader
	}
	return &Generator{random: random, params: DefaultParams()}
}

// Creates a new password generator using user-defined parameters.
// Out of range parameters are rejected rather than clamped.
func CreateGenerator(random io.Reader, params Params) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	generator := NewGenerator(random)
	generator.params = params
	return generator, nil
}

func (g *Generator) Params() Params {
	return g.params
}

// Sets the password length, clamped to [16, 4096]
func (g *Generator) SetLength(length int) *Generator {
	g.params.Length = clamp(length, MIN_LENGTH, MAX_LENGTH)
	return g
}

// Replaces the active character classes
func (g *Generator) SetClasses(flags charset.Flags) *Generator {
	g.params.Classes = flags & charset.All
	return g
}

func (g *Generator) AddClasses(flags charset.Flags) *Generator {
	g.params.Classes = g.params.Classes.Set(flags & charset.All)
	return g
}

func (g *Generator) RemoveClasses(flags charset.Flags) *Generator {
	g.params.Classes = g.params.Classes.Clear(flags)
	return g
}

// Characters always added to the effective charset
func (g *Generator) IncludeCharset(chars string) *Generator {
	g.params.Include = chars
	return g
}

// Characters always removed from the effective charset
func (g *Generator) ExcludeCharset(chars string) *Generator {
	g.params.Exclude = chars
	return g
}

// Returns the union of the included characters and every active
// class, minus the excluded characters.
func (g *Generator) EffectiveCharset() (charset.Set, error) {
	set := effectiveCharset(g.params)
	if set.Len() == 0 {
		return set, ErrCharsetEmpty
	}
	return set, nil
}

// Generates a password of the configured length containing at least
// one character of every active class that survives exclusion.
func (g *Generator) Generate() (string, error) {

	set, err := g.EffectiveCharset()
	if err != nil {
		return "", err
	}
	pool := set.Runes()

	classes := g.params.Classes.Classes()
	required := make([]rune, 0, len(classes))
	for _, class := range classes {
		r, err := g.requiredRune(class, set)
		if err != nil {
			return "", err
		}
		required = append(required, r)
	}

	result := make([]rune, g.params.Length)
	pos := copy(result, required)

	for ; pos < len(result); pos++ {
		idx, err := util.RandomIndex(g.random, len(pool))
		if err != nil {
			return "", err
		}
		result[pos] = pool[idx]
	}

	if err := g.shuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// Generates quantity passwords
func (g *Generator) GenerateN(quantity int) ([]string, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	passwords := make([]string, quantity)
	for i := range passwords {
		password, err := g.Generate()
		if err != nil {
			return nil, err
		}
		passwords[i] = password
	}
	return passwords, nil
}

// Draws a required character from the full member sequence of the class
// and redraws while the character is not in the effective charset.
func (g *Generator) requiredRune(class charset.Class, set charset.Set) (rune, error) {

	members := []rune(class.Members())

	retained := make([]rune, 0, len(members))
	for _, r := range members {
		if set.Contains(r) {
			retained = append(retained, r)
		}
	}
	if len(retained) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrClassExcluded, class)
	}

	for attempt := 0; attempt < MaxResampleAttempts; attempt++ {
		idx, err := util.RandomIndex(g.random, len(members))
		if err != nil {
			return 0, err
		}
		if r := members[idx]; set.Contains(r) {
			return r, nil
		}
	}

	// Uniform over the retained members, same distribution as
	// continuing to redraw
	idx, err := util.RandomIndex(g.random, len(retained))
	if err != nil {
		return 0, err
	}
	return retained[idx], nil
}

// Fisher-Yates shuffle
func (g *Generator) shuffle(runes []rune) error {
	for i := len(runes) - 1; i > 0; i-- {
		j, err := util.RandomIndex(g.random, i+1)
		if err != nil {
			return err
		}
		runes[i], runes[j] = runes[j], runes[i]
	}
	return nil
}

func effectiveCharset(params Params) charset.Set {
	set := charset.NewSet(params.Include, params.Classes.Members())
	set.Remove(params.Exclude)
	return set
}

func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
