package charset

import (
	"fmt"
	"strings"
)

// Bitmask over the four character classes
type Flags int

const (
	None      Flags = 0
	Digits    Flags = 1 << 0
	Uppercase Flags = 1 << 1
	Lowercase Flags = 1 << 2
	Symbols   Flags = 1 << 3
	All             = Digits | Uppercase | Lowercase | Symbols
)

func (f Flags) Has(flags Flags) bool {
	return f&flags == flags
}

func (f Flags) Set(flags Flags) Flags {
	return f | flags
}

func (f Flags) Clear(flags Flags) Flags {
	return f &^ flags
}

// Returns false if any bit outside of the four classes is set
func (f Flags) Valid() bool {
	return f&^All == 0
}

// Returns the active classes in the order required characters
// are drawn: lower, upper, digits, symbols.
func (f Flags) Classes() []Class {
	classes := make([]Class, 0, len(classOrder))
	for _, class := range classOrder {
		if f.Has(class.Flag()) {
			classes = append(classes, class)
		}
	}
	return classes
}

// Returns the union of every active class's members
func (f Flags) Members() string {
	var sb strings.Builder
	for _, class := range f.Classes() {
		sb.WriteString(class.Members())
	}
	return sb.String()
}

func (f Flags) Names() []string {
	classes := f.Classes()
	names := make([]string, len(classes))
	for i, class := range classes {
		names[i] = class.String()
	}
	return names
}

func (f Flags) String() string {
	if f == None {
		return "none"
	}
	return strings.Join(f.Names(), ",")
}

// Parses a list of class names into a flag set. Accepted names are
// digits, upper, lower, symbols, all and none.
func ParseFlags(names []string) (Flags, error) {
	flags := None
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			switch strings.ToLower(strings.TrimSpace(part)) {
			case "":
				continue
			case "all":
				flags = flags.Set(All)
			case "none":
			case "digits", "digit":
				flags = flags.Set(Digits)
			case "upper", "uppercase":
				flags = flags.Set(Uppercase)
			case "lower", "lowercase":
				flags = flags.Set(Lowercase)
			case "symbols", "symbol":
				flags = flags.Set(Symbols)
			default:
				return None, fmt.Errorf("%w: %s", ErrInvalidClass, part)
			}
		}
	}
	return flags, nil
}
