package strength

import (
	"errors"
	"strings"
)

const (
	MSG_COMMON_PASSWORD     = "one of the most common passwords"
	MSG_CONTAINS_NAME       = "contains a name"
	MSG_VERY_SIMPLE_PATTERN = "very weak since it follows a very simple pattern"
	MSG_SIMPLE_PATTERN      = "weak since it follows a very simple pattern"
)

var (
	ErrWordListsNotLoaded = errors.New("strength: word lists not loaded")
)

// Read-only word lists consulted before the keyspace is scored
type WordLists interface {
	IsCommonPassword(password string) bool
	IsName(name string) bool
	Loaded() bool
}

// A strength range mapped to a label. The range ends below Upper,
// or at Upper when Inclusive is set.
type Bucket struct {
	Upper     float64
	Inclusive bool
	Label     string
}

func (b Bucket) contains(strength float64) bool {
	if b.Inclusive {
		return strength <= b.Upper
	}
	return strength < b.Upper
}

// Ascending strength buckets. The last entry catches everything
// above 0.9.
var Buckets = []Bucket{
	{Upper: 0.1, Label: "Very Weak"},
	{Upper: 0.2, Label: "Weak"},
	{Upper: 0.3, Label: "Bad"},
	{Upper: 0.4, Label: "Not Safe"},
	{Upper: 0.5, Label: "Medium"},
	{Upper: 0.6, Label: "Okay"},
	{Upper: 0.7, Label: "Safe"},
	{Upper: 0.8, Label: "Very Safe"},
	{Upper: 0.9, Inclusive: true, Label: "Extreme Safe"},
	{Upper: 1.0, Inclusive: true, Label: "Ultra Safe"},
}

// Returns the label of the bucket containing the strength
func ClassifyStrength(strength float64) string {
	for _, bucket := range Buckets {
		if bucket.contains(strength) {
			return bucket.Label
		}
	}
	return Buckets[len(Buckets)-1].Label
}

type Classifier struct {
	lists      WordLists
	targetBits float64
}

// Creates a classifier backed by loaded word lists. Returns
// ErrWordListsNotLoaded if the lists are nil or empty handles.
func NewClassifier(lists WordLists) (*Classifier, error) {
	return CreateClassifier(lists, DefaultTargetBits)
}

// Creates a classifier scoring against a custom number of bits
func CreateClassifier(lists WordLists, targetBits float64) (*Classifier, error) {
	if !loaded(lists) {
		return nil, ErrWordListsNotLoaded
	}
	if targetBits <= 0 {
		targetBits = DefaultTargetBits
	}
	return &Classifier{lists: lists, targetBits: targetBits}, nil
}

// Classifies the password. Word list matches take precedence,
// followed by trivial patterns, and finally the keyspace strength
// bucket.
func (c *Classifier) Classify(password string) (string, error) {

	if c == nil || !loaded(c.lists) {
		return "", ErrWordListsNotLoaded
	}

	common := c.lists.IsCommonPassword(strings.ToLower(password))
	name := c.lists.IsName(password)
	switch {
	case common && name:
		return MSG_COMMON_PASSWORD + " and " + MSG_CONTAINS_NAME, nil
	case common:
		return MSG_COMMON_PASSWORD, nil
	case name:
		return MSG_CONTAINS_NAME, nil
	}

	distinct := DistinctChars(password)
	if distinct <= 2 {
		return MSG_VERY_SIMPLE_PATTERN, nil
	}
	if distinct <= 3 {
		return MSG_SIMPLE_PATTERN, nil
	}

	targetBits := c.targetBits
	if targetBits <= 0 {
		targetBits = DefaultTargetBits
	}
	return ClassifyStrength(Strength(PossibleCombinationsFor(password), targetBits)), nil
}

func loaded(lists WordLists) bool {
	if lists == nil {
		return false
	}
	return lists.Loaded()
}
