package serializer

import (
	"errors"
	"strings"
)

type SerializerType int

const (
	SERIALIZER_JSON SerializerType = iota
	SERIALIZER_YAML
)

var (
	ErrInvalidSerializer = errors.New("serializer: invalid serializer type")
)

type Serializer[E any] interface {
	Serialize(entity E) ([]byte, error)
	Deserialize(data []byte, e any) error
	Type() SerializerType
	Name() string
	Extension() string
}

func (st SerializerType) String() string {
	switch st {
	case SERIALIZER_JSON:
		return "json"
	case SERIALIZER_YAML:
		return "yaml"
	default:
		return ""
	}
}

// Parses a serializer name. An empty name selects JSON.
func ParseSerializer(name string) (SerializerType, error) {
	switch strings.ToLower(name) {
	case "", "json":
		return SERIALIZER_JSON, nil
	case "yaml", "yml":
		return SERIALIZER_YAML, nil
	default:
		return 0, ErrInvalidSerializer
	}
}

// Returns a serializer for the requested type
func NewSerializer[E any](serializerType SerializerType) (Serializer[E], error) {
	switch serializerType {
	case SERIALIZER_JSON:
		return NewJSONSerializer[E](), nil
	case SERIALIZER_YAML:
		return NewYAMLSerializer[E](), nil
	default:
		return nil, ErrInvalidSerializer
	}
}
