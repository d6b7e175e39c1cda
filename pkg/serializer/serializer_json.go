package serializer

import (
	"bytes"
	"encoding/json"
)

type JSONSerializer[E any] struct {
	Serializer[E]
}

func NewJSONSerializer[E any]() Serializer[E] {
	return &JSONSerializer[E]{}
}

// Serializes the entity as indented JSON. HTML escaping is disabled
// so generated passwords containing <, > or & are printed verbatim.
func (js JSONSerializer[E]) Serialize(entity E) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(entity); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Deserializes a single JSON document, rejecting fields the entity
// doesn't declare
func (js JSONSerializer[E]) Deserialize(data []byte, e any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(e)
}

func (js JSONSerializer[E]) Type() SerializerType {
	return SERIALIZER_JSON
}

func (js JSONSerializer[E]) Name() string {
	return "json"
}

func (js JSONSerializer[E]) Extension() string {
	return ".json"
}
