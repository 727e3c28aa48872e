package logmsg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Serializer turns a resolved value into its structured text form
type Serializer interface {
	Serialize(value any) (string, error)
}

// SerializerFunc adapts a function to Serializer
type SerializerFunc func(value any) (string, error)

// Serialize implements Serializer
func (f SerializerFunc) Serialize(value any) (string, error) {
	return f(value)
}

// JSONSerializer encodes values as JSON without HTML escaping.
// Indent, when set, produces multi-line output.
type JSONSerializer struct {
	Indent string
}

// Serialize implements Serializer
func (s JSONSerializer) Serialize(value any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if s.Indent != DefaultJSONIndent {
		enc.SetIndent(StringValueEmpty, s.Indent)
	}
	if err := enc.Encode(value); err != nil {
		return StringValueEmpty, err
	}
	return strings.TrimSuffix(buf.String(), StringNewline), nil
}

// YAMLSerializer encodes values as YAML. Scalars encode to a single line;
// maps and lists produce block output.
type YAMLSerializer struct{}

// Serialize implements Serializer
func (YAMLSerializer) Serialize(value any) (string, error) {
	out, err := yaml.Marshal(value)
	if err != nil {
		return StringValueEmpty, err
	}
	return strings.TrimSuffix(string(out), StringNewline), nil
}

// StringSerializer uses the natural string form of a value, the same text
// an unserialized reference renders.
type StringSerializer struct{}

// Serialize implements Serializer
func (StringSerializer) Serialize(value any) (string, error) {
	return fmt.Sprint(value), nil
}

// SerializerByName returns a built-in serializer
func SerializerByName(name string) (Serializer, error) {
	switch name {
	case SerializerNameJSON:
		return JSONSerializer{}, nil
	case SerializerNameYAML:
		return YAMLSerializer{}, nil
	case SerializerNameString:
		return StringSerializer{}, nil
	default:
		return nil, NewConfigError(ErrMsgUnknownSerializer, name)
	}
}
