package accessor

import (
	"fmt"
	"reflect"

	"github.com/itsatony/go-cuserr"
	"github.com/mitchellh/mapstructure"
)

// Struct resolves properties on structs and struct pointers. Field names
// come from the configured struct tag; untagged fields keep their Go name
// and fields tagged "-" are hidden. Zero fields tagged omitempty are absent.
type Struct struct {
	tagName string
}

// NewStruct creates a struct accessor reading tagName. An empty tagName
// uses DefaultTagName.
func NewStruct(tagName string) *Struct {
	if tagName == "" {
		tagName = DefaultTagName
	}
	return &Struct{tagName: tagName}
}

// TagName returns the struct tag the accessor reads
func (s *Struct) TagName() string {
	return s.tagName
}

// Property implements logmsg.PropertyAccessor
func (s *Struct) Property(node any, key string) (any, bool) {
	if !isStruct(node) {
		return nil, false
	}
	fields, err := s.ToMap(node)
	if err != nil {
		return nil, false
	}
	value, ok := fields[key]
	return value, ok
}

// ToMap decodes a struct into a map keyed by field name. Nested structs
// become nested maps.
func (s *Struct) ToMap(node any) (map[string]any, error) {
	if !isStruct(node) {
		return nil, cuserr.NewValidationError(ErrCodeAccessor, ErrMsgNotStruct).
			WithMetadata(MetaKeyType, typeName(node))
	}

	var result map[string]any
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: s.tagName,
		Result:  &result,
	})
	if err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeAccessor, ErrMsgDecoderCreate)
	}
	if err := decoder.Decode(node); err != nil {
		return nil, cuserr.WrapStdError(err, ErrCodeAccessor, ErrMsgStructDecode).
			WithMetadata(MetaKeyType, typeName(node))
	}
	return result, nil
}

func isStruct(node any) bool {
	v := reflect.ValueOf(node)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return false
		}
		v = v.Elem()
	}
	return v.Kind() == reflect.Struct
}

func typeName(node any) string {
	if node == nil {
		return StructTypeUnavailable
	}
	return fmt.Sprintf("%T", node)
}
