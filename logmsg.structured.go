package logmsg

import (
	"encoding/json"
	"fmt"
	"sync"
)

// Structured holds a resolved value and serializes it on first use.
// Loggers that skip a disabled line never call String, so the serializer
// never runs; loggers that do format it run the serializer exactly once,
// however many goroutines ask.
type Structured struct {
	value      any
	serializer Serializer

	once sync.Once
	text string
}

// NewStructured creates a lazy holder for value
func NewStructured(value any, serializer Serializer) *Structured {
	if serializer == nil {
		serializer = JSONSerializer{}
	}
	return &Structured{
		value:      value,
		serializer: serializer,
	}
}

// Value returns the held value without serializing it
func (s *Structured) Value() any {
	return s.value
}

// String returns the serialized form. A serializer failure is rendered
// inline instead of being returned, since this runs inside a logger.
func (s *Structured) String() string {
	s.once.Do(func() {
		text, err := s.serializer.Serialize(s.value)
		if err != nil {
			text = fmt.Sprintf(StructuredSerializeErr, s.value, err)
		}
		s.text = text
	})
	return s.text
}

// MarshalJSON encodes the held value, so JSON log formatters embed the
// value itself rather than its serialized text.
func (s *Structured) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.value)
}
