package accessor

import (
	"reflect"

	"github.com/itsatony/go-logmsg"
)

// Reflect reaches into any slice, array or string-keyed map through
// reflection. Indexes follow logmsg.NormalizeIndex.
type Reflect struct{}

// Item implements logmsg.ItemAccessor
func (Reflect) Item(node any, index int) (any, bool) {
	v := indirect(reflect.ValueOf(node))
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		i, ok := logmsg.NormalizeIndex(index, v.Len())
		if !ok {
			return nil, false
		}
		return v.Index(i).Interface(), true
	default:
		return nil, false
	}
}

// Property implements logmsg.PropertyAccessor
func (Reflect) Property(node any, key string) (any, bool) {
	v := indirect(reflect.ValueOf(node))
	if v.Kind() != reflect.Map || v.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	value := v.MapIndex(reflect.ValueOf(key).Convert(v.Type().Key()))
	if !value.IsValid() {
		return nil, false
	}
	return value.Interface(), true
}

func indirect(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
