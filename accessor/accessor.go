// Package accessor provides property and item accessors that let logmsg
// tree data paths reach into values the navigator does not handle natively:
// structs, typed maps and arbitrary slices or arrays.
//
//	r := logmsg.NewRenderer(
//		logmsg.WithPropertyAccessor(accessor.Chain(accessor.NewStruct(""), accessor.Reflect{})),
//		logmsg.WithItemAccessor(accessor.Reflect{}),
//	)
package accessor

import (
	"github.com/itsatony/go-logmsg"
)

// PropertyChain tries each accessor in order and returns the first hit
type PropertyChain []logmsg.PropertyAccessor

// Property implements logmsg.PropertyAccessor
func (c PropertyChain) Property(node any, key string) (any, bool) {
	for _, a := range c {
		if a == nil {
			continue
		}
		if value, ok := a.Property(node, key); ok {
			return value, true
		}
	}
	return nil, false
}

// ItemChain tries each accessor in order and returns the first hit
type ItemChain []logmsg.ItemAccessor

// Item implements logmsg.ItemAccessor
func (c ItemChain) Item(node any, index int) (any, bool) {
	for _, a := range c {
		if a == nil {
			continue
		}
		if value, ok := a.Item(node, index); ok {
			return value, true
		}
	}
	return nil, false
}

// Chain combines property accessors
func Chain(accessors ...logmsg.PropertyAccessor) PropertyChain {
	return PropertyChain(accessors)
}

// ChainItems combines item accessors
func ChainItems(accessors ...logmsg.ItemAccessor) ItemChain {
	return ItemChain(accessors)
}
