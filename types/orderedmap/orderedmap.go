package orderedmap

/*
	Thin adapter over github.com/wk8/go-ordered-map/v2 so the rest of the code
	does not depend on the third-party surface directly.
	NOTE: don't rely on the existence of this package in the future if a standard
	library implementation emerges.
*/

import (
	wk8 "github.com/wk8/go-ordered-map/v2"
)

// Pair is a key/value entry in iteration order. Next/Prev walk the map.
type Pair[K comparable, V any] wk8.Pair[K, V]

// Next returns the pair following p in insertion order, or nil at the end
func (p *Pair[K, V]) Next() *Pair[K, V] {
	return (*Pair[K, V])((*wk8.Pair[K, V])(p).Next())
}

// Prev returns the pair preceding p in insertion order, or nil at the front
func (p *Pair[K, V]) Prev() *Pair[K, V] {
	return (*Pair[K, V])((*wk8.Pair[K, V])(p).Prev())
}

// OrderedMap stores data in insertion order
type OrderedMap[K comparable, V any] struct {
	om *wk8.OrderedMap[K, V]
}

// NewOrderedMap creates a new OrderedMap of type K, V
func NewOrderedMap[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{om: wk8.New[K, V]()}
}

// Set will store a key-value pair. If the key already exists, it will overwrite
// the existing key-value pair without changing its position.
func (o *OrderedMap[K, V]) Set(key K, val V) {
	o.om.Set(key, val)
}

// Get returns the value stored under key and whether it was present
func (o *OrderedMap[K, V]) Get(key K) (V, bool) {
	return o.om.Get(key)
}

// Delete removes the key-value pair stored under key, preserving the order of
// the remaining pairs. Returns true when the key was present.
func (o *OrderedMap[K, V]) Delete(key K) bool {
	_, present := o.om.Delete(key)
	return present
}

// Len returns the number of stored pairs
func (o *OrderedMap[K, V]) Len() int {
	return o.om.Len()
}

// Front returns the oldest pair or nil when the map is empty
func (o *OrderedMap[K, V]) Front() *Pair[K, V] {
	return (*Pair[K, V])(o.om.Oldest())
}

// Back returns the newest pair or nil when the map is empty
func (o *OrderedMap[K, V]) Back() *Pair[K, V] {
	return (*Pair[K, V])(o.om.Newest())
}

// Keys returns the keys in insertion order
func (o *OrderedMap[K, V]) Keys() []K {
	keys := make([]K, 0, o.om.Len())
	for p := o.om.Oldest(); p != nil; p = p.Next() {
		keys = append(keys, p.Key)
	}
	return keys
}

// Values returns the values in insertion order
func (o *OrderedMap[K, V]) Values() []V {
	values := make([]V, 0, o.om.Len())
	for p := o.om.Oldest(); p != nil; p = p.Next() {
		values = append(values, p.Value)
	}
	return values
}
