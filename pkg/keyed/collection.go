package keyed

import (
	"fmt"
	"slices"
)

// Collection is a list of values additionally indexed by a key
// derived from every value.
// The list keeps every added value in insertion order, even if
// several values share the same key. The index always refers to the
// latest value added for a key.
//
// The zero value is an empty collection usable for values
// implementing Keyable. Other value types require an extractor
// given by New.
//
// A Collection is not synchronized. Concurrent reads are safe as
// long as there is no concurrent modification.
type Collection[K comparable, V any] struct {
	extractor KeyExtractor[K, V]
	values    []V
	keys      []K
	index     map[K]V
}

// New creates an empty collection using the given extractor.
// If no extractor is given, the values must implement Keyable.
func New[K comparable, V any](e ...KeyExtractor[K, V]) *Collection[K, V] {
	c := &Collection[K, V]{}
	if len(e) > 0 {
		c.extractor = e[0]
	}
	return c
}

// NewFor creates a collection filled with the given values.
func NewFor[K comparable, V any](e KeyExtractor[K, V], values ...V) (*Collection[K, V], error) {
	c := New[K, V](e)
	if err := c.Replace(values); err != nil {
		return nil, err
	}
	return c, nil
}

// SetExtractor sets the key extractor and reindexes
// the actual content.
func (c *Collection[K, V]) SetExtractor(e KeyExtractor[K, V]) error {
	old := c.extractor
	c.extractor = e
	if err := c.Replace(c.values); err != nil {
		c.extractor = old
		return err
	}
	return nil
}

func (c *Collection[K, V]) extract(v V) (K, error) {
	var k K
	var err error
	if c.extractor != nil {
		k, err = c.extractor.Extract(v)
	} else {
		if kv, ok := any(v).(Keyable[K]); ok {
			k, err = KeyOf[K, Keyable[K]]().Extract(kv)
		} else {
			err = fmt.Errorf("no key extractor configured")
		}
	}
	if err != nil {
		var _nil K
		return _nil, extractionError(v, err)
	}
	return k, nil
}

// Add appends a value. If the key of the value is already in use,
// the index is switched to the new value, but the old one is kept
// in the list.
func (c *Collection[K, V]) Add(v V) error {
	k, err := c.extract(v)
	if err != nil {
		return err
	}
	c.add(k, v)
	return nil
}

func (c *Collection[K, V]) add(k K, v V) {
	if c.index == nil {
		c.index = map[K]V{}
	}
	c.values = append(c.values, v)
	c.keys = append(c.keys, k)
	c.index[k] = v
}

// Replace discards the actual content and adds the given values in
// order. All keys are determined before the collection is modified,
// if one of them fails the collection is left unchanged.
func (c *Collection[K, V]) Replace(values []V) error {
	keys := make([]K, len(values))
	for i, v := range values {
		k, err := c.extract(v)
		if err != nil {
			return err
		}
		keys[i] = k
	}
	values = slices.Clone(values)
	c.values = nil
	c.keys = nil
	c.index = nil
	for i, v := range values {
		c.add(keys[i], v)
	}
	return nil
}

// Lookup returns the value indexed for the given key.
func (c *Collection[K, V]) Lookup(k K) (V, bool) {
	if c == nil {
		var _nil V
		return _nil, false
	}
	v, ok := c.index[k]
	return v, ok
}

// Get returns the value for the given key, or the zero value.
func (c *Collection[K, V]) Get(k K) V {
	if c == nil {
		var _nil V
		return _nil
	}
	return c.index[k]
}

// Has checks whether the given key is indexed.
func (c *Collection[K, V]) Has(k K) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[k]
	return ok
}

// Map returns a snapshot of the index.
func (c *Collection[K, V]) Map() map[K]V {
	if c == nil {
		return map[K]V{}
	}
	m := make(map[K]V, len(c.index))
	for k, v := range c.index {
		m[k] = v
	}
	return m
}

// List returns a copy of all values in insertion order including
// values with duplicate keys.
func (c *Collection[K, V]) List() []V {
	if c == nil {
		return nil
	}
	return slices.Clone(c.values)
}

// Keys returns the distinct keys in order of their first appearance.
func (c *Collection[K, V]) Keys() []K {
	if c == nil {
		return nil
	}
	var r []K
	seen := map[K]struct{}{}
	for _, k := range c.keys {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			r = append(r, k)
		}
	}
	return r
}

// Values returns the indexed value of every distinct key in
// order of the first appearance of the key.
func (c *Collection[K, V]) Values() []V {
	if c == nil {
		return nil
	}
	var r []V
	for _, k := range c.Keys() {
		r = append(r, c.index[k])
	}
	return r
}

// Len returns the number of values in the list. This may be larger
// than the number of indexed keys.
func (c *Collection[K, V]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// Delete removes the value actually indexed for the given key from
// the list. The index falls back to the most recent remaining value
// with the same key, or forgets the key.
func (c *Collection[K, V]) Delete(k K) (V, bool) {
	var _nil V

	if c == nil {
		return _nil, false
	}
	if _, ok := c.index[k]; !ok {
		return _nil, false
	}
	i := len(c.keys) - 1
	for c.keys[i] != k {
		i--
	}
	v := c.values[i]
	c.values = slices.Delete(c.values, i, i+1)
	c.keys = slices.Delete(c.keys, i, i+1)

	delete(c.index, k)
	for j := i - 1; j >= 0; j-- {
		if c.keys[j] == k {
			c.index[k] = c.values[j]
			break
		}
	}
	return v, true
}

// Clone provides an independent copy of the collection.
// The values are shared.
func (c *Collection[K, V]) Clone() *Collection[K, V] {
	if c == nil {
		return nil
	}
	n := &Collection[K, V]{
		extractor: c.extractor,
		values:    slices.Clone(c.values),
		keys:      slices.Clone(c.keys),
	}
	if c.index != nil {
		n.index = c.Map()
	}
	return n
}
