package gospaces

import "fmt"

// DictSpace implements an ordered dictionary of simpler spaces.
//
// The key order fixed at construction time is an attribute of the
// space: sampling, flattening and unflattening always visit sub-spaces
// in that order, never in the iteration order of a sample map. Samples
// are map[string]interface{} values with exactly the space's key set;
// lookups are by key, so a sample map carries no order of its own.
type DictSpace struct {
	keys   []string
	spaces []Space
}

// NewDictSpace returns a new DictSpace with the given keys and
// sub-spaces, matched positionally. The order of keys becomes the
// space's fixed key order.
func NewDictSpace(keys []string, spaces []Space) (*DictSpace, error) {
	if len(keys) == 0 {
		return nil, fmt.Errorf("newDictSpace: no sub-spaces given")
	}
	if len(keys) != len(spaces) {
		return nil, fmt.Errorf("newDictSpace: %d keys but %d sub-spaces",
			len(keys), len(spaces))
	}

	seen := make(map[string]struct{}, len(keys))
	for i, key := range keys {
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("newDictSpace: duplicate key %q", key)
		}
		seen[key] = struct{}{}
		if spaces[i] == nil {
			return nil, fmt.Errorf("newDictSpace: nil sub-space for key %q",
				key)
		}
	}

	return &DictSpace{
		keys:   append([]string(nil), keys...),
		spaces: append([]Space(nil), spaces...),
	}, nil
}

// Seed seeds the RNG for all sub-spaces recursively
func (d *DictSpace) Seed(seed uint64) {
	for _, space := range d.spaces {
		space.Seed(seed)
	}
}

// Sample takes a sample from within the space bounds of each sub-space,
// in the space's fixed key order.
func (d *DictSpace) Sample() interface{} {
	sample := make(map[string]interface{}, d.Len())
	for i, key := range d.keys {
		sample[key] = d.spaces[i].Sample()
	}
	return sample
}

// Contains returns whether x is in the space. The argument x must be a
// map[string]interface{} with exactly the space's key set, and each
// value must be a valid sample of the sub-space at its key.
func (d *DictSpace) Contains(x interface{}) bool {
	xm, ok := x.(map[string]interface{})
	if !ok || len(xm) != d.Len() {
		return false
	}

	for i, key := range d.keys {
		val, ok := xm[key]
		if !ok {
			return false
		}
		if !d.spaces[i].Contains(val) {
			return false
		}
	}
	return true
}

// Keys returns a copy of the space's fixed key order
func (d *DictSpace) Keys() []string {
	return append([]string(nil), d.keys...)
}

// At returns the sub-space stored under key, if any
func (d *DictSpace) At(key string) (Space, bool) {
	for i, k := range d.keys {
		if k == key {
			return d.spaces[i], true
		}
	}
	return nil, false
}

// Len returns the number of sub-spaces in the space
func (d *DictSpace) Len() int {
	return len(d.keys)
}
