package types

import (
	"sort"
)

// Identifiers is a set of normalized account references. Insertion order
// is irrelevant; callers wanting deterministic output use Sorted().
type Identifiers map[string]struct{}

// NewIdentifiers returns a set holding the given values
func NewIdentifiers(values ...string) Identifiers {
	ids := make(Identifiers)
	for _, v := range values {
		ids.Add(v)
	}
	return ids
}

// Add inserts a value into the set
func (ids Identifiers) Add(value string) {
	ids[value] = struct{}{}
}

// Has returns true if the set contains the given value
func (ids Identifiers) Has(value string) bool {
	_, ok := ids[value]
	return ok
}

// Sorted returns the set's values in lexicographic order
func (ids Identifiers) Sorted() []string {
	values := make([]string, 0, len(ids))
	for v := range ids {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// Intersection returns the set of values present in both sets
func (ids Identifiers) Intersection(other Identifiers) Identifiers {
	res := make(Identifiers)
	for v := range ids {
		if other.Has(v) {
			res.Add(v)
		}
	}
	return res
}

// Difference returns the set of values present in this set but not the other
func (ids Identifiers) Difference(other Identifiers) Identifiers {
	res := make(Identifiers)
	for v := range ids {
		if !other.Has(v) {
			res.Add(v)
		}
	}
	return res
}
