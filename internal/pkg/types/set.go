// Package types holds small generic containers shared across packages.
package types

import "maps"

// Set is a hash set for comparable values backed by map[T]struct{}.
//
// Add mutates the set in place. Code that treats a Set as part of an
// immutable value must Clone before adding.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the given elements.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

// Add inserts values into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether val is in the set. A nil Set holds nothing.
func (s Set[T]) Has(val T) bool {
	_, ok := s[val]
	return ok
}

// Clone returns an independent copy. Cloning a nil Set yields an empty,
// writable Set.
func (s Set[T]) Clone() Set[T] {
	if s == nil {
		return make(Set[T])
	}

	return maps.Clone(s)
}
