// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap

// Iterator is a random-access cursor over the packed indices of a
// Map: positions among live entries, stripes walked in depth order
// and unused tails skipped.
//
// Iterators have value semantics, the navigation methods return a
// moved copy. Any mutating call on the Map invalidates all iterators;
// an iterator may be moved past the last entry as the End sentinel
// but must not be dereferenced there.
type Iterator[V any] struct {
	m *Map[V]
	i int
}

// Begin returns an iterator at packed index 0.
func (m *Map[V]) Begin() Iterator[V] {
	return Iterator[V]{m: m, i: 0}
}

// End returns the past-the-end sentinel iterator.
func (m *Map[V]) End() Iterator[V] {
	return Iterator[V]{m: m, i: m.itemsCount}
}

// BeginDepth returns an iterator at the packed start of the stripe
// covering depth key d. With EndDepth it bounds a depth window scan:
//
//	for it := m.BeginDepth(lo); !it.Equal(m.EndDepth(hi)); it = it.Next() {
//		…
//	}
func (m *Map[V]) BeginDepth(d uint) Iterator[V] {
	if m.state == unreserved {
		return Iterator[V]{m: m, i: 0}
	}

	return Iterator[V]{m: m, i: m.chain.PackedStartAtDepth(d)}
}

// EndDepth returns an iterator one past the packed end of the stripe
// covering depth key d. If that stripe is empty the range from
// BeginDepth is empty.
func (m *Map[V]) EndDepth(d uint) Iterator[V] {
	if m.state == unreserved {
		return Iterator[V]{m: m, i: 0}
	}

	return Iterator[V]{m: m, i: m.chain.PackedEndAtDepth(d)}
}

// Item returns the entry under the iterator. The reference is valid
// only until the next mutating call on the Map.
func (it Iterator[V]) Item() *Item[V] {
	return it.m.At(it.i)
}

// Key returns the depth key of the entry under the iterator.
func (it Iterator[V]) Key() uint {
	return it.m.At(it.i).Key
}

// Value returns the payload of the entry under the iterator.
func (it Iterator[V]) Value() V {
	return it.m.At(it.i).Value
}

// Index returns the packed index the iterator is at.
func (it Iterator[V]) Index() int {
	return it.i
}

// Valid reports whether the iterator addresses a live entry.
func (it Iterator[V]) Valid() bool {
	return it.m != nil && it.i >= 0 && it.i < it.m.itemsCount
}

// Next returns the iterator advanced by one.
func (it Iterator[V]) Next() Iterator[V] {
	it.i++
	return it
}

// Prev returns the iterator moved back by one.
func (it Iterator[V]) Prev() Iterator[V] {
	it.i--
	return it
}

// Add returns the iterator advanced by n, n may be negative.
func (it Iterator[V]) Add(n int) Iterator[V] {
	it.i += n
	return it
}

// Sub returns the iterator moved back by n.
func (it Iterator[V]) Sub(n int) Iterator[V] {
	it.i -= n
	return it
}

// AtOffset returns the entry n positions from the iterator without
// moving it.
func (it Iterator[V]) AtOffset(n int) *Item[V] {
	return it.m.At(it.i + n)
}

// Equal reports whether both iterators are at the same packed index.
func (it Iterator[V]) Equal(other Iterator[V]) bool {
	return it.i == other.i
}

// Less reports whether it is before other.
func (it Iterator[V]) Less(other Iterator[V]) bool {
	return it.i < other.i
}
