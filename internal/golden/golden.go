// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package golden implements a trivially correct reference model of
// the striped index and random input helpers, for differential tests
// against the real implementation.
package golden

import "math/rand/v2"

// Item mirrors the container entry with a concrete int payload.
type Item struct {
	Key   uint
	Value int
}

// Table is the naive model: a flat list of items plus the bucket
// arithmetic, nothing shared with the implementation under test.
type Table struct {
	DepthMax    uint
	StripeCount int

	items []Item
}

// New returns a model for the depth axis [0, depthMax) split into
// stripeCount buckets.
func New(depthMax uint, stripeCount int) *Table {
	return &Table{DepthMax: depthMax, StripeCount: stripeCount}
}

// StripeDepth returns the depth range covered by one bucket.
func (t *Table) StripeDepth() uint {
	return t.DepthMax / uint(t.StripeCount)
}

// StripeOf returns the bucket index covering key k, the last bucket
// absorbing everything past the equal-width partition.
func (t *Table) StripeOf(k uint) int {
	i := int(k / t.StripeDepth())
	if i >= t.StripeCount {
		i = t.StripeCount - 1
	}
	return i
}

// Add appends an item.
func (t *Table) Add(k uint, v int) {
	t.items = append(t.items, Item{Key: k, Value: v})
}

// Size returns the item count.
func (t *Table) Size() int {
	return len(t.items)
}

// Items returns all items in insertion order.
func (t *Table) Items() []Item {
	return t.items
}

// InStripe returns the items of bucket si in insertion order.
func (t *Table) InStripe(si int) []Item {
	var hits []Item
	for _, it := range t.items {
		if t.StripeOf(it.Key) == si {
			hits = append(hits, it)
		}
	}
	return hits
}

// RemoveIf drops every item matching the predicate and returns the
// number dropped.
func (t *Table) RemoveIf(pred func(uint, int) bool) int {
	kept := t.items[:0]
	removed := 0

	for _, it := range t.items {
		if pred(it.Key, it.Value) {
			removed++
			continue
		}
		kept = append(kept, it)
	}

	t.items = kept
	return removed
}

// ClearDepth drops every item of the bucket covering d and returns
// the number dropped.
func (t *Table) ClearDepth(d uint) int {
	si := t.StripeOf(d)
	return t.RemoveIf(func(k uint, _ int) bool {
		return t.StripeOf(k) == si
	})
}

// Multiset returns the items as a multiset for order-free comparison.
func (t *Table) Multiset() map[Item]int {
	set := make(map[Item]int, len(t.items))
	for _, it := range t.items {
		set[it]++
	}
	return set
}

// RandomItems returns n items with keys below depthMax and distinct
// sequential values.
func RandomItems(prng *rand.Rand, n int, depthMax uint) []Item {
	items := make([]Item, n)
	for i := range items {
		items[i] = Item{
			Key:   uint(prng.Uint64N(uint64(depthMax))),
			Value: i,
		}
	}
	return items
}
