// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap

// locate translates packed index p into its stripe and raw index,
// routed by the storage shape: the gap-aware walk while striped, the
// contiguous fast path while shrunk.
func (m *Map[V]) locate(p int) (si, raw int, ok bool) {
	switch m.state {
	case shrunk:
		return m.chain.FindContig(p)
	case striped:
		return m.chain.FindPacked(p)
	}

	return 0, 0, false
}

// Erase removes the entry at the iterator's position by swap-remove:
// the last live entry of the owning stripe moves into the freed slot.
// It returns the new entry count and whether anything was erased.
//
// Erase invalidates all iterators and leaves the shrunk state.
func (m *Map[V]) Erase(it Iterator[V]) (int, bool) {
	si, raw, ok := m.locate(it.i)
	if !ok {
		return m.itemsCount, false
	}

	donor, ok := m.chain[si].Erase(raw)
	if !ok {
		return m.itemsCount, false
	}

	if donor != raw {
		m.items[raw] = m.items[donor]
	}

	m.itemsCount--
	m.unshrink()

	return m.itemsCount, true
}

// Clear drops all entries but keeps the current storage layout.
// It returns the number of entries cleared and whether any stripe
// held entries.
func (m *Map[V]) Clear() (int, bool) {
	cleared := 0
	any := false

	for i := range m.chain {
		if n, ok := m.chain[i].Clear(); ok {
			cleared += n
			any = true
		}
	}

	if any {
		m.itemsCount -= cleared
		m.unshrink()
	}

	return cleared, any
}

// ClearDepth drops every entry of the stripe covering depth key d.
// It returns the new entry count and whether the stripe held entries.
func (m *Map[V]) ClearDepth(d uint) (int, bool) {
	if m.state == unreserved {
		return m.itemsCount, false
	}

	si := m.chain.LocateDepthJump(d)

	freed, ok := m.chain[si].Clear()
	if !ok {
		return m.itemsCount, false
	}

	m.itemsCount -= freed
	m.unshrink()

	return m.itemsCount, true
}

// RemoveKey removes every entry with the given key from the packed
// window [begin, end). It returns the new entry count and whether
// anything was removed.
func (m *Map[V]) RemoveKey(begin, end Iterator[V], key uint) (int, bool) {
	return m.removeItems(begin.i, end.i, func(it Item[V]) bool {
		return it.Key == key
	})
}

// RemoveIf removes every entry matching the predicate from the packed
// window [begin, end). The predicate is called once per surviving
// entry and at least once per removed entry; removal order is
// unspecified. It returns the new entry count and whether anything
// was removed.
func (m *Map[V]) RemoveIf(begin, end Iterator[V], pred func(key uint, value V) bool) (int, bool) {
	return m.removeItems(begin.i, end.i, func(it Item[V]) bool {
		return pred(it.Key, it.Value)
	})
}

// RemoveValue removes every entry equal to value from the packed
// window [begin, end) of m. It returns the new entry count and
// whether anything was removed.
//
// A function instead of a method: Go methods cannot add the
// comparable constraint to the receiver's type parameter.
func RemoveValue[V comparable](m *Map[V], begin, end Iterator[V], value V) (int, bool) {
	return m.removeItems(begin.i, end.i, func(it Item[V]) bool {
		return it.Value == value
	})
}

// removeItems walks the stripes intersecting the packed window
// [lo, hi) and swap-removes every entry matching check.
//
// The window translates to raw indices up front; when hi is the entry
// count the raw bound is the full backing length, so the last live
// range is covered even with garbage tails in between. A swap-remove
// pulls the stripe's last live entry into the scanned slot, the slot
// is re-examined and the stripe's clamped bound shrinks by one.
func (m *Map[V]) removeItems(lo, hi int, check func(Item[V]) bool) (int, bool) {
	siLo, rawLo, ok := m.locate(lo)
	if !ok {
		return m.itemsCount, false
	}

	_, rawHi, _ := m.locate(hi)
	if hi == m.itemsCount {
		rawHi = m.slotsCount
	}

	removed := 0
	any := false

	for si := siLo; si < len(m.chain); si++ {
		s := &m.chain[si]
		if s.Empty() {
			continue
		}

		start := s.Start
		if start < rawLo {
			start = rawLo
		}

		pos := s.Pos
		if pos > rawHi {
			pos = rawHi
		}

		for i := start; i < pos; {
			if !check(m.items[i]) {
				i++
				continue
			}

			if donor, ok := s.Erase(i); ok {
				if donor != i {
					m.items[i] = m.items[donor]
				}
				any = true
			}

			pos--
			removed++
		}
	}

	if !any {
		return m.itemsCount, false
	}

	m.itemsCount -= removed
	m.unshrink()

	return m.itemsCount, true
}

// unshrink re-enables the gap-aware index walk after a mutation broke
// the gap-free layout.
func (m *Map[V]) unshrink() {
	if m.state == shrunk {
		m.state = striped
	}
}
