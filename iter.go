// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap

import "iter"

// All returns an iterator over all entries in packed order: stripes
// ascending by depth floor, entries within a stripe in their current
// unspecified order.
//
// The Map must not be mutated during the iteration.
func (m *Map[V]) All() iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		for si := range m.chain {
			s := &m.chain[si]

			for raw := s.Start; raw < s.Pos; raw++ {
				if !yield(m.items[raw].Key, m.items[raw].Value) {
					return
				}
			}
		}
	}
}

// Between returns an iterator over the packed window spanning the
// stripes that cover the depth keys lo through hi: from the packed
// start of lo's stripe to the packed end of hi's stripe. This is the
// broad-phase scan: every entry with a key within the window's stripe
// coverage is yielded, entries of neighboring stripes are not
// touched.
//
// The Map must not be mutated during the iteration.
func (m *Map[V]) Between(lo, hi uint) iter.Seq2[uint, V] {
	return func(yield func(uint, V) bool) {
		if m.state == unreserved {
			return
		}

		pLo := m.chain.PackedStartAtDepth(lo)
		pHi := m.chain.PackedEndAtDepth(hi)

		packed := 0
		for si := range m.chain {
			s := &m.chain[si]
			used := s.Used()

			if packed+used <= pLo {
				packed += used
				continue
			}

			for k := range used {
				p := packed + k
				if p >= pHi {
					return
				}
				if p < pLo {
					continue
				}

				raw := s.Start + k
				if !yield(m.items[raw].Key, m.items[raw].Value) {
					return
				}
			}

			packed += used
		}
	}
}
