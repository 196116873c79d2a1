// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap

import (
	"testing"
)

func testMap(t *testing.T) *Map[string] {
	t.Helper()

	m := NewWith[string](100, 10, 4)
	m.Add(5, "a")
	m.Add(15, "b")
	m.Add(25, "c")
	m.Add(5, "d")

	return m
}

func TestIteratorNavigation(t *testing.T) {
	t.Parallel()

	m := testMap(t)

	it := m.Begin()
	if it.Index() != 0 || !it.Valid() {
		t.Fatalf("Begin, expected valid index 0, got %d", it.Index())
	}

	it = it.Next().Next()
	if it.Index() != 2 {
		t.Errorf("Next twice, expected index 2, got %d", it.Index())
	}

	it = it.Prev()
	if it.Index() != 1 {
		t.Errorf("Prev, expected index 1, got %d", it.Index())
	}

	it = it.Add(3)
	if it.Index() != 4 {
		t.Errorf("Add(3), expected index 4, got %d", it.Index())
	}
	if it.Valid() {
		t.Error("sentinel must not be valid")
	}
	if !it.Equal(m.End()) {
		t.Error("advanced iterator must equal End")
	}

	it = it.Sub(4)
	if !it.Equal(m.Begin()) {
		t.Error("Sub back to Begin failed")
	}
	if !it.Less(m.End()) {
		t.Error("Begin must be Less than End")
	}
}

func TestIteratorDereference(t *testing.T) {
	t.Parallel()

	m := testMap(t)

	it := m.Begin()
	first := *it.Item()

	if it.Key() != first.Key || it.Value() != first.Value {
		t.Errorf("Key/Value disagree with Item: (%d, %q) vs %+v", it.Key(), it.Value(), first)
	}

	if got := it.AtOffset(1); *got != *m.At(1) {
		t.Errorf("AtOffset(1), expected %+v, got %+v", *m.At(1), *got)
	}

	// writes through the reference are visible until the next mutation
	it.Item().Value = "patched"
	if v := m.At(0).Value; v != "patched" {
		t.Errorf("write through Item, got %q", v)
	}
}

func TestDepthBoundIterators(t *testing.T) {
	t.Parallel()

	m := testMap(t) // stripe used: s0=2, s1=1, s2=1

	begin, end := m.BeginDepth(5), m.EndDepth(5)
	if begin.Index() != 0 || end.Index() != 2 {
		t.Errorf("depth 5 bounds, expected [0, 2), got [%d, %d)", begin.Index(), end.Index())
	}

	begin, end = m.BeginDepth(25), m.EndDepth(25)
	if begin.Index() != 3 || end.Index() != 4 {
		t.Errorf("depth 25 bounds, expected [3, 4), got [%d, %d)", begin.Index(), end.Index())
	}

	// empty stripe yields an empty range at its packed position
	begin, end = m.BeginDepth(55), m.EndDepth(55)
	if !begin.Equal(end) {
		t.Errorf("depth 55 bounds, expected empty range, got [%d, %d)", begin.Index(), end.Index())
	}

	// iterator pair scan, the loop the demo client runs
	var got []string
	for it := m.BeginDepth(0); !it.Equal(m.EndDepth(15)); it = it.Next() {
		got = append(got, it.Value())
	}
	if len(got) != 3 {
		t.Errorf("window scan, expected 3 entries, got %v", got)
	}
}

func TestDepthBoundsUnreserved(t *testing.T) {
	t.Parallel()

	m := NewWith[int](100, 10, 4)

	if !m.BeginDepth(50).Equal(m.EndDepth(50)) {
		t.Error("unreserved map must yield empty depth ranges")
	}
	if !m.Begin().Equal(m.End()) {
		t.Error("unreserved map must yield an empty packed range")
	}
}

func TestAllEarlyExit(t *testing.T) {
	t.Parallel()

	m := testMap(t)

	n := 0
	for range m.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("early exit after 2, got %d", n)
	}
}

func TestBetweenWindows(t *testing.T) {
	t.Parallel()

	m := NewWith[int](100, 10, 4)
	for i := range 10 {
		m.Add(uint(i*10+1), i) // one entry per stripe
	}

	tests := []struct {
		name   string
		lo, hi uint
		want   []int
	}{
		{"single stripe", 11, 11, []int{1}},
		{"three stripes", 11, 31, []int{1, 2, 3}},
		{"whole axis", 0, 99, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{"tail absorbed", 91, 5_000, []int{9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got []int
			for _, v := range m.Between(tc.lo, tc.hi) {
				got = append(got, v)
			}

			if len(got) != len(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			}
		})
	}

	// after Shrink the windows are gap-free, same content
	m.Shrink()
	var got []int
	for _, v := range m.Between(11, 31) {
		got = append(got, v)
	}
	if len(got) != 3 {
		t.Errorf("shrunk window scan, expected 3 entries, got %v", got)
	}
}
