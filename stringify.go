// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap

import (
	"fmt"
	"io"
	"strings"
)

// String returns the stripe layout as a multiline table, just a
// wrapper for [Map.Fprint]. If Fprint returns an error, String
// panics.
func (m *Map[V]) String() string {
	w := new(strings.Builder)
	if err := m.Fprint(w); err != nil {
		panic(err)
	}

	return w.String()
}

// Fprint writes the shape summary and one line per stripe to w.
// Useful during development and debugging.
//
//	Output:
//
//	stripemap: size=4 slots=40 stripes=10 stripedepth=10 depthmax=100 shape=striped
//	 [0] floor=0 window=[0 2 4) used=2/4 inserts=2
//	 [1] floor=10 window=[4 5 8) used=1/4 inserts=1
//	 ...
func (m *Map[V]) Fprint(w io.Writer) error {
	m.shapeInit()

	_, err := fmt.Fprintf(w, "stripemap: size=%d slots=%d stripes=%d stripedepth=%d depthmax=%d shape=%s\n",
		m.itemsCount, m.slotsCount, m.stripeCount, m.stripeDepth, m.depthMax, m.state)
	if err != nil {
		return err
	}

	for i := range m.chain {
		s := &m.chain[i]

		_, err := fmt.Fprintf(w, " [%d] floor=%d window=[%d %d %d) used=%d/%d inserts=%d\n",
			i, s.Floor, s.Start, s.Pos, s.End, s.Used(), s.Width(), s.Count)
		if err != nil {
			return err
		}
	}

	return nil
}

func (s shape) String() string {
	switch s {
	case unreserved:
		return "unreserved"
	case striped:
		return "striped"
	case shrunk:
		return "shrunk"
	}

	return "unknown"
}
