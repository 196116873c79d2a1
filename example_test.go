// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package stripemap_test

import (
	"fmt"

	stripemap "github.com/Hazanko38/stripe-map"
)

func ExampleMap_Between() {
	m := stripemap.NewWith[string](100, 10, 4)

	m.Add(5, "ant")
	m.Add(15, "bee")
	m.Add(25, "cat")
	m.Add(7, "dog")

	// broad phase: only the stripes covering [0, 15] are scanned
	for key, val := range m.Between(0, 15) {
		fmt.Println(key, val)
	}
	// Output:
	// 5 ant
	// 7 dog
	// 15 bee
}

func ExampleMap_Shrink() {
	m := stripemap.NewWith[int](100, 10, 8)

	for i := range 5 {
		m.Add(uint(i*20), i)
	}

	fmt.Println(m.Slots())
	m.Shrink()
	fmt.Println(m.Slots())
	// Output:
	// 80
	// 5
}

func ExampleMap_RemoveIf() {
	m := stripemap.NewWith[int](100, 10, 8)

	for i := range 6 {
		m.Add(uint(i*10), i)
	}

	count, ok := m.RemoveIf(m.Begin(), m.End(), func(key uint, _ int) bool {
		return key >= 30
	})

	fmt.Println(count, ok)
	// Output:
	// 3 true
}
