// SPDX-License-Identifier: MIT

package dynconn_test

import (
	"fmt"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/monoid"
)

// ExampleGraph links a path, cuts a bridge and rejoins the halves.
func ExampleGraph() {
	var op monoid.SumAdd
	vals := []monoid.SumCount{op.Of(1), op.Of(2), op.Of(3), op.Of(4), op.Of(5)}
	g, err := dynconn.NewFromValues[monoid.SumCount, int64](vals, op)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i := 0; i < 4; i++ {
		_, _ = g.Link(i, i+1)
	}
	fmt.Println("components:", g.Components())

	r, _ := g.Cut(2, 3)
	fmt.Println("cut(2,3):", r)
	left, _ := g.QueryComponent(0)
	right, _ := g.QueryComponent(4)
	fmt.Println("left sum:", left.Sum, "right sum:", right.Sum)

	_, _ = g.Link(0, 4)
	same, _ := g.Same(2, 3)
	fmt.Println("same(2,3):", same)
	// Output:
	// components: 1
	// cut(2,3): bridge
	// left sum: 6 right sum: 9
	// same(2,3): true
}

// ExampleGraph_UpdateComponent adds a constant to one component and reads the
// minimum back.
func ExampleGraph_UpdateComponent() {
	g, _ := dynconn.NewFromValues[int64, int64]([]int64{5, 3, 8}, monoid.MinAdd{})
	_, _ = g.Link(0, 1)
	_ = g.UpdateComponent(1, 10)

	m01, _ := g.QueryComponent(0)
	m2, _ := g.QueryComponent(2)
	fmt.Println(m01, m2)
	// Output: 13 8
}
