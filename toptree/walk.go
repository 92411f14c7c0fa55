// SPDX-License-Identifier: MIT

package toptree

type frame struct {
	id    NodeID
	light bool // visit id in its light-tree role
}

// Marked returns the vertices of v's tree that carry mark m, in no
// particular order. Subtrees whose mask lacks m are skipped.
func (f *Forest[T, F]) Marked(v NodeID, m Mark) []int {
	f.expose(v)

	return f.walk(v, m)
}

// Members returns every vertex of v's tree, in no particular order.
func (f *Forest[T, F]) Members(v NodeID) []int {
	f.expose(v)

	return f.walk(v, 0)
}

// walk visits the component below top. With m == 0 every vertex is reported.
// Marks and sizes are not subject to lazy tags, so no pushing is needed.
func (f *Forest[T, F]) walk(top NodeID, m Mark) []int {
	var out []int
	stack := []frame{{id: top}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		nd := &f.nodes[fr.id]
		if fr.light {
			if m != 0 && nd.lmask&m == 0 {
				continue
			}
			stack = appendFrame(stack, nd.lch[0], true)
			stack = appendFrame(stack, nd.lch[1], true)
			stack = append(stack, frame{id: fr.id})

			continue
		}
		if m != 0 && nd.mask&m == 0 {
			continue
		}
		if m == 0 || nd.own&m != 0 {
			out = append(out, int(nd.vertex))
		}
		stack = appendFrame(stack, nd.ch[0], false)
		stack = appendFrame(stack, nd.ch[1], false)
		stack = appendFrame(stack, nd.light, true)
	}

	return out
}

func appendFrame(stack []frame, id NodeID, light bool) []frame {
	if id == Nil {
		return stack
	}

	return append(stack, frame{id: id, light: light})
}
