// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// script.go: Script model and its text form.
//
// Text form (one operation per line, '#' starts a comment):
//
//	n 5        vertex count; must precede every operation
//	link 0 1   Graph.Link
//	cut 2 3    Graph.Cut
//	same 0 4   Graph.Same
//	size 0     Graph.Size
//	set 3 10   Graph.Set with SumAdd.Of(10)
//	get 3      Graph.Get
//	add 0 5    Graph.UpdateComponent(0, 5)
//	sum 0      Graph.QueryComponent
//	count      Graph.Components

package workload

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Kind enumerates script operations.
type Kind int

const (
	Link Kind = iota
	Cut
	Same
	Size
	Set
	Get
	Add
	Sum
	Count
)

var kindNames = [...]string{
	Link:  "link",
	Cut:   "cut",
	Same:  "same",
	Size:  "size",
	Set:   "set",
	Get:   "get",
	Add:   "add",
	Sum:   "sum",
	Count: "count",
}

// arity is the number of integer arguments following the keyword.
var arity = [...]int{
	Link:  2,
	Cut:   2,
	Same:  2,
	Size:  1,
	Set:   2,
	Get:   1,
	Add:   2,
	Sum:   1,
	Count: 0,
}

// String returns the script keyword.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// Mutates reports whether k changes the graph.
func (k Kind) Mutates() bool {
	switch k {
	case Link, Cut, Set, Add:
		return true
	default:
		return false
	}
}

// Op is one scripted call. A and B are vertices; X is the value of set and
// the delta of add.
type Op struct {
	Kind Kind
	A, B int
	X    int64
}

// String renders op in the text form.
func (op Op) String() string {
	switch arity[op.Kind] {
	case 0:
		return op.Kind.String()
	case 1:
		return fmt.Sprintf("%s %d", op.Kind, op.A)
	}
	if op.Kind == Set || op.Kind == Add {
		return fmt.Sprintf("%s %d %d", op.Kind, op.A, op.X)
	}

	return fmt.Sprintf("%s %d %d", op.Kind, op.A, op.B)
}

// Vertices returns the vertex arguments of op.
func (op Op) Vertices() []int {
	switch op.Kind {
	case Link, Cut, Same:
		return []int{op.A, op.B}
	case Count:
		return nil
	default:
		return []int{op.A}
	}
}

// Script is a vertex count plus an ordered operation list.
type Script struct {
	N   int
	Ops []Op

	live [][2]int // edges linked and not yet cut, for Churn and Teardown
}

// Len returns the number of operations.
func (s *Script) Len() int { return len(s.Ops) }

// Mutations returns how many operations change the graph.
func (s *Script) Mutations() int {
	count := 0
	for _, op := range s.Ops {
		if op.Kind.Mutates() {
			count++
		}
	}

	return count
}

func (s *Script) link(a, b int) {
	s.Ops = append(s.Ops, Op{Kind: Link, A: a, B: b})
	s.live = append(s.live, [2]int{a, b})
}

// cutLive removes the live edge at index i and scripts its cut.
func (s *Script) cutLive(i int) {
	e := s.live[i]
	last := len(s.live) - 1
	s.live[i] = s.live[last]
	s.live = s.live[:last]
	s.Ops = append(s.Ops, Op{Kind: Cut, A: e[0], B: e[1]})
}

func (s *Script) inRange(vs ...int) bool {
	for _, v := range vs {
		if v < 0 || v >= s.N {
			return false
		}
	}

	return true
}

// Format writes s in the text form.
func Format(w io.Writer, s *Script) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "n %d\n", s.N); err != nil {
		return err
	}
	for _, op := range s.Ops {
		if _, err := fmt.Fprintln(bw, op.String()); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Parse reads the text form. Vertex ids are checked against the declared n.
func Parse(r io.Reader) (*Script, error) {
	sc := bufio.NewScanner(r)
	s := &Script{N: -1}
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		nums, err := atois(fields[1:])
		if err != nil {
			return nil, fmt.Errorf("line %d: %v: %w", line, err, ErrSyntax)
		}

		if fields[0] == "n" {
			if s.N >= 0 || len(nums) != 1 || nums[0] < 0 {
				return nil, fmt.Errorf("line %d: bad vertex count declaration: %w", line, ErrSyntax)
			}
			s.N = int(nums[0])
			continue
		}
		if s.N < 0 {
			return nil, fmt.Errorf("line %d: %q before \"n\": %w", line, fields[0], ErrSyntax)
		}

		kind, ok := lookupKind(fields[0])
		if !ok {
			return nil, fmt.Errorf("line %d: unknown operation %q: %w", line, fields[0], ErrSyntax)
		}
		if len(nums) != arity[kind] {
			return nil, fmt.Errorf("line %d: %s takes %d arguments, got %d: %w",
				line, kind, arity[kind], len(nums), ErrSyntax)
		}
		op := Op{Kind: kind}
		switch {
		case kind == Set || kind == Add:
			op.A, op.X = int(nums[0]), nums[1]
		case arity[kind] == 2:
			op.A, op.B = int(nums[0]), int(nums[1])
		case arity[kind] == 1:
			op.A = int(nums[0])
		}
		if !s.inRange(op.Vertices()...) {
			return nil, fmt.Errorf("line %d: %s: vertex outside [0,%d): %w", line, op, s.N, ErrVertexRange)
		}
		s.Ops = append(s.Ops, op)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if s.N < 0 {
		return nil, fmt.Errorf("missing \"n\" declaration: %w", ErrSyntax)
	}

	return s, nil
}

func lookupKind(word string) (Kind, bool) {
	for k, name := range kindNames {
		if name == word {
			return Kind(k), true
		}
	}

	return 0, false
}

func atois(fields []string) ([]int64, error) {
	out := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}
