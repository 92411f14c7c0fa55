// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// run.go: replaying scripts on dynconn and cross-checking against the
// union-find oracle.
//
// Every vertex starts with SumAdd.Of(0), so sum reports both the component
// total and its size.

package workload

import (
	"context"
	"fmt"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/internal/oracle"
	"github.com/katalvlaran/connectivity/monoid"
)

// cancelCheckEvery bounds how many operations run between context checks.
const cancelCheckEvery = 1024

// Result is the observable outcome of one Op. Only the fields relevant to
// Op.Kind are set.
type Result struct {
	Op     Op
	Merged bool              // link
	Cut    dynconn.CutResult // cut
	Same   bool              // same
	Value  int64             // size, get, sum, count
	Count  int64             // get, sum: number of summed vertices
}

// String renders "op -> outcome".
func (r Result) String() string {
	switch r.Op.Kind {
	case Link:
		return fmt.Sprintf("%s -> %t", r.Op, r.Merged)
	case Cut:
		return fmt.Sprintf("%s -> %s", r.Op, r.Cut)
	case Same:
		return fmt.Sprintf("%s -> %t", r.Op, r.Same)
	case Size, Count:
		return fmt.Sprintf("%s -> %d", r.Op, r.Value)
	case Get, Sum:
		return fmt.Sprintf("%s -> %d (n=%d)", r.Op, r.Value, r.Count)
	default:
		return r.Op.String()
	}
}

// Observer receives each result in script order.
type Observer func(step int, r Result)

// Stats summarizes a replay.
type Stats struct {
	Ops          int
	Links        int
	Merges       int
	Cuts         int
	Bridges      int
	Replacements int
	Missing      int
	Queries      int
	Components   int
	Edges        int
	Levels       int
}

func (st *Stats) record(r Result) {
	st.Ops++
	switch r.Op.Kind {
	case Link:
		st.Links++
		if r.Merged {
			st.Merges++
		}
	case Cut:
		st.Cuts++
		switch r.Cut {
		case dynconn.CutBridge:
			st.Bridges++
		case dynconn.CutReplaced:
			st.Replacements++
		default:
			st.Missing++
		}
	case Set, Add:
	default:
		st.Queries++
	}
}

func initialValues(n int) []monoid.SumCount {
	var op monoid.SumAdd
	vals := make([]monoid.SumCount, n)
	for i := range vals {
		vals[i] = op.Of(0)
	}

	return vals
}

// Run replays s on a fresh dynconn.Graph built with opts. obs may be nil.
func Run(ctx context.Context, s *Script, obs Observer, opts ...dynconn.Option) (Stats, error) {
	var st Stats
	g, err := dynconn.NewFromValues[monoid.SumCount, int64](initialValues(s.N), monoid.SumAdd{}, opts...)
	if err != nil {
		return st, err
	}
	for i, op := range s.Ops {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}
		r, err := apply(g, op)
		if err != nil {
			return st, fmt.Errorf("step %d: %s: %w", i, op, err)
		}
		st.record(r)
		if obs != nil {
			obs(i, r)
		}
	}
	st.Components = g.Components()
	st.Edges = g.EdgeCount()
	st.Levels = g.Levels()

	return st, nil
}

// Verify replays s on dynconn and on the oracle side by side and returns an
// ErrMismatch error at the first differing result.
func Verify(ctx context.Context, s *Script, opts ...dynconn.Option) (Stats, error) {
	var st Stats
	vals := initialValues(s.N)
	g, err := dynconn.NewFromValues[monoid.SumCount, int64](vals, monoid.SumAdd{}, opts...)
	if err != nil {
		return st, err
	}
	ref := oracle.New[monoid.SumCount, int64](vals, monoid.SumAdd{})
	for i, op := range s.Ops {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return st, err
			}
		}
		got, err := apply(g, op)
		if err != nil {
			return st, fmt.Errorf("step %d: %s: %w", i, op, err)
		}
		want := applyOracle(ref, op)
		if got != want {
			return st, fmt.Errorf("step %d: got %q, want %q: %w", i, got, want, ErrMismatch)
		}
		if c, rc := g.Components(), ref.Components(); op.Kind.Mutates() && c != rc {
			return st, fmt.Errorf("step %d: %s: components %d, want %d: %w", i, op, c, rc, ErrMismatch)
		}
		st.record(got)
	}
	st.Components = g.Components()
	st.Edges = g.EdgeCount()
	st.Levels = g.Levels()

	return st, nil
}

func apply(g *dynconn.Graph[monoid.SumCount, int64], op Op) (Result, error) {
	r := Result{Op: op}
	var err error
	switch op.Kind {
	case Link:
		r.Merged, err = g.Link(op.A, op.B)
	case Cut:
		r.Cut, err = g.Cut(op.A, op.B)
	case Same:
		r.Same, err = g.Same(op.A, op.B)
	case Size:
		var n int
		n, err = g.Size(op.A)
		r.Value = int64(n)
	case Set:
		err = g.Set(op.A, monoid.SumAdd{}.Of(op.X))
	case Get:
		var x monoid.SumCount
		x, err = g.Get(op.A)
		r.Value, r.Count = x.Sum, x.Count
	case Add:
		err = g.UpdateComponent(op.A, op.X)
	case Sum:
		var x monoid.SumCount
		x, err = g.QueryComponent(op.A)
		r.Value, r.Count = x.Sum, x.Count
	case Count:
		r.Value = int64(g.Components())
	default:
		err = fmt.Errorf("unknown operation kind %d: %w", op.Kind, ErrSyntax)
	}

	return r, err
}

func applyOracle(ref *oracle.Graph[monoid.SumCount, int64], op Op) Result {
	r := Result{Op: op}
	switch op.Kind {
	case Link:
		r.Merged = ref.Link(op.A, op.B)
	case Cut:
		present, split := ref.Cut(op.A, op.B)
		switch {
		case !present:
			r.Cut = dynconn.CutMissing
		case split:
			r.Cut = dynconn.CutBridge
		default:
			r.Cut = dynconn.CutReplaced
		}
	case Same:
		r.Same = ref.Same(op.A, op.B)
	case Size:
		r.Value = int64(ref.Size(op.A))
	case Set:
		ref.Set(op.A, monoid.SumAdd{}.Of(op.X))
	case Get:
		x := ref.Get(op.A)
		r.Value, r.Count = x.Sum, x.Count
	case Add:
		ref.Update(op.A, op.X)
	case Sum:
		x := ref.Query(op.A)
		r.Value, r.Count = x.Sum, x.Count
	case Count:
		r.Value = int64(ref.Components())
	}

	return r
}
