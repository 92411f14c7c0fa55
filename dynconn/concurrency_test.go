// SPDX-License-Identifier: MIT

package dynconn_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/connectivity/dynconn"
	"github.com/katalvlaran/connectivity/monoid"
)

// TestGraph_ConcurrentWithLocking hammers one Graph from several goroutines;
// run with -race.
func TestGraph_ConcurrentWithLocking(t *testing.T) {
	const (
		workers = 8
		n       = 64
	)
	g, err := dynconn.New[monoid.SumCount, int64](n, monoid.SumAdd{}, dynconn.WithLocking())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// Each worker owns the ring over vertices ≡ w (mod workers).
			var ring []int
			for v := w; v < n; v += workers {
				ring = append(ring, v)
			}
			for i := range ring {
				_, _ = g.Link(ring[i], ring[(i+1)%len(ring)])
			}
			for i := 0; i < len(ring)-1; i++ {
				_, _ = g.Cut(ring[i], ring[i+1])
				_, _ = g.Same(ring[0], ring[len(ring)-1])
				_ = g.UpdateComponent(ring[0], 1)
			}
		}(w)
	}
	wg.Wait()

	// Each ring keeps only its closing edge: one pair plus isolated vertices.
	assert.Equal(t, workers, g.EdgeCount())
	assert.Equal(t, n-workers, g.Components())
}

func TestGraph_WithLoggerEmitsDebugRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	g, err := dynconn.New[monoid.SumCount, int64](4, monoid.SumAdd{}, dynconn.WithLogger(logger))
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}} {
		_, err = g.Link(e[0], e[1])
		require.NoError(t, err)
	}
	_, err = g.Cut(1, 2)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "level created")
	assert.Contains(t, out, "replacement found")
	assert.Contains(t, out, "tree edge cut")
}
