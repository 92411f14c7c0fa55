// SPDX-License-Identifier: MIT

package dynconn

import "github.com/charmbracelet/log"

// CutResult describes the outcome of Graph.Cut.
type CutResult int

const (
	// CutMissing: no such edge was present.
	CutMissing CutResult = iota
	// CutBridge: the edge was a bridge; its component split in two.
	CutBridge
	// CutReplaced: the endpoints are still connected.
	CutReplaced
)

// String implements fmt.Stringer.
func (r CutResult) String() string {
	switch r {
	case CutMissing:
		return "missing"
	case CutBridge:
		return "bridge"
	case CutReplaced:
		return "replaced"
	default:
		return "unknown"
	}
}

// Hooks are optional callbacks invoked synchronously from inside Link and
// Cut. They must not call back into the Graph.
type Hooks struct {
	// OnLevelCreated fires when a replacement search first needs level.
	OnLevelCreated func(level int)

	// OnPromote fires for every edge moved up to level; tree reports whether
	// it was a spanning-forest edge or a surplus edge.
	OnPromote func(level int, tree bool)

	// OnReplace fires once per searched level of a replacement search.
	// found is true only for the level that reconnected the two sides.
	OnReplace func(level int, found bool)
}

// Options holds the effective Graph configuration.
type Options struct {
	// Locking serializes all Graph methods on one mutex.
	Locking bool

	// Logger receives debug records; nil disables logging.
	Logger *log.Logger

	// Hooks are invoked during updates.
	Hooks Hooks
}

// Option configures a Graph.
type Option func(*Options)

// DefaultOptions returns Options with locking off, no logger and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithLocking guards every Graph method with a single exclusive mutex.
// Read methods restructure the internal trees, so a read lock would not do.
func WithLocking() Option {
	return func(o *Options) { o.Locking = true }
}

// WithLogger installs l for debug logging. A nil l keeps logging disabled.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithHooks installs h.
func WithHooks(h Hooks) Option {
	return func(o *Options) { o.Hooks = h }
}
