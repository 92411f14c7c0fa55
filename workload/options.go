// SPDX-License-Identifier: MIT
// Package: connectivity/workload
//
// options.go: functional options for Build.
//
// Contract:
//   • Option constructors validate and panic on meaningless input (nil RNG).
//   • Constructors themselves never panic; they return sentinel errors.

package workload

import "math/rand"

// Option customizes the config handed to every Constructor.
type Option func(*config)

// config is resolved once per Build call.
type config struct {
	rng *rand.Rand
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithSeed creates a fresh *rand.Rand with the given seed.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}
