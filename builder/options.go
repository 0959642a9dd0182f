// SPDX-License-Identifier: MIT
// Package: lvmapper/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: noise is drawn from a seeded source only.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// Deterministic defaults.
const (
	defaultSeed   = int64(1)
	defaultRadius = 1.0
	defaultNoise  = 0.0
)

// config aggregates all knobs used by constructors.
type config struct {
	seed   int64
	radius float64
	noise  float64
}

// Option customizes a constructor.
type Option func(*config)

// WithSeed fixes the RNG seed used for noise.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithNoise adds N(0, sigma²) noise to every coordinate. Panics on sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("builder: WithNoise(%g)", sigma))
	}
	return func(c *config) { c.noise = sigma }
}

// WithRadius sets the circle radius or blob spread. Panics on r <= 0.
func WithRadius(r float64) Option {
	if !(r > 0) || math.IsInf(r, 0) {
		panic(fmt.Sprintf("builder: WithRadius(%g)", r))
	}
	return func(c *config) { c.radius = r }
}

// newConfig applies opts over the defaults, in order.
func newConfig(opts ...Option) config {
	cfg := config{seed: defaultSeed, radius: defaultRadius, noise: defaultNoise}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c config) rng() *rand.Rand {
	return rand.New(rand.NewSource(c.seed))
}
