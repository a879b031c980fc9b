package graphgen

import "math/rand"

// config holds the knobs shared by the randomized generators. It is built
// by applying Option values over a default config, the same functional-
// option shape vcconfig.Config uses for the solver proper.
type config struct {
	rng *rand.Rand
}

// Option customizes a randomized generator's config.
type Option func(cfg *config)

// WithSeed seeds the generator's random source deterministically. Without
// it, generators default to a fixed seed (1) rather than a time-based one,
// so that a test suite built on graphgen is itself reproducible.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs a caller-owned random source directly, overriding any
// seed.
func WithRand(rng *rand.Rand) Option {
	return func(cfg *config) { cfg.rng = rng }
}

func newConfig(opts ...Option) *config {
	cfg := &config{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
