package maze

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridsearch/animate"
)

const (
	// DefaultOpenProbability is the chance of a filled cell being open.
	DefaultOpenProbability = 0.5

	// greedyStart is the initial probability of stepping toward the end.
	greedyStart = 0.75

	// greedyGrowth is added to the greedy probability after every iteration.
	greedyGrowth = 0.02
)

// Option customizes Generate.
type Option func(*config)

type config struct {
	rng        *rand.Rand
	open       float64
	fraction   float64
	surcharge  int
	weightSink animate.Sink
}

func defaultConfig() config {
	return config{
		rng:        nil,
		open:       DefaultOpenProbability,
		weightSink: animate.Discard,
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("maze: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a seeded RNG, making the generated maze reproducible.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithOpenProbability sets the chance of a filled cell being open.
// Panics if p is outside [0,1].
func WithOpenProbability(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("maze: WithOpenProbability(%v) outside [0,1]", p))
	}
	return func(c *config) {
		c.open = p
	}
}

// WithWeights marks the given fraction of open off-corridor cells as
// weighted with surcharge, reporting each one to sink (nil means Discard).
// Panics if fraction is outside [0,1] or surcharge is negative.
func WithWeights(fraction float64, surcharge int, sink animate.Sink) Option {
	if fraction < 0 || fraction > 1 {
		panic(fmt.Sprintf("maze: WithWeights fraction %v outside [0,1]", fraction))
	}
	if surcharge < 0 {
		panic(fmt.Sprintf("maze: WithWeights surcharge %d is negative", surcharge))
	}
	return func(c *config) {
		c.fraction = fraction
		c.surcharge = surcharge
		if sink != nil {
			c.weightSink = sink
		}
	}
}

func (c *config) random() *rand.Rand {
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c.rng
}
