package narytree

import (
	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-narytree/rebalance"
)

// Config holds the payload independent tree settings.
type Config struct {
	Policy        rebalance.Policy
	AutoRebalance bool
	Capacity      int
	Logger        logger.Logger
}

type Options[V any] struct {
	Config
	Release func(V)
}

func defaultOptions[V any]() Options[V] {
	return Options[V]{
		Config: Config{
			Policy:        rebalance.DefaultPolicy(),
			AutoRebalance: true,
		},
	}
}

// Option is a generic option type used for tree construction.
// Implementations type assert to the options target record and if that fails
// the expectation is they ignore the option.
type Option func(any)

type configurer interface {
	config() *Config
}

func (o *Options[V]) config() *Config { return &o.Config }

func withConfig(fn func(c *Config)) Option {
	return func(opts any) {
		if o, ok := opts.(configurer); ok {
			fn(o.config())
		}
	}
}

// WithPolicy replaces the whole rebalance policy.
func WithPolicy(p rebalance.Policy) Option {
	return withConfig(func(c *Config) { c.Policy = p })
}

// WithRebalanceThreshold sets the number of mutations between lazy locality checks.
func WithRebalanceThreshold(n uint64) Option {
	return withConfig(func(c *Config) { c.Policy.Threshold = n })
}

func WithLocalityFloor(floor float64) Option {
	return withConfig(func(c *Config) { c.Policy.LocalityFloor = floor })
}

func WithDepthMultiplier(m float64) Option {
	return withConfig(func(c *Config) { c.Policy.DepthMultiplier = m })
}

// WithMaxChildren sets the branching factor used by NeedsRebalancing and
// AutoBalanceIfNeeded.
func WithMaxChildren(k int) Option {
	return withConfig(func(c *Config) { c.Policy.MaxChildren = k })
}

func WithAutoRebalance(enabled bool) Option {
	return withConfig(func(c *Config) { c.AutoRebalance = enabled })
}

// WithCapacity pre-sizes the arena for n nodes.
func WithCapacity(n int) Option {
	return withConfig(func(c *Config) { c.Capacity = n })
}

func WithLogger(log logger.Logger) Option {
	return withConfig(func(c *Config) { c.Logger = log })
}

// WithRelease sets the hook called exactly once for every payload the tree
// gives up: on SetValue overwrite, on RemoveSubtree, and on Clear, SetRoot or
// Destroy. Rebalancing moves payloads and never releases them.
func WithRelease[V any](release func(V)) Option {
	return func(opts any) {
		if o, ok := opts.(*Options[V]); ok {
			o.Release = release
		}
	}
}
