package arena

type Options[V any] struct {
	Capacity int
	Release  func(V)
}

// Option is a generic option type used for arena construction.
// Implementations type assert to the options target record and if that fails
// the expectation is they ignore the option.
type Option func(any)

type capacitySetter interface {
	setCapacity(n int)
}

func (o *Options[V]) setCapacity(n int) { o.Capacity = n }

// WithCapacity pre-sizes the backing slices for n nodes.
func WithCapacity(n int) Option {
	return func(opts any) {
		if o, ok := opts.(capacitySetter); ok {
			o.setCapacity(n)
		}
	}
}

// WithRelease sets the hook called exactly once for every payload the arena
// gives up ownership of.
func WithRelease[V any](release func(V)) Option {
	return func(opts any) {
		if o, ok := opts.(*Options[V]); ok {
			o.Release = release
		}
	}
}
