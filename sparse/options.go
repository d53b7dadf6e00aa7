package sparse

import "github.com/hupe1980/containers"

type options struct {
	capacity int
	logger   *containers.Logger
}

// Option configures a sparse store.
type Option func(*options)

// WithCapacity preallocates room for n values in growable stores.
// Fixed-capacity stores take their capacity as a constructor argument and
// ignore this option.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithLogger configures the logger used to report capacity exhaustion.
//
// If nil is passed, containers.NoopLogger is used.
func WithLogger(l *containers.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = containers.NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: containers.NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
