package recycling

import "github.com/hupe1980/containers"

type options struct {
	capacity int
	logger   *containers.Logger
	stats    containers.StatsCollector
}

// Option configures a recycling container.
type Option func(*options)

// WithCapacity preallocates room for n live elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = max(n, 0)
	}
}

// WithLogger configures the logger used for pool diagnostics.
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

// WithStats configures a collector for construct/recycle/park counts.
//
// If nil is passed, containers.NoopStatsCollector is used.
func WithStats(c containers.StatsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = &containers.NoopStatsCollector{}
		}
		o.stats = c
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: containers.NoopLogger(),
		stats:  &containers.NoopStatsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// hooks carries the diagnostics of a container. The zero value is silent.
type hooks struct {
	logger *containers.Logger
	stats  containers.StatsCollector
}

func newHooks(o options) hooks {
	return hooks{logger: o.logger, stats: o.stats}
}

func (h hooks) construct(live int) {
	h.logger.LogPoolMiss(live)
	if h.stats != nil {
		h.stats.RecordConstruct()
	}
}

func (h hooks) recycle() {
	if h.stats != nil {
		h.stats.RecordRecycle()
	}
}

func (h hooks) park(n int) {
	if h.stats != nil {
		h.stats.RecordPark(n)
	}
}
