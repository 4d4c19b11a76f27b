package catgo

import "runtime"

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	parallelism      int
}

func applyOptions(opts []Option) options {
	o := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
		parallelism:      runtime.GOMAXPROCS(0),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}

// Option configures a column operation (Cast, Concat, JoinOn, ...).
//
// Today options primarily exist to avoid exploding the API surface with
// logger/metrics-specific variants of every operation.
type Option func(*options)

// WithLogger configures the logger used by the operation.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for the operation.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelism caps the number of workers used when a merge rewrites a
// large column's codes. Values below 1 force sequential rewriting. The
// default is runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}
