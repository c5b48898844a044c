package bitarray

// Options holds the settings shared by the components built on BitArray.
type Options struct {
	Logger           *Logger
	MetricsCollector MetricsCollector
}

// Option configures a component built on BitArray.
type Option func(*Options)

// WithLogger configures structured logging.
//
// If nil is passed, logging is disabled.
//
// Example:
//
//	alloc, _ := slot.New(64, bitarray.WithLogger(bitarray.NewTextLogger(slog.LevelDebug)))
func WithLogger(l *Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = NoopLogger()
		}
		o.Logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &bitarray.BasicMetricsCollector{}
//	alloc, _ := slot.New(64, bitarray.WithMetricsCollector(metrics))
//	// ... use alloc ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *Options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.MetricsCollector = mc
	}
}

// ApplyOptions returns the defaults overridden by opts.
func ApplyOptions(opts ...Option) Options {
	o := Options{
		Logger:           NoopLogger(),
		MetricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
