package cellsel

// Options holds configuration for a Sheet.
type Options struct {
	rows      int
	columns   int
	extentSet bool
	listeners []ApplyListener
	logger    DebugLogger
}

func defaultOptions() *Options {
	return &Options{
		logger: NoopLogger{},
	}
}

// Option configures a Sheet.
type Option func(*Options)

// WithExtent fixes the grid extent selectors are evaluated against, instead
// of deriving it from the worksheet's used range.
func WithExtent(rows, columns int) Option {
	return func(o *Options) {
		o.rows = rows
		o.columns = columns
		o.extentSet = true
	}
}

// WithListener adds a listener notified before/after each cell change.
func WithListener(listener ApplyListener) Option {
	return func(o *Options) { o.listeners = append(o.listeners, listener) }
}

// WithLogger sets the debug logger (default: NoopLogger).
func WithLogger(logger DebugLogger) Option {
	return func(o *Options) {
		if logger == nil {
			logger = NoopLogger{}
		}
		o.logger = logger
	}
}
