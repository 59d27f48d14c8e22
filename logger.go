package cellsel

// DebugLogger receives debug messages from a Sheet.
type DebugLogger interface {
	Log(format string, args ...any)
}

// NoopLogger discards everything.
type NoopLogger struct{}

func (NoopLogger) Log(format string, args ...any) {}
