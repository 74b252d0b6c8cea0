package landscape

// Logger receives data-quality warnings from the analyzer (single-class
// diversity, degenerate inputs). *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// nopLogger discards everything.
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}
