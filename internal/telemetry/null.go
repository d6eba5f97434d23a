package telemetry

// NullSink discards everything. Useful for tests that don't care about
// log output but still need to satisfy the Sink contract Install requires.
type NullSink struct{}

func (NullSink) Error(string, ...interface{}) {}
func (NullSink) Info(string, ...interface{})  {}
