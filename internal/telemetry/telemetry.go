// Package telemetry wraps structured logging so it can be injected into
// Install rather than relying on a process-wide logger callback.
package telemetry

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Sink is the logging surface threaded through Install and captured by the
// model and its coefficient façade. Implementations must be safe to call
// from Step.
type Sink interface {
	Error(msg string, kv ...interface{})
	Info(msg string, kv ...interface{})
}

// ZerologSink adapts a zerolog.Logger to Sink.
type ZerologSink struct {
	log zerolog.Logger
}

// NewZerologSink builds a Sink writing to w in zerolog's default JSON form.
// Pass os.Stderr for the common case.
func NewZerologSink(w io.Writer) *ZerologSink {
	return &ZerologSink{log: zerolog.New(w).With().Timestamp().Logger()}
}

// NewConsoleSink builds a Sink writing human-readable output, for CLI use.
func NewConsoleSink(w io.Writer) *ZerologSink {
	console := zerolog.ConsoleWriter{Out: w}
	return &ZerologSink{log: zerolog.New(console).With().Timestamp().Logger()}
}

// Default returns a sink writing to stderr, for callers that don't need a
// particular destination.
func Default() *ZerologSink {
	return NewZerologSink(os.Stderr)
}

func (s *ZerologSink) Error(msg string, kv ...interface{}) {
	ev := s.log.Error()
	appendFields(ev, kv)
	ev.Msg(msg)
}

func (s *ZerologSink) Info(msg string, kv ...interface{}) {
	ev := s.log.Info()
	appendFields(ev, kv)
	ev.Msg(msg)
}

func appendFields(ev *zerolog.Event, kv []interface{}) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ev.Interface(key, kv[i+1])
	}
}
