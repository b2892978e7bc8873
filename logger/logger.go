// Copyright (C) 2026 ConsentHound Contributors
//
// This file is part of ConsentHound.
//
// ConsentHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ConsentHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger adapts zerolog to the logr API used throughout the
// application. Verbosity levels map to zerolog levels: 0 = info, 1 = debug,
// 2+ = trace.
package logger

import (
	"os"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"
)

type Options struct {
	// Verbosity is the maximum enabled V level.
	Verbosity int

	// Structured emits JSON lines instead of the human console format.
	Structured bool

	// Colors disables ANSI colors in console mode when false.
	Colors bool
}

func NewLogger(opts Options) logr.Logger {
	var zl zerolog.Logger
	if opts.Structured {
		zl = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: !opts.Colors}
		zl = zerolog.New(writer).With().Timestamp().Logger()
	}

	return logr.New(&zerologSink{logger: &zl, verbosity: opts.Verbosity})
}

type zerologSink struct {
	logger    *zerolog.Logger
	name      string
	verbosity int
	values    []interface{}
}

func (s *zerologSink) Init(info logr.RuntimeInfo) {}

func (s *zerologSink) Enabled(level int) bool {
	return level <= s.verbosity
}

func (s *zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	var event *zerolog.Event
	switch {
	case level <= 0:
		event = s.logger.Info()
	case level == 1:
		event = s.logger.Debug()
	default:
		event = s.logger.Trace()
	}
	s.send(event, msg, keysAndValues)
}

func (s *zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.send(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s *zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	clone := *s
	clone.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return &clone
}

func (s *zerologSink) WithName(name string) logr.LogSink {
	clone := *s
	if clone.name == "" {
		clone.name = name
	} else {
		clone.name = clone.name + "." + name
	}
	return &clone
}

func (s *zerologSink) send(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event = appendPairs(event, s.values)
	event = appendPairs(event, keysAndValues)
	event.Msg(msg)
}

func appendPairs(event *zerolog.Event, pairs []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(pairs); i += 2 {
		if key, ok := pairs[i].(string); ok {
			event = event.Interface(key, pairs[i+1])
		}
	}
	return event
}
