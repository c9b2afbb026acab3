/*
Copyright 2024-2025 the Unikorn Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package logger builds zerolog loggers shared by the fake server and the
// test client.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Defaults to info when empty or unrecognised.
	Level string
	// Pretty enables human readable console output.
	Pretty bool
	// Output is where logs are written, defaulting to os.Stdout.
	Output io.Writer
}

// New returns a logger configured by the options.
func New(options Options) zerolog.Logger {
	out := options.Output
	if out == nil {
		out = os.Stdout
	}

	if options.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(out).
		Level(ParseLevel(options.Level)).
		With().
		Timestamp().
		Logger()
}

// ParseLevel converts a level name to a zerolog.Level.  Anything zerolog
// cannot parse selects info, and "off" is accepted as an alias for disabled.
func ParseLevel(s string) zerolog.Level {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, "off") {
		return zerolog.Disabled
	}

	level, err := zerolog.ParseLevel(s)
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}

	return level
}
