// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New builds the logger handle used by every component. Debug mode logs human-readable
// console output at debug level, otherwise JSON at info level.
func New(debug bool, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stdout
	}

	logLevel := zerolog.InfoLevel
	if debug {
		logLevel = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: out}
	}

	return zerolog.New(out).Level(logLevel).With().Timestamp().Logger()
}
