// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew_Debug(t *testing.T) {
	var buf bytes.Buffer

	logger := New(true, &buf)
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())

	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_Info(t *testing.T) {
	var buf bytes.Buffer

	logger := New(false, &buf)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Info().Str("url", "http://example.com").Msg("probed")
	assert.Contains(t, buf.String(), `"url":"http://example.com"`)
}
