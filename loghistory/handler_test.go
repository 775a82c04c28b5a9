/*
   Copyright 2025 The DIRPX Authors

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

package loghistory

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(sink *Sink, out *bytes.Buffer, level slog.Level) *slog.Logger {
	under := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(NewHandler(under, sink))
}

func TestHandler_CapturesWarnAndAbove(t *testing.T) {
	sink := New(10)
	var out bytes.Buffer
	log := newTestLogger(sink, &out, slog.LevelInfo)

	log.Debug("d")
	log.Info("i")
	log.Warn("w")
	log.Error("e")

	got := sink.Snapshot()
	require.Len(t, got, 2)
	assert.Equal(t, "WARN: w", got[0])
	assert.Equal(t, "ERROR: e", got[1])
}

func TestHandler_PassesThroughToUnderlying(t *testing.T) {
	sink := New(10)
	var out bytes.Buffer
	log := newTestLogger(sink, &out, slog.LevelInfo)

	log.Info("plain info")
	log.Warn("a warning")

	assert.Contains(t, out.String(), "plain info")
	assert.Contains(t, out.String(), "a warning")
}

func TestHandler_CapturesEvenWhenUnderlyingFilters(t *testing.T) {
	sink := New(10)
	var out bytes.Buffer
	// Underlying only logs errors; warnings must still reach the sink.
	log := newTestLogger(sink, &out, slog.LevelError)

	log.Warn("filtered out downstream")

	assert.NotContains(t, out.String(), "filtered out downstream")
	require.Len(t, sink.Snapshot(), 1)
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	sink := New(10)
	var out bytes.Buffer
	log := newTestLogger(sink, &out, slog.LevelInfo)

	log.With("step", "restore").WithGroup("op").Warn("failed", "attempt", 3)

	got := sink.Snapshot()
	require.Len(t, got, 1)
	assert.Equal(t, "WARN: failed step=restore op.attempt=3", got[0])
}
