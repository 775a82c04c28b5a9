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

package statusx

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/loghistory"
)

func TestMakeDerived(t *testing.T) {
	s := New(code.Aborted, "step killed")
	require.False(t, IsDerived(s))

	d := MakeDerived(s)
	assert.True(t, IsDerived(d))
	assert.Equal(t, code.Aborted, d.Code())
	assert.Equal(t, "[_Derived_]step killed", d.Message())

	// Idempotent: no double marker.
	dd := MakeDerived(d)
	assert.Equal(t, d.Message(), dd.Message())

	// Marker survives message concatenation by unrelated code.
	moved := New(code.Internal, "wrapped: "+d.Message())
	assert.True(t, IsDerived(moved))

	// OK statuses have nothing to mark.
	assert.True(t, MakeDerived(OK()).IsOK())
}

func TestGroup_Empty(t *testing.T) {
	var g Group
	assert.True(t, g.AllOK())
	assert.True(t, g.SummaryStatus().IsOK())
	assert.True(t, g.ConcatenatedStatus().IsOK())
}

func TestGroup_AllOKUpdates(t *testing.T) {
	var g Group
	g.Update(OK())
	g.Update(OK())
	assert.True(t, g.AllOK())
	assert.Equal(t, 2, g.OKCount())
	assert.True(t, g.SummaryStatus().IsOK())
}

func TestGroup_SingleRoot(t *testing.T) {
	e := New(code.ResourceExhausted, "pool drained")
	var g Group
	g.Update(OK())
	g.Update(e)
	g.Update(OK())

	sum := g.SummaryStatus()
	assert.Equal(t, code.ResourceExhausted, sum.Code())
	assert.True(t, strings.HasPrefix(sum.Message(), "pool drained"))
	assert.NotContains(t, sum.Message(), "root error(s) found")

	// Concatenation returns the root unchanged.
	cat := g.ConcatenatedStatus()
	assert.Equal(t, e.Message(), cat.Message())
	assert.Equal(t, e.Code(), cat.Code())
}

func TestGroup_MultiRootWithDerived(t *testing.T) {
	var g Group
	g.Update(New(code.Internal, "disk exploded"))
	g.Update(New(code.NotFound, "missing shard"))
	g.Update(MakeDerived(New(code.Cancelled, "sibling cancelled")))
	g.Update(OK())

	sum := g.SummaryStatus()
	msg := sum.Message()
	assert.Contains(t, msg, "2 root error(s) found.")
	assert.Contains(t, msg, "(0) INTERNAL: disk exploded")
	assert.Contains(t, msg, "(1) NOT_FOUND: missing shard")
	assert.Contains(t, msg, "1 successful operations.")
	assert.Contains(t, msg, "1 derived errors ignored.")
	assert.Equal(t, code.Internal, sum.Code())
}

func TestGroup_SummaryAvoidsCancelled(t *testing.T) {
	var g Group
	g.Update(New(code.Cancelled, "c1"))
	g.Update(New(code.NotFound, "missing x"))
	g.Update(OK())

	sum := g.SummaryStatus()
	assert.Equal(t, code.NotFound, sum.Code(), "CANCELLED must be passed over for a more specific root")
	assert.Contains(t, sum.Message(), "(0)")
	assert.Contains(t, sum.Message(), "(1)")
	assert.Contains(t, sum.Message(), "1 successful operations.")
}

func TestGroup_SummaryAllRootsCancelled(t *testing.T) {
	var g Group
	g.Update(New(code.Cancelled, "c1"))
	g.Update(New(code.Cancelled, "c2"))
	assert.Equal(t, code.Cancelled, g.SummaryStatus().Code())
}

func TestGroup_ConcatenatedKeepsFirstRootCode(t *testing.T) {
	var g Group
	g.Update(New(code.Cancelled, "c1"))
	g.Update(New(code.NotFound, "missing x"))

	cat := g.ConcatenatedStatus()
	// No CANCELLED-avoidance heuristic here.
	assert.Equal(t, code.Cancelled, cat.Code())
	assert.Contains(t, cat.Message(), "=====================")
	assert.Contains(t, cat.Message(), "CANCELLED: c1")
	assert.Contains(t, cat.Message(), "NOT_FOUND: missing x")
}

func TestGroup_AllDerivedFallback(t *testing.T) {
	first := MakeDerived(New(code.Aborted, "a"))
	var g Group
	g.Update(first)
	g.Update(MakeDerived(New(code.Cancelled, "b")))

	assert.Equal(t, first.Message(), g.SummaryStatus().Message())
	assert.Equal(t, first.Message(), g.ConcatenatedStatus().Message())
	assert.Equal(t, first.Code(), g.SummaryStatus().Code())
}

func TestGroup_SummaryTruncation(t *testing.T) {
	var g Group
	big := strings.Repeat("x", maxAggregatedMessageSize)
	g.Update(New(code.Internal, big))
	g.Update(New(code.Internal, big))

	sum := g.SummaryStatus()
	assert.Len(t, sum.Message(), maxAggregatedMessageSize)
}

func TestGroup_ConcatenatedTruncation(t *testing.T) {
	var g Group
	big := strings.Repeat("y", maxAggregatedMessageSize)
	g.Update(New(code.Internal, big))
	g.Update(New(code.Internal, big))

	cat := g.ConcatenatedStatus()
	assert.Len(t, cat.Message(), maxAggregatedMessageSize)
	assert.Equal(t, code.Internal, cat.Code())
}

func TestGroup_SummaryTruncationKeepsLogBlock(t *testing.T) {
	sink := loghistory.New(4)
	sink.Observe("late warning", slog.LevelWarn)

	var g Group
	g.SetLogSink(sink)
	big := strings.Repeat("x", maxAggregatedMessageSize)
	g.Update(New(code.Internal, big))
	g.Update(New(code.Internal, big))
	g.AttachLogMessages()

	msg := g.SummaryStatus().Message()
	// The body is cut at the limit; the log block rides after the cut.
	assert.Greater(t, len(msg), maxAggregatedMessageSize)
	assert.True(t, strings.HasSuffix(msg, "\nRecent warning and error logs:\n  late warning"))
}

func TestGroup_ConfigureLogHistoryWithPrivateSink(t *testing.T) {
	before := slog.Default().Handler()

	sink := loghistory.New(2)
	var g Group
	g.SetLogSink(sink)
	g.ConfigureLogHistory()

	assert.Same(t, before, slog.Default().Handler(), "an injected sink must not reach the process-wide logger")

	sink.Observe("quota low", slog.LevelWarn)
	g.Update(New(code.ResourceExhausted, "out of quota"))
	g.AttachLogMessages()
	assert.Contains(t, g.SummaryStatus().Message(), "quota low")
}

func TestGroup_AttachLogMessages(t *testing.T) {
	sink := loghistory.New(4)
	sink.Observe("warn one", slog.LevelWarn)
	sink.Observe("error two", slog.LevelError)

	var g Group
	g.SetLogSink(sink)
	g.Update(New(code.Unavailable, "backend down"))
	g.AttachLogMessages()

	msg := g.SummaryStatus().Message()
	assert.Equal(t, "backend down\nRecent warning and error logs:\n  warn one\n  error two", msg)

	// Snapshot is point-in-time: later log activity is not reflected.
	sink.Observe("error three", slog.LevelError)
	assert.NotContains(t, g.SummaryStatus().Message(), "error three")

	// Re-attaching replaces the snapshot.
	g.AttachLogMessages()
	assert.Contains(t, g.SummaryStatus().Message(), "error three")
}

func TestGroup_AttachedLogLinesAreTruncated(t *testing.T) {
	sink := loghistory.New(2)
	sink.Observe(strings.Repeat("L", maxAttachedLogMessageSize+100), slog.LevelWarn)

	var g Group
	g.SetLogSink(sink)
	g.Update(New(code.Internal, "x"))
	g.AttachLogMessages()

	msg := g.SummaryStatus().Message()
	assert.Contains(t, msg, strings.Repeat("L", maxAttachedLogMessageSize))
	assert.NotContains(t, msg, strings.Repeat("L", maxAttachedLogMessageSize+1))
}

func TestGroup_ConcatenatedIgnoresLogs(t *testing.T) {
	sink := loghistory.New(2)
	sink.Observe("noise", slog.LevelWarn)

	var g Group
	g.SetLogSink(sink)
	g.Update(New(code.Internal, "only root"))
	g.AttachLogMessages()

	assert.Equal(t, "only root", g.ConcatenatedStatus().Message())
}

func TestGroup_ChildrenAreIndependent(t *testing.T) {
	e := New(code.Internal, "x")
	var g Group
	g.Update(e)
	g.Update(New(code.NotFound, "y"))

	// Mutating the caller's copy after Update must not leak into the group.
	e.SetPayload("a/b", []byte("later"))

	sum := g.SummaryStatus()
	assert.Contains(t, sum.Message(), "(0) INTERNAL: x")
	assert.NotContains(t, sum.Message(), "a/b")
}
