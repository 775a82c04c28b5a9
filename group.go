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
	"fmt"
	"strings"

	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/loghistory"
)

// derivedMarker is prefixed to a status message to indicate the status is a
// downstream consequence of cancelling/aborting a step rather than a root
// cause. Detection is by substring so the mark survives message copying and
// concatenation by unrelated code. The literal is a compatibility contract;
// do not change it.
const derivedMarker = "[_Derived_]"

// MakeDerived marks s as a derived error. Already-derived statuses are
// returned unchanged, so the operation is idempotent and never stacks
// markers. An OK status is returned unchanged; there is nothing to mark.
//
// The marked status keeps the code and message only; payloads and stack
// trace are intentionally not carried, as a derived status exists purely as
// cascade bookkeeping for aggregation.
func MakeDerived(s Status) Status {
	if s.IsOK() || IsDerived(s) {
		return s
	}
	return New(s.Code(), derivedMarker+s.Message())
}

// IsDerived reports whether s carries the derived marker anywhere in its
// message.
func IsDerived(s Status) bool {
	return strings.Contains(s.Message(), derivedMarker)
}

// Aggregated message bodies are truncated to this many bytes before any
// trailing log block is appended.
const maxAggregatedMessageSize = 8 * 1024

// Each log line attached to a summary is independently truncated to this
// many bytes.
const maxAttachedLogMessageSize = 512

// Group folds the statuses of many sibling operations — typically the steps
// of one logical unit of work that fail independently and concurrently —
// into a single representative Status.
//
// The zero Group is ready to use: feed it with Update, then consume it with
// exactly one terminal call to SummaryStatus or ConcatenatedStatus and
// discard it. A Group is not internally synchronized; it is designed for a
// single writer, and callers that report into one group from several
// goroutines must serialize the Update calls themselves.
type Group struct {
	numOK    int
	failed   bool
	children []Status

	recentLogs []string
	sink       *loghistory.Sink
}

// Update records one child outcome. OK statuses are only counted; failures
// are retained in insertion order.
func (g *Group) Update(s Status) {
	if s.IsOK() {
		g.numOK++
		return
	}
	g.failed = true
	g.children = append(g.children, s)
}

// OKCount returns the number of successful updates so far.
func (g *Group) OKCount() int { return g.numOK }

// AllOK reports whether no failure has been recorded.
func (g *Group) AllOK() bool { return !g.failed }

// SetLogSink injects the log-history sink consulted by ConfigureLogHistory
// and AttachLogMessages. Tests use it to substitute a private sink; when it
// is never called the process-wide loghistory.Default sink is used.
func (g *Group) SetLogSink(s *loghistory.Sink) { g.sink = s }

func (g *Group) logSink() *loghistory.Sink {
	if g.sink != nil {
		return g.sink
	}
	return loghistory.Default()
}

// ConfigureLogHistory ensures the log-history sink is enabled. It is
// idempotent and safe to call from every step that might want logs attached
// to its failures.
func (g *Group) ConfigureLogHistory() {
	g.logSink().Enable()
}

// AttachLogMessages replaces the group's retained log lines with the sink's
// current contents. The snapshot is point-in-time: log activity after the
// call is not reflected in later summaries.
func (g *Group) AttachLogMessages() {
	g.recentLogs = g.logSink().Snapshot()
}

// nonDerived returns the subsequence of children that are root errors, in
// original order.
func nonDerived(children []Status) []Status {
	roots := make([]Status, 0, len(children))
	for _, s := range children {
		if !IsDerived(s) {
			roots = append(roots, s)
		}
	}
	return roots
}

// recentLogsBlock renders the retained log lines as the block appended to
// summaries: a header line, then one two-space-indented line per retained
// message, each independently truncated. Empty when no logs are retained.
func (g *Group) recentLogsBlock() string {
	if len(g.recentLogs) == 0 {
		return ""
	}
	parts := make([]string, 0, len(g.recentLogs)+1)
	parts = append(parts, "\nRecent warning and error logs:")
	for _, line := range g.recentLogs {
		parts = append(parts, "  "+truncate(line, maxAttachedLogMessageSize))
	}
	return strings.Join(parts, "\n")
}

// SummaryStatus digests the group into one human-oriented Status. It is used
// when the child statuses are not themselves already summarized.
//
// A single root error keeps its own code and message (with the recent-logs
// block appended). Multiple root errors produce an indexed listing framed by
// counts of successes and ignored derived errors, truncated to 8 KiB before
// the log block; the summary code is the first root code that is not
// CANCELLED, because CANCELLED is rarely the most informative root cause
// when a more specific code exists among the roots.
func (g *Group) SummaryStatus() Status {
	if !g.failed {
		return OK()
	}

	roots := nonDerived(g.children)

	// A single root error needs no summary header and footer.
	if len(roots) == 1 {
		return New(roots[0].Code(), roots[0].Message()+g.recentLogsBlock())
	}

	if len(roots) > 0 {
		parts := make([]string, 0, len(roots)+3)
		parts = append(parts, fmt.Sprintf("%d root error(s) found.", len(roots)))

		c := code.Cancelled
		for i, s := range roots {
			if c == code.Cancelled && s.Code() != code.Cancelled {
				c = s.Code()
			}
			parts = append(parts, fmt.Sprintf("  (%d) %s", i, s.String()))
		}

		parts = append(parts, fmt.Sprintf("%d successful operations.", g.numOK))
		parts = append(parts, fmt.Sprintf("%d derived errors ignored.", len(g.children)-len(roots)))

		msg := truncate(strings.Join(parts, "\n"), maxAggregatedMessageSize)
		return New(c, msg+g.recentLogsBlock())
	}

	// All children are derived. This should not arise from correct usage;
	// fall back to the first child rather than fabricate a root.
	return g.children[0]
}

// ConcatenatedStatus digests the group into one machine-oriented Status. It
// is used when the child statuses are already summarized sub-statuses and
// should be re-threaded rather than re-summarized.
//
// A single root error is returned unchanged (no log block). Multiple root
// errors are framed by separator lines and truncated to 8 KiB; the result
// keeps the first root's code with no CANCELLED-avoidance heuristic.
func (g *Group) ConcatenatedStatus() Status {
	if !g.failed {
		return OK()
	}

	roots := nonDerived(g.children)

	if len(roots) == 1 {
		return roots[0]
	}

	if len(roots) > 0 {
		parts := make([]string, 0, len(roots)+2)
		parts = append(parts, "\n=====================")
		for _, s := range roots {
			parts = append(parts, s.String())
		}
		parts = append(parts, "=====================\n")
		return New(roots[0].Code(), truncate(strings.Join(parts, "\n"), maxAggregatedMessageSize))
	}

	// All children are derived; same fallback as SummaryStatus.
	return g.children[0]
}

// truncate bounds s to at most n bytes.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
