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
	"log/slog"
	"os"
	"strconv"
	"sync"
)

const (
	// DefaultCapacity is the number of lines retained when the environment
	// does not say otherwise.
	DefaultCapacity = 5

	// CapacityEnv names the environment variable that overrides the retained
	// line count for the Default sink. Non-numeric values are ignored with a
	// warning; negative values disable collection like 0 does.
	CapacityEnv = "STATUSX_LOG_HISTORY_SIZE"
)

// Sink is a bounded FIFO ring of recent warning and error log lines.
//
// Observe and Snapshot are safe for concurrent use. Enable is safe to call
// repeatedly and from multiple goroutines; only the first call takes effect.
type Sink struct {
	once sync.Once

	mu       sync.Mutex
	capacity int
	lines    []string

	// fromEnv marks sinks whose capacity is resolved from the environment at
	// Enable time (the Default sink). Sinks built with New keep the capacity
	// they were given.
	fromEnv bool
}

var (
	defaultOnce sync.Once
	defaultSink *Sink
)

// Default returns the process-wide sink, creating it lazily on first use.
//
// The returned sink does not collect anything until Enable has been called
// (directly or via Group.ConfigureLogHistory).
func Default() *Sink {
	defaultOnce.Do(func() {
		defaultSink = &Sink{fromEnv: true}
	})
	return defaultSink
}

// New returns a private sink retaining at most capacity lines. It is intended
// for tests and for callers that wire Handler into their own logger setup;
// no environment lookup and no global registration happen for such sinks.
func New(capacity int) *Sink {
	return &Sink{capacity: capacity}
}

// Enable makes the sink operational, exactly once.
//
// For the Default sink this resolves the capacity from the environment and,
// when the capacity is positive, installs a tee handler around slog.Default
// so every subsequent log record is offered to the sink. Sinks built with
// New never touch the global logger: their owner decides where Handler (or
// direct Observe calls) plug in, so enabling one does nothing beyond arming
// the once-guard. Later calls, even concurrent ones, observe the
// already-initialized state and return without blocking on anything but the
// Once.
func (s *Sink) Enable() {
	s.once.Do(func() {
		if !s.fromEnv {
			return
		}
		s.mu.Lock()
		s.capacity = capacityFromEnv()
		s.mu.Unlock()
		if s.Capacity() > 0 {
			slog.SetDefault(slog.New(NewHandler(slog.Default().Handler(), s)))
		}
	})
}

// capacityFromEnv reads CapacityEnv, keeping the default on absent or
// malformed values. A malformed value is worth a warning; an absent one is
// the normal case.
func capacityFromEnv() int {
	v := os.Getenv(CapacityEnv)
	if v == "" {
		return DefaultCapacity
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("ignoring malformed log history capacity",
			"var", CapacityEnv, "value", v, "default", DefaultCapacity)
		return DefaultCapacity
	}
	return n
}

// Capacity returns the maximum number of retained lines.
func (s *Sink) Capacity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.capacity
}

// Observe offers one log line to the ring. Lines below slog.LevelWarn are
// ignored; beyond capacity the oldest line is evicted first.
func (s *Sink) Observe(line string, level slog.Level) {
	if level < slog.LevelWarn {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.capacity <= 0 {
		return
	}
	s.lines = append(s.lines, line)
	if len(s.lines) > s.capacity {
		s.lines = s.lines[len(s.lines)-s.capacity:]
	}
}

// Snapshot returns a copy of the current ring contents, oldest first. Log
// activity after Snapshot returns is not reflected in the result.
func (s *Sink) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}
