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
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink_FIFOEviction(t *testing.T) {
	const capacity, extra = 5, 3
	s := New(capacity)

	for i := 0; i < capacity+extra; i++ {
		s.Observe(fmt.Sprintf("line-%d", i), slog.LevelWarn)
	}

	got := s.Snapshot()
	require.Len(t, got, capacity)
	for i, line := range got {
		assert.Equal(t, fmt.Sprintf("line-%d", i+extra), line, "oldest lines must be evicted first")
	}
}

func TestSink_SeverityFilter(t *testing.T) {
	s := New(10)
	s.Observe("debug", slog.LevelDebug)
	s.Observe("info", slog.LevelInfo)
	s.Observe("warn", slog.LevelWarn)
	s.Observe("error", slog.LevelError)

	assert.Equal(t, []string{"warn", "error"}, s.Snapshot())
}

func TestSink_ZeroCapacityDropsEverything(t *testing.T) {
	s := New(0)
	s.Observe("warn", slog.LevelWarn)
	assert.Empty(t, s.Snapshot())
}

func TestSink_SnapshotIsPointInTimeCopy(t *testing.T) {
	s := New(4)
	s.Observe("a", slog.LevelWarn)

	snap := s.Snapshot()
	s.Observe("b", slog.LevelError)

	assert.Equal(t, []string{"a"}, snap, "later activity must not appear in an earlier snapshot")
	snap[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, s.Snapshot(), "snapshot mutation must not reach the ring")
}

func TestSink_ConcurrentObserveAndSnapshot(t *testing.T) {
	s := New(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				s.Observe(fmt.Sprintf("g%d-%d", g, i), slog.LevelWarn)
				_ = s.Snapshot()
			}
		}(g)
	}
	wg.Wait()
	assert.Len(t, s.Snapshot(), 8)
}

func TestSink_EnablePrivateSinkLeavesGlobalLoggerAlone(t *testing.T) {
	before := slog.Default().Handler()

	s := New(3)
	s.Enable()

	assert.Same(t, before, slog.Default().Handler(), "enabling a private sink must not install a global tee")
	assert.Equal(t, 3, s.Capacity(), "private sinks keep the capacity they were built with")

	// Private sinks are fed by their owner's wiring, not the global logger.
	s.Observe("still collecting", slog.LevelWarn)
	assert.Equal(t, []string{"still collecting"}, s.Snapshot())
}

func TestSink_EnableIsEffectiveOnce(t *testing.T) {
	s := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Enable()
		}()
	}
	wg.Wait()
	s.Enable()
	assert.Equal(t, 0, s.Capacity())
}

func TestCapacityFromEnv(t *testing.T) {
	t.Run("absent keeps default", func(t *testing.T) {
		t.Setenv(CapacityEnv, "")
		assert.Equal(t, DefaultCapacity, capacityFromEnv())
	})
	t.Run("numeric override", func(t *testing.T) {
		t.Setenv(CapacityEnv, "12")
		assert.Equal(t, 12, capacityFromEnv())
	})
	t.Run("malformed keeps default", func(t *testing.T) {
		t.Setenv(CapacityEnv, "lots")
		assert.Equal(t, DefaultCapacity, capacityFromEnv())
	})
	t.Run("zero disables", func(t *testing.T) {
		t.Setenv(CapacityEnv, "0")
		assert.Equal(t, 0, capacityFromEnv())
	})
}
