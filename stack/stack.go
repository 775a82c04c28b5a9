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

// Package stack captures call stacks for status failure records.
//
// Capture is opt-in and bounded: a successful operation never pays for it,
// and a failing one records at most MaxDepth frames. Frames are resolved via
// runtime.CallersFrames so inlined calls are expanded correctly.
package stack

import (
	"fmt"
	"runtime"
)

// Frame is a single call site in a recorded trace.
type Frame struct {
	// File is the absolute file path as reported by the runtime.
	File string

	// Line is the line number within File.
	Line int

	// Function is the fully-qualified function name (pkg.Func or method).
	Function string
}

// String renders the frame as "pkg.Func (file:line)".
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Trace is an ordered sequence of frames, most recent call first.
type Trace []Frame

// MaxDepth bounds the number of recorded frames. Deep enough to reach the
// interesting caller context without unbounded work on failure paths.
const MaxDepth = 64

// Capture records the calling goroutine's stack, skipping skip frames on top
// of Capture itself. Capture(0) starts at the caller of Capture.
func Capture(skip int) Trace {
	// +2 skips runtime.Callers and Capture itself.
	pc := make([]uintptr, MaxDepth)
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}
	pc = pc[:n]

	frames := runtime.CallersFrames(pc)
	out := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, Frame{
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})
		if !more {
			break
		}
	}
	return out
}

// Clone returns an independent copy of the trace. A nil trace clones to nil.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}
	out := make(Trace, len(t))
	copy(out, t)
	return out
}
