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
	"dirpx.dev/statusx/stack"
	"dirpx.dev/statusx/typeurl"
)

// Option is a functional option for constructing a failing Status.
// Options run against the failure record being built inside New, before the
// Status is handed out, so they never violate copy-on-write ownership.
type Option func(*state)

// WithPayload attaches one payload on construction.
// Intended to be used with New(...).
func WithPayload(typeURL string, payload []byte) Option {
	return func(st *state) {
		if st.payloads == nil {
			st.payloads = make(map[string][]byte, 1)
		}
		st.payloads[typeURL] = append([]byte(nil), payload...)
	}
}

// WithPayloadURL is WithPayload for producers that keep their keys as
// validated typeurl.URL values, so the key is known canonical before it ever
// reaches a payload map or an Any detail.
func WithPayloadURL(u typeurl.URL, payload []byte) Option {
	return WithPayload(u.String(), payload)
}

// WithStackTrace records the given trace on construction. The trace is
// copied; the caller keeps ownership of its slice.
// Intended to be used with New(...).
func WithStackTrace(t stack.Trace) Option {
	return func(st *state) {
		st.trace = t.Clone()
	}
}

// WithCapturedStack captures the call stack at the point WithCapturedStack
// itself is evaluated, i.e. at the New(...) call site.
func WithCapturedStack() Option {
	t := stack.Capture(1)
	return func(st *state) {
		st.trace = t
	}
}
