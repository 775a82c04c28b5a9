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
	"sort"
	"strings"

	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/stack"
)

// Status is the tagged outcome of an operation: either OK, or a failure
// carrying a code, a message, an optional stack trace and opaque typed
// payloads.
//
// The zero Status is OK. A successful status holds no heap state at all;
// checking it costs a nil comparison. A failing status owns its failure
// record exclusively: every mutating method installs a fresh record
// (copy-on-write), so two Status values never observe each other's changes
// even after being copied around.
//
// Status has no internal synchronization. Values are freely shareable across
// goroutines once treated as read-only; if a value is mutated while shared
// (Update, payload mutation), the caller must serialize access.
type Status struct {
	s *state
}

// state is the failure record. It is never allocated for an OK status.
type state struct {
	code     code.Code
	msg      string
	trace    stack.Trace
	payloads map[string][]byte
}

// clone returns a deep copy of the record: the payload map, the payload
// bytes, and the trace are all freshly allocated.
func (st *state) clone() *state {
	cp := &state{
		code:  st.code,
		msg:   st.msg,
		trace: st.trace.Clone(),
	}
	if st.payloads != nil {
		cp.payloads = make(map[string][]byte, len(st.payloads))
		for k, v := range st.payloads {
			cp.payloads[k] = append([]byte(nil), v...)
		}
	}
	return cp
}

// OK returns a successful status. The zero Status value is equally OK; this
// constructor exists for symmetry with New.
func OK() Status {
	return Status{}
}

// New returns a failing status with the given code and message.
//
// Passing code.OK is a caller contract violation and panics: a success is
// represented by OK() / the zero value, never constructed as a failure.
func New(c code.Code, msg string, opts ...Option) Status {
	if c == code.OK {
		panic("statusx: New called with code.OK")
	}
	st := &state{code: c, msg: msg}
	for _, opt := range opts {
		opt(st)
	}
	return Status{s: st}
}

// Newf is New with fmt.Sprintf message formatting.
func Newf(c code.Code, format string, args ...any) Status {
	return New(c, fmt.Sprintf(format, args...))
}

// IsOK reports whether the status represents success.
func (s Status) IsOK() bool {
	return s.s == nil
}

// Code returns the status code; code.OK for a successful status.
func (s Status) Code() code.Code {
	if s.s == nil {
		return code.OK
	}
	return s.s.code
}

// Message returns the failure message; empty for a successful status.
func (s Status) Message() string {
	if s.s == nil {
		return ""
	}
	return s.s.msg
}

// StackTrace returns a copy of the frames recorded at construction, or nil
// if none were recorded (or the status is OK).
func (s Status) StackTrace() stack.Trace {
	if s.s == nil {
		return nil
	}
	return s.s.trace.Clone()
}

// Update folds other into the receiver with "first failure wins" semantics:
// while the receiver is OK it is replaced by other (an OK-to-OK update is a
// no-op copy); once the receiver holds a failure it never changes again.
//
// This gives deterministic sticky-first-error behavior to code that folds
// many results into one status sequentially.
func (s *Status) Update(other Status) {
	if s.s == nil {
		*s = other
	}
}

// SetPayload attaches payload under typeURL, overwriting any existing entry
// for that key. On an OK status it is a no-op: payloads never allocate a
// failure record as a side effect.
func (s *Status) SetPayload(typeURL string, payload []byte) {
	if s.s == nil {
		return
	}
	st := s.s.clone()
	if st.payloads == nil {
		st.payloads = make(map[string][]byte, 1)
	}
	st.payloads[typeURL] = append([]byte(nil), payload...)
	s.s = st
}

// GetPayload returns a copy of the payload stored under typeURL. The second
// result is false if the key is absent or the status is OK.
func (s Status) GetPayload(typeURL string) ([]byte, bool) {
	if s.s == nil {
		return nil, false
	}
	p, ok := s.s.payloads[typeURL]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), p...), true
}

// ErasePayload removes the payload stored under typeURL and reports whether
// one was present. It is a no-op returning false on an OK status.
func (s *Status) ErasePayload(typeURL string) bool {
	if s.s == nil {
		return false
	}
	if _, ok := s.s.payloads[typeURL]; !ok {
		return false
	}
	st := s.s.clone()
	delete(st.payloads, typeURL)
	s.s = st
	return true
}

// ForEachPayload invokes visitor once per payload entry in sorted type-url
// order. The visitor receives a copy of the bytes. No-op on an OK status.
func (s Status) ForEachPayload(visitor func(typeURL string, payload []byte)) {
	if s.s == nil {
		return
	}
	for _, k := range s.payloadKeys() {
		visitor(k, append([]byte(nil), s.s.payloads[k]...))
	}
}

// payloadKeys returns the payload keys in sorted order.
func (s Status) payloadKeys() []string {
	if s.s == nil || len(s.s.payloads) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.s.payloads))
	for k := range s.s.payloads {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// String renders the status in its canonical textual form:
//
//	OK
//	<CODE_NAME>: <message>
//	<CODE_NAME>: <message> [<type_url>='<hex-escaped bytes>'] ...
//
// Payload suffixes appear in sorted key order. The format, including the
// uppercase code name and the hex escaping, is relied upon by consumers and
// is stable.
func (s Status) String() string {
	if s.s == nil {
		return "OK"
	}
	var b strings.Builder
	b.WriteString(code.Name(s.s.code))
	b.WriteString(": ")
	b.WriteString(s.s.msg)
	for _, k := range s.payloadKeys() {
		fmt.Fprintf(&b, " [%s='%s']", k, hexEscape(s.s.payloads[k]))
	}
	return b.String()
}

// IgnoreError explicitly acknowledges that a possibly-failing status is being
// discarded. It does nothing; it exists so call sites can document intent.
func (s Status) IgnoreError() {}

// hexEscape renders arbitrary bytes as C-style escaped text: printable ASCII
// passes through, backslash and quotes get symbolic escapes, common control
// characters use \n \r \t, and everything else becomes \xHH.
func hexEscape(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, c := range b {
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '"':
			sb.WriteString(`\"`)
		default:
			if c >= 0x20 && c < 0x7f {
				sb.WriteByte(c)
			} else {
				fmt.Fprintf(&sb, `\x%02x`, c)
			}
		}
	}
	return sb.String()
}
