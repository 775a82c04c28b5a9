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
	"context"
	"errors"

	"dirpx.dev/statusx/apis"
	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/stack"
)

// statusError adapts a failing Status to the error interface. It implements
// the apis capability interfaces so the Status survives errors.As round
// trips through code that only speaks error.
type statusError struct {
	st Status
}

var (
	_ apis.Coded     = (*statusError)(nil)
	_ apis.Payloader = (*statusError)(nil)
	_ apis.Traced    = (*statusError)(nil)
)

// Error returns the canonical textual form of the status.
func (e *statusError) Error() string { return e.st.String() }

// StatusCode implements apis.Coded.
func (e *statusError) StatusCode() code.Code { return e.st.Code() }

// StatusPayloads implements apis.Payloader. The returned map is a copy.
func (e *statusError) StatusPayloads() map[string][]byte {
	var m map[string][]byte
	e.st.ForEachPayload(func(typeURL string, payload []byte) {
		if m == nil {
			m = make(map[string][]byte)
		}
		m[typeURL] = payload
	})
	return m
}

// StatusTrace implements apis.Traced.
func (e *statusError) StatusTrace() stack.Trace { return e.st.StackTrace() }

// Err returns the status as a Go error: nil for an OK status, otherwise an
// error whose message is the canonical String form. FromError recovers the
// original Status from the returned error without loss.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return &statusError{st: s}
}

// FromError converts an error back into a Status.
//
// Conversion preference, most faithful first:
//
//   - nil converts to OK;
//   - errors produced by Status.Err yield the original Status;
//   - errors implementing the apis capability interfaces keep their code,
//     payloads and trace (a Coded error claiming code.OK is treated as
//     UNKNOWN — a non-nil error cannot be a success);
//   - context.Canceled and context.DeadlineExceeded map to CANCELLED and
//     DEADLINE_EXCEEDED;
//   - anything else becomes UNKNOWN with the error text as message.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}

	var se *statusError
	if errors.As(err, &se) {
		return se.st
	}

	var coded apis.Coded
	if errors.As(err, &coded) {
		c := coded.StatusCode()
		if c == code.OK {
			c = code.Unknown
		}
		st := New(c, err.Error())
		var payloader apis.Payloader
		if errors.As(err, &payloader) {
			for k, v := range payloader.StatusPayloads() {
				st.SetPayload(k, v)
			}
		}
		var traced apis.Traced
		if errors.As(err, &traced) {
			if t := traced.StatusTrace(); t != nil {
				st.s.trace = t.Clone()
			}
		}
		return st
	}

	switch {
	case errors.Is(err, context.Canceled):
		return New(code.Cancelled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return New(code.DeadlineExceeded, err.Error())
	}
	return New(code.Unknown, err.Error())
}
