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

package apis

import (
	"dirpx.dev/statusx/code"
	"dirpx.dev/statusx/stack"
)

// Coded represents an error that is classified into the canonical status
// code space.
//
// The code answers the question "what kind of failure is this?" in a stable,
// enumerable way. It is the primary value that conversions and transport
// adapters use when turning a foreign error into a Status.
//
// Implementations are expected to return a code from the closed set defined
// in statusx/code. Returning code.OK from a non-nil error is a contract
// violation; converters treat such errors as UNKNOWN.
type Coded interface {
	error

	// StatusCode returns the canonical classification of the error.
	StatusCode() code.Code
}

// Payloader represents an error that carries opaque typed payloads, keyed by
// type url.
//
// Implementations SHOULD return a map that is safe for the caller to iterate
// and that will not be modified by the callee afterwards; converters copy the
// entries into the failure record they build. Returning nil is allowed and
// simply means "no payloads".
type Payloader interface {
	error

	// StatusPayloads returns the payload entries of the error. May return nil.
	StatusPayloads() map[string][]byte
}

// Traced represents an error that recorded the call stack at its origin.
//
// Converters attach the returned trace to the failure record so the origin
// survives the trip through the Status world. If no trace was recorded,
// implementations SHOULD return nil.
type Traced interface {
	error

	// StatusTrace returns the recorded trace, most recent call first.
	// May return nil.
	StatusTrace() stack.Trace
}
